package coding

import (
	"fmt"
	"math/bits"

	succincterrors "github.com/tamirms/succinct/errors"
)

// EliasGamma writes N = floor(log2 v) zero-bits, then v in N+1 bits.
// A code takes 2*floor(log2 v)+1 bits.
type EliasGamma struct{}

// Encode implements UniversalCode.
func (EliasGamma) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}
	n := bits.Len64(v) - 1
	writeBits(w, 0, n)
	writeBits(w, v, n+1)
	return nil
}

// Decode implements UniversalCode.
func (EliasGamma) Decode(r BitReader) (uint64, error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			if n > 0 {
				err = midCode(err)
			}
			return 0, err
		}
		if bit {
			break
		}
		n++
		if n > 63 {
			return 0, fmt.Errorf("%w: gamma prefix of more than 63 zeros", succincterrors.ErrMalformedCode)
		}
	}

	low, err := readBits(r, n)
	if err != nil {
		return 0, midCode(err)
	}
	return uint64(1)<<n | low, nil
}

// EliasDelta writes the gamma code of N+1, where N = floor(log2 v), then the
// N bits of v below its leading one. A code takes about
// log2 v + 2*log2 log2 v bits.
type EliasDelta struct{}

// Encode implements UniversalCode.
func (EliasDelta) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}
	n := bits.Len64(v) - 1
	if err := (EliasGamma{}).Encode(w, uint64(n+1)); err != nil {
		return err
	}
	writeBits(w, v, n)
	return nil
}

// Decode implements UniversalCode.
func (EliasDelta) Decode(r BitReader) (uint64, error) {
	length, err := (EliasGamma{}).Decode(r)
	if err != nil {
		return 0, err
	}
	if length > 64 {
		return 0, fmt.Errorf("%w: delta length %d exceeds 64 bits", succincterrors.ErrMalformedCode, length)
	}
	n := int(length - 1)

	low, err := readBits(r, n)
	if err != nil {
		return 0, midCode(err)
	}
	return uint64(1)<<n | low, nil
}

// EliasOmega writes v as a chain of binary groups, each group giving the
// length of the next, ending with v itself and a terminating zero-bit.
type EliasOmega struct{}

// Encode implements UniversalCode.
func (EliasOmega) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}

	// A 64-bit value needs at most four groups.
	var groups [8]uint64
	n := 0
	for x := v; x > 1; {
		groups[n] = x
		n++
		x = uint64(bits.Len64(x) - 1)
	}
	for i := n - 1; i >= 0; i-- {
		writeBits(w, groups[i], bits.Len64(groups[i]))
	}
	w.WriteBit(false)
	return nil
}

// Decode implements UniversalCode.
func (EliasOmega) Decode(r BitReader) (uint64, error) {
	n := uint64(1)
	for first := true; ; first = false {
		bit, err := r.ReadBit()
		if err != nil {
			if !first {
				err = midCode(err)
			}
			return 0, err
		}
		if !bit {
			return n, nil
		}
		if n > 63 {
			return 0, fmt.Errorf("%w: omega group of %d bits", succincterrors.ErrOverflow, n+1)
		}
		low, err := readBits(r, int(n))
		if err != nil {
			return 0, midCode(err)
		}
		n = uint64(1)<<n | low
	}
}
