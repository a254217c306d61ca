package coding

import (
	"fmt"
	"math/bits"

	succincterrors "github.com/tamirms/succinct/errors"
)

// TruncatedBinary encodes values in [1, N] in floor(log2 N) or
// floor(log2 N)+1 bits, giving the shorter codes to the smallest values.
// N must be at least 2: with a single value the code would be empty and
// could not be told apart from the end of the stream.
type TruncatedBinary struct {
	N uint64
}

// params returns k = floor(log2 N) and the number u of values taking k bits.
func (t TruncatedBinary) params() (k int, u uint64, err error) {
	if t.N < 2 {
		return 0, 0, fmt.Errorf("%w: truncated binary bound %d is below 2", succincterrors.ErrValueOutOfRange, t.N)
	}
	k = bits.Len64(t.N) - 1
	// 2^(k+1) - N, computed modulo 2^64 so k = 63 does not overflow.
	u = (uint64(1) << (k + 1)) - t.N
	return k, u, nil
}

// Encode implements UniversalCode.
func (t TruncatedBinary) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}
	k, u, err := t.params()
	if err != nil {
		return err
	}
	if v > t.N {
		return fmt.Errorf("%w: %d exceeds bound %d", succincterrors.ErrValueOutOfRange, v, t.N)
	}

	x := v - 1
	if x < u {
		writeBits(w, x, k)
	} else {
		writeBits(w, x+u, k+1)
	}
	return nil
}

// Decode implements UniversalCode.
func (t TruncatedBinary) Decode(r BitReader) (uint64, error) {
	k, u, err := t.params()
	if err != nil {
		return 0, err
	}

	x, err := readBits(r, k)
	if err != nil {
		return 0, err
	}
	if x < u {
		return x + 1, nil
	}

	bit, err := r.ReadBit()
	if err != nil {
		return 0, midCode(err)
	}
	x <<= 1
	if bit {
		x |= 1
	}
	return x - u + 1, nil
}
