package coding

import (
	"fmt"
	"math"

	succincterrors "github.com/tamirms/succinct/errors"
)

// Rice is the Golomb-Rice code with divisor 2^K applied to v-1: the quotient
// (v-1)>>K in unary as one-bits with a terminating zero-bit, then the K-bit
// remainder. K must be at most 64.
type Rice struct {
	K uint
}

// Encode implements UniversalCode.
func (c Rice) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}
	if c.K > 64 {
		return fmt.Errorf("%w: rice parameter %d exceeds 64", succincterrors.ErrValueOutOfRange, c.K)
	}

	x := v - 1
	writeOnes(w, x>>c.K)
	w.WriteBit(false)
	writeBits(w, x, int(c.K))
	return nil
}

// Decode implements UniversalCode.
func (c Rice) Decode(r BitReader) (uint64, error) {
	if c.K > 64 {
		return 0, fmt.Errorf("%w: rice parameter %d exceeds 64", succincterrors.ErrValueOutOfRange, c.K)
	}

	q, err := readOnes(r)
	if err != nil {
		return 0, err
	}
	if q > math.MaxUint64>>c.K {
		return 0, fmt.Errorf("%w: rice quotient %d", succincterrors.ErrOverflow, q)
	}

	rem, err := readBits(r, int(c.K))
	if err != nil {
		return 0, midCode(err)
	}

	x := q<<c.K | rem
	if x == math.MaxUint64 {
		return 0, fmt.Errorf("%w: rice value", succincterrors.ErrOverflow)
	}
	return x + 1, nil
}
