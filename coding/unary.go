package coding

import (
	"fmt"
	"math"

	succincterrors "github.com/tamirms/succinct/errors"
)

// Unary encodes v as v-1 one-bits followed by a zero-bit. It is optimal for
// geometrically distributed values and impractical for large ones.
type Unary struct{}

// Encode implements UniversalCode.
func (Unary) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}
	writeOnes(w, v-1)
	w.WriteBit(false)
	return nil
}

// Decode implements UniversalCode.
func (Unary) Decode(r BitReader) (uint64, error) {
	n, err := readOnes(r)
	if err != nil {
		return 0, err
	}
	if n == math.MaxUint64 {
		return 0, fmt.Errorf("%w: unary run of %d ones", succincterrors.ErrOverflow, n)
	}
	return n + 1, nil
}
