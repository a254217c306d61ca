package coding

import (
	"fmt"
	"math/bits"

	succincterrors "github.com/tamirms/succinct/errors"
)

// fibonacci holds F(2), F(3), ... up to the largest Fibonacci number below
// 2^64, F(93).
var fibonacci = func() []uint64 {
	fib := []uint64{1, 2}
	for {
		a, b := fib[len(fib)-2], fib[len(fib)-1]
		next, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return fib
		}
		fib = append(fib, next)
	}
}()

// Fibonacci writes the Zeckendorf representation of v, least significant
// term first, followed by a one-bit. Zeckendorf representations never hold
// two adjacent ones, so the code ends at the first "11".
type Fibonacci struct{}

// Encode implements UniversalCode.
func (Fibonacci) Encode(w BitWriter, v uint64) error {
	if v == 0 {
		return succincterrors.ErrZeroValue
	}

	top := len(fibonacci) - 1
	for fibonacci[top] > v {
		top--
	}

	var digits [2]uint64 // 92 terms fit in two words
	for i, rem := top, v; i >= 0 && rem > 0; i-- {
		if fibonacci[i] <= rem {
			digits[i/64] |= 1 << (i % 64)
			rem -= fibonacci[i]
			i-- // the next term is never used
		}
	}

	for i := 0; i <= top; i++ {
		w.WriteBit(digits[i/64]&(1<<(i%64)) != 0)
	}
	w.WriteBit(true)
	return nil
}

// Decode implements UniversalCode.
func (Fibonacci) Decode(r BitReader) (uint64, error) {
	var sum uint64
	prev := false
	for i := 0; ; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			if i > 0 {
				err = midCode(err)
			}
			return 0, err
		}
		if bit && prev {
			return sum, nil
		}
		if i >= len(fibonacci) {
			return 0, fmt.Errorf("%w: fibonacci code longer than %d bits", succincterrors.ErrMalformedCode, len(fibonacci)+1)
		}
		if bit {
			s, carry := bits.Add64(sum, fibonacci[i], 0)
			if carry != 0 {
				return 0, fmt.Errorf("%w: fibonacci sum", succincterrors.ErrOverflow)
			}
			sum = s
		}
		prev = bit
	}
}
