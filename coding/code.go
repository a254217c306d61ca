package coding

import (
	"errors"
	"fmt"
	"io"
	"math"

	succincterrors "github.com/tamirms/succinct/errors"
)

// BitWriter is an append-only bit sink.
type BitWriter interface {
	WriteBit(bit bool)
}

// BitReader is a bit source read front to back. ReadBit returns io.EOF once
// the source is exhausted.
type BitReader interface {
	ReadBit() (bool, error)
}

// UniversalCode encodes strictly positive integers as self-delimiting bit
// patterns.
//
// Encode returns ErrZeroValue for zero and ErrValueOutOfRange for values the
// code cannot represent; nothing is written on error.
//
// Decode reads exactly one code. It returns io.EOF if the source is exhausted
// before the first bit, io.ErrUnexpectedEOF if it ends inside a code,
// ErrMalformedCode for bits that cannot form a code, and ErrOverflow for codes
// of values beyond uint64.
type UniversalCode interface {
	Encode(w BitWriter, v uint64) error
	Decode(r BitReader) (uint64, error)
}

// EncodeAll encodes vs back to back. It stops at the first value that cannot
// be encoded; the values before it have been written.
func EncodeAll(c UniversalCode, w BitWriter, vs []uint64) error {
	for i, v := range vs {
		if err := c.Encode(w, v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// DecodeAll decodes codes until the source is exhausted at a code boundary.
// A source that ends inside a code yields io.ErrUnexpectedEOF along with the
// values decoded before it.
func DecodeAll(c UniversalCode, r BitReader) ([]uint64, error) {
	var vs []uint64
	for {
		v, err := c.Decode(r)
		if errors.Is(err, io.EOF) {
			return vs, nil
		}
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// Lift0 adapts a code to non-negative values by encoding v+1 and decoding
// x-1. It is the zero-bias convention made explicit.
type Lift0 struct {
	Code UniversalCode
}

// Encode implements UniversalCode for values in [0, MaxUint64).
func (l Lift0) Encode(w BitWriter, v uint64) error {
	if v == math.MaxUint64 {
		return fmt.Errorf("%w: %d cannot be lifted", succincterrors.ErrValueOutOfRange, v)
	}
	return l.Code.Encode(w, v+1)
}

// Decode implements UniversalCode.
func (l Lift0) Decode(r BitReader) (uint64, error) {
	x, err := l.Code.Decode(r)
	if err != nil {
		return 0, err
	}
	return x - 1, nil
}
