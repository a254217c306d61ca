package bitio

import (
	"fmt"
	"io"
	"math/bits"
)

// Reader is a bit source over MSB-first 64-bit words with an explicit length.
// Reads past the length report io.EOF; a read that starts inside the stream
// but cannot complete reports io.ErrUnexpectedEOF and consumes nothing.
type Reader struct {
	words  []uint64
	bitLen uint64
	pos    uint64
}

// NewReader returns a Reader over the first bitLen bits of words.
// It panics if words cannot hold bitLen bits.
func NewReader(words []uint64, bitLen uint64) *Reader {
	if uint64(len(words))*64 < bitLen {
		panic(fmt.Sprintf("bitio: %d words cannot hold %d bits", len(words), bitLen))
	}
	return &Reader{
		words:  words,
		bitLen: bitLen,
	}
}

// ReadBit reads one bit.
func (r *Reader) ReadBit() (bool, error) {
	if r.pos >= r.bitLen {
		return false, io.EOF
	}
	bit := (r.words[r.pos/64]>>(63-r.pos%64))&1 != 0
	r.pos++
	return bit, nil
}

// ReadBits reads n bits and returns them as the low bits of the result, the
// first bit read being the most significant. n must be in [0, 64].
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("bitio: ReadBits: bit count %d out of range [0, 64]", n))
	}
	if n == 0 {
		return 0, nil
	}
	if rem := r.Remaining(); rem < uint64(n) {
		if rem == 0 {
			return 0, io.EOF
		}
		return 0, io.ErrUnexpectedEOF
	}

	idx := r.pos / 64
	off := int(r.pos % 64)
	r.pos += uint64(n)

	if off+n <= 64 {
		return (r.words[idx] << off) >> (64 - n), nil
	}

	rest := off + n - 64
	hi := (r.words[idx] << off) >> (64 - n)
	lo := r.words[idx+1] >> (64 - rest)
	return hi | lo, nil
}

// ReadOnes consumes one-bits up to and including the first zero-bit and
// returns how many one-bits preceded it. If the stream ends first, the
// position is left unchanged and io.EOF (nothing left) or
// io.ErrUnexpectedEOF is returned.
func (r *Reader) ReadOnes() (uint64, error) {
	if r.pos >= r.bitLen {
		return 0, io.EOF
	}

	pos := r.pos
	var count uint64
	for pos < r.bitLen {
		off := pos % 64
		avail := min(64-off, r.bitLen-pos)
		word := r.words[pos/64] << off

		ones := uint64(bits.LeadingZeros64(^word))
		if ones < avail {
			r.pos = pos + ones + 1
			return count + ones, nil
		}
		count += avail
		pos += avail
	}
	return 0, io.ErrUnexpectedEOF
}

// Pos returns the number of bits consumed.
func (r *Reader) Pos() uint64 {
	return r.pos
}

// Remaining returns the number of bits left to read.
func (r *Reader) Remaining() uint64 {
	return r.bitLen - r.pos
}

// BitLen returns the length of the stream in bits.
func (r *Reader) BitLen() uint64 {
	return r.bitLen
}
