package bitio

import "fmt"

// Writer is an append-only bit sink packing bits MSB-first into 64-bit words.
// The zero value is ready to use.
type Writer struct {
	words   []uint64
	current uint64
	bitPos  int
}

// NewWriter returns a Writer with room for sizeHint bits before reallocating.
func NewWriter(sizeHint int) *Writer {
	return &Writer{
		words: make([]uint64, 0, (sizeHint+63)/64),
	}
}

func (w *Writer) flushWord() {
	w.words = append(w.words, w.current)
	w.current = 0
	w.bitPos = 0
}

// WriteBit appends one bit.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.current |= uint64(1) << (63 - w.bitPos)
	}
	w.bitPos++
	if w.bitPos == 64 {
		w.flushWord()
	}
}

// WriteBits appends the low n bits of v, most significant first.
// n must be in [0, 64].
func (w *Writer) WriteBits(v uint64, n int) {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("bitio: WriteBits: bit count %d out of range [0, 64]", n))
	}
	if n == 0 {
		return
	}
	if n < 64 {
		v &= (uint64(1) << n) - 1
	}

	if w.bitPos+n <= 64 {
		w.current |= v << (64 - w.bitPos - n)
		w.bitPos += n
		if w.bitPos == 64 {
			w.flushWord()
		}
		return
	}

	bitsInCurrent := 64 - w.bitPos
	rest := n - bitsInCurrent
	w.current |= v >> rest
	w.flushWord()

	w.current = v << (64 - rest)
	w.bitPos = rest
}

// WriteOnes appends n one-bits.
func (w *Writer) WriteOnes(n int) {
	if n <= 0 {
		return
	}

	if w.bitPos+n <= 64 {
		w.WriteBits(^uint64(0), n)
		return
	}

	remaining := 64 - w.bitPos
	w.current |= ^uint64(0) >> w.bitPos
	w.flushWord()
	n -= remaining

	for n >= 64 {
		w.current = ^uint64(0)
		w.flushWord()
		n -= 64
	}

	if n > 0 {
		w.current = ^(^uint64(0) >> n)
		w.bitPos = n
	}
}

// BitLen returns the number of bits written.
func (w *Writer) BitLen() uint64 {
	return uint64(len(w.words))*64 + uint64(w.bitPos)
}

// Words returns the written bits as MSB-first words. The last word is
// zero-padded when BitLen is not a multiple of 64. The result does not alias
// the Writer's buffer.
func (w *Writer) Words() []uint64 {
	out := make([]uint64, len(w.words), len(w.words)+1)
	copy(out, w.words)
	if w.bitPos > 0 {
		out = append(out, w.current)
	}
	return out
}

// Reader returns a Reader over a snapshot of the bits written so far.
func (w *Writer) Reader() *Reader {
	return NewReader(w.Words(), w.BitLen())
}

// Reset discards all written bits, keeping the allocated buffer.
func (w *Writer) Reset() {
	w.words = w.words[:0]
	w.current = 0
	w.bitPos = 0
}
