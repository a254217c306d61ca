package coding

import "io"

// Optional fast paths implemented by bitio.Writer and bitio.Reader.
type (
	bitsWriter interface {
		WriteBits(v uint64, n int)
	}
	onesWriter interface {
		WriteOnes(n int)
	}
	bitsReader interface {
		ReadBits(n int) (uint64, error)
	}
	onesReader interface {
		ReadOnes() (uint64, error)
	}
)

// midCode maps io.EOF to io.ErrUnexpectedEOF for reads after the first bit
// of a code.
func midCode(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// writeBits writes the low n bits of v, most significant first.
func writeBits(w BitWriter, v uint64, n int) {
	if bw, ok := w.(bitsWriter); ok {
		bw.WriteBits(v, n)
		return
	}
	for i := n - 1; i >= 0; i-- {
		w.WriteBit((v>>i)&1 != 0)
	}
}

// writeOnes writes n one-bits.
func writeOnes(w BitWriter, n uint64) {
	if ow, ok := w.(onesWriter); ok {
		const chunk = 1 << 30
		for n > chunk {
			ow.WriteOnes(chunk)
			n -= chunk
		}
		ow.WriteOnes(int(n))
		return
	}
	for range n {
		w.WriteBit(true)
	}
}

// readBits reads n bits, the first being the most significant. It returns
// io.EOF only if the source was exhausted before the first bit.
func readBits(r BitReader, n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if br, ok := r.(bitsReader); ok {
		return br.ReadBits(n)
	}
	var v uint64
	for i := range n {
		bit, err := r.ReadBit()
		if err != nil {
			if i > 0 {
				err = midCode(err)
			}
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// readOnes consumes one-bits through the first zero-bit and returns the
// number of one-bits. It returns io.EOF only if the source was exhausted
// before the first bit.
func readOnes(r BitReader) (uint64, error) {
	if o, ok := r.(onesReader); ok {
		return o.ReadOnes()
	}
	var n uint64
	for {
		bit, err := r.ReadBit()
		if err != nil {
			if n > 0 {
				err = midCode(err)
			}
			return 0, err
		}
		if !bit {
			return n, nil
		}
		n++
	}
}
