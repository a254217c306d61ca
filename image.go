package succinct

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	succincterrors "github.com/tamirms/succinct/errors"
	intbits "github.com/tamirms/succinct/internal/bits"
)

const (
	// imageMagic is "SCCT" in little-endian.
	imageMagic = uint32(0x54434353)

	// imageVersion is the current image format version.
	imageVersion = uint16(0x0001)

	// imageHeaderSize is the exact size of the serialized header.
	imageHeaderSize = 32

	// imageFooterSize holds the xxHash64 checksum.
	imageFooterSize = 8
)

// imageHeader is the 32-byte header of a bit store image.
//
// Layout:
//
//	Offset  Size  Field       Type
//	0       4     Magic       0x54434353 ("SCCT")
//	4       2     Version     0x0001
//	6       1     BlockBits   uint8 (8, 16, 32 or 64)
//	7       1     Reserved    zero
//	8       8     BitLen      uint64_le
//	16      8     BlockLen    uint64_le
//	24      8     Reserved    zero
//
// The header is followed by BlockLen blocks, each BlockBits/8 bytes
// little-endian, and an 8-byte xxHash64 of everything before it.
type imageHeader struct {
	Magic     uint32
	Version   uint16
	BlockBits uint8
	BitLen    uint64
	BlockLen  uint64
}

func (h *imageHeader) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	buf[6] = h.BlockBits
	buf[7] = 0
	binary.LittleEndian.PutUint64(buf[8:16], h.BitLen)
	binary.LittleEndian.PutUint64(buf[16:24], h.BlockLen)
	clear(buf[24:32])
}

func decodeImageHeader(buf []byte) (*imageHeader, error) {
	if len(buf) < imageHeaderSize {
		return nil, succincterrors.ErrTruncated
	}
	h := &imageHeader{
		Magic:     binary.LittleEndian.Uint32(buf[0:4]),
		Version:   binary.LittleEndian.Uint16(buf[4:6]),
		BlockBits: buf[6],
		BitLen:    binary.LittleEndian.Uint64(buf[8:16]),
		BlockLen:  binary.LittleEndian.Uint64(buf[16:24]),
	}
	if h.Magic != imageMagic {
		return nil, succincterrors.ErrInvalidMagic
	}
	if h.Version != imageVersion {
		return nil, fmt.Errorf("%w: %d", succincterrors.ErrInvalidVersion, h.Version)
	}
	return h, nil
}

// Encode serializes the bits of s into a self-describing, checksummed image.
// Only the blocks holding addressable bits are written, and bits of the last
// block beyond BitLen are cleared.
func Encode[B Block](s BitStore[B]) []byte {
	w := BlockWidth[B]()
	blockBytes := int(w / 8)
	bitLen := s.BitLen()
	n := int((bitLen + uint64(w) - 1) / uint64(w))

	buf := make([]byte, imageHeaderSize+n*blockBytes+imageFooterSize)
	h := imageHeader{
		Magic:     imageMagic,
		Version:   imageVersion,
		BlockBits: uint8(w),
		BitLen:    bitLen,
		BlockLen:  uint64(n),
	}
	h.encodeTo(buf)

	off := imageHeaderSize
	for i := range n {
		v := uint64(s.GetBlock(i))
		if start := uint64(i) * uint64(w); start+uint64(w) > bitLen {
			v &= intbits.PrefixMask(uint(bitLen-start), w)
		}
		putBlock(buf[off:], v, blockBytes)
		off += blockBytes
	}

	binary.LittleEndian.PutUint64(buf[off:], xxhash.Sum64(buf[:off]))
	return buf
}

// Decode parses an image produced by Encode. The block type must match the
// one the image was written with.
func Decode[B Block](data []byte) (*Vector[B], error) {
	h, err := decodeImageHeader(data)
	if err != nil {
		return nil, err
	}

	w := BlockWidth[B]()
	if uint(h.BlockBits) != w {
		return nil, fmt.Errorf("%w: image has %d-bit blocks, want %d",
			succincterrors.ErrBlockWidthMismatch, h.BlockBits, w)
	}
	blockBytes := uint64(w / 8)

	bodyLen := uint64(len(data) - imageHeaderSize)
	if h.BlockLen > bodyLen/blockBytes {
		return nil, fmt.Errorf("%w: %d blocks declared", succincterrors.ErrTruncated, h.BlockLen)
	}
	end := imageHeaderSize + int(h.BlockLen*blockBytes)
	if len(data) < end+imageFooterSize {
		return nil, succincterrors.ErrTruncated
	}
	if len(data) > end+imageFooterSize {
		return nil, fmt.Errorf("%w: %d trailing bytes", succincterrors.ErrCorrupted, len(data)-end-imageFooterSize)
	}

	expected := binary.LittleEndian.Uint64(data[end:])
	if actual := xxhash.Sum64(data[:end]); actual != expected {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", succincterrors.ErrChecksumFailed, expected, actual)
	}

	if capacity := h.BlockLen * uint64(w); h.BitLen > capacity || capacity-h.BitLen >= uint64(w) {
		return nil, fmt.Errorf("%w: %d bits in %d blocks of width %d",
			succincterrors.ErrCorrupted, h.BitLen, h.BlockLen, w)
	}

	blocks := make([]B, h.BlockLen)
	off := imageHeaderSize
	for i := range blocks {
		blocks[i] = B(getBlock(data[off:], int(blockBytes)))
		off += int(blockBytes)
	}
	return NewVector(blocks, h.BitLen), nil
}

func putBlock(buf []byte, v uint64, size int) {
	for i := range size {
		buf[i] = byte(v >> (i * 8))
	}
}

func getBlock(buf []byte, size int) uint64 {
	var v uint64
	for i := range size {
		v |= uint64(buf[i]) << (i * 8)
	}
	return v
}
