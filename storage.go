package succinct

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Block is the unsigned word type a BitStore exposes its bits through.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitStore is a read-only, fixed-length sequence of bits, viewable either as
// individual bits or as fixed-width blocks.
//
// Bit i is bit i%w of block i/w, numbered from the most significant end,
// where w is the width of B. Indices outside [0, BlockLen()) or
// [0, BitLen()) are contract violations and panic.
type BitStore[B Block] interface {
	// BlockLen returns the number of blocks.
	BlockLen() int
	// BitLen returns the number of addressable bits.
	BitLen() uint64
	// GetBlock returns block i.
	GetBlock(i int) B
	// GetBit returns bit i.
	GetBit(i uint64) bool
}

// BlockWidth returns the number of bits in a block of type B.
func BlockWidth[B Block]() uint {
	var b B
	return uint(unsafe.Sizeof(b)) * 8
}

// blockBit extracts MSB-first bit j of a w-bit block.
func blockBit[B Block](b B, j, w uint) bool {
	return (uint64(b)>>(w-1-j))&1 != 0
}

// Blocks is a BitStore backed directly by a slice; every bit of every block
// is addressable.
type Blocks[B Block] []B

// BlockLen implements BitStore.
func (s Blocks[B]) BlockLen() int {
	return len(s)
}

// BitLen implements BitStore.
func (s Blocks[B]) BitLen() uint64 {
	return uint64(len(s)) * uint64(BlockWidth[B]())
}

// GetBlock implements BitStore.
func (s Blocks[B]) GetBlock(i int) B {
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("succinct: block index %d out of range [0, %d)", i, len(s)))
	}
	return s[i]
}

// GetBit implements BitStore.
func (s Blocks[B]) GetBit(i uint64) bool {
	if i >= s.BitLen() {
		panic(fmt.Sprintf("succinct: bit index %d out of range [0, %d)", i, s.BitLen()))
	}
	w := uint64(BlockWidth[B]())
	return blockBit(s[i/w], uint(i%w), uint(w))
}

// Vector is a BitStore over a slice of blocks whose bit length may end inside
// the last block. Bits at or beyond the length are not addressable.
type Vector[B Block] struct {
	blocks Blocks[B]
	bitLen uint64
}

// NewVector returns a Vector exposing the first bitLen bits of blocks.
// It panics if blocks cannot hold bitLen bits. The slice is not copied and
// must not be modified while the Vector is in use.
func NewVector[B Block](blocks []B, bitLen uint64) *Vector[B] {
	w := uint64(BlockWidth[B]())
	need := (bitLen + w - 1) / w
	if uint64(len(blocks)) < need {
		panic(fmt.Sprintf("succinct: %d blocks cannot hold %d bits", len(blocks), bitLen))
	}
	return &Vector[B]{
		blocks: Blocks[B](blocks[:need]),
		bitLen: bitLen,
	}
}

// BlockLen implements BitStore.
func (v *Vector[B]) BlockLen() int {
	return len(v.blocks)
}

// BitLen implements BitStore.
func (v *Vector[B]) BitLen() uint64 {
	return v.bitLen
}

// GetBlock implements BitStore. Bits of the last block beyond BitLen are
// returned as stored.
func (v *Vector[B]) GetBlock(i int) B {
	return v.blocks.GetBlock(i)
}

// GetBit implements BitStore.
func (v *Vector[B]) GetBit(i uint64) bool {
	if i >= v.bitLen {
		panic(fmt.Sprintf("succinct: bit index %d out of range [0, %d)", i, v.bitLen))
	}
	return v.blocks.GetBit(i)
}

// Blocks returns the underlying blocks.
func (v *Vector[B]) Blocks() []B {
	return v.blocks
}

// PopCount counts the set bits of s by scanning every block. It is the
// reference a rank support's MaxRank must agree with.
func PopCount[B Block](s BitStore[B]) uint64 {
	n := s.BitLen()
	if n == 0 {
		return 0
	}
	w := uint64(BlockWidth[B]())
	full := int(n / w)
	var count uint64
	for i := range full {
		count += uint64(bits.OnesCount64(uint64(s.GetBlock(i))))
	}
	if tail := n % w; tail != 0 {
		last := uint64(s.GetBlock(full))
		count += uint64(bits.OnesCount64(last >> (w - tail)))
	}
	return count
}
