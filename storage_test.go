package succinct

import (
	"testing"
)

func TestBlockWidth(t *testing.T) {
	if got := BlockWidth[uint8](); got != 8 {
		t.Errorf("BlockWidth[uint8] = %d, want 8", got)
	}
	if got := BlockWidth[uint16](); got != 16 {
		t.Errorf("BlockWidth[uint16] = %d, want 16", got)
	}
	if got := BlockWidth[uint32](); got != 32 {
		t.Errorf("BlockWidth[uint32] = %d, want 32", got)
	}
	if got := BlockWidth[uint64](); got != 64 {
		t.Errorf("BlockWidth[uint64] = %d, want 64", got)
	}
}

// TestBlocksBitOrder verifies that bits are numbered from the most
// significant end of each block.
func TestBlocksBitOrder(t *testing.T) {
	s := Blocks[uint32]{0b10000000000000001110000000000000, 1}

	if s.BlockLen() != 2 {
		t.Fatalf("BlockLen = %d, want 2", s.BlockLen())
	}
	if s.BitLen() != 64 {
		t.Fatalf("BitLen = %d, want 64", s.BitLen())
	}

	set := map[uint64]bool{0: true, 16: true, 17: true, 18: true, 63: true}
	for i := range s.BitLen() {
		if got := s.GetBit(i); got != set[i] {
			t.Errorf("GetBit(%d) = %v, want %v", i, got, set[i])
		}
	}
}

// TestBitAndBlockViewsAgree checks the BitStore invariant for every block width.
func TestBitAndBlockViewsAgree(t *testing.T) {
	rng := newTestRNG(t)

	t.Run("uint8", func(t *testing.T) { checkViewsAgree[uint8](t, randomBlocks[uint8](rng, 37, 128)) })
	t.Run("uint16", func(t *testing.T) { checkViewsAgree[uint16](t, randomBlocks[uint16](rng, 37, 128)) })
	t.Run("uint32", func(t *testing.T) { checkViewsAgree[uint32](t, randomBlocks[uint32](rng, 37, 128)) })
	t.Run("uint64", func(t *testing.T) { checkViewsAgree[uint64](t, randomBlocks[uint64](rng, 37, 128)) })
}

func checkViewsAgree[B Block](t *testing.T, s BitStore[B]) {
	t.Helper()
	w := uint64(BlockWidth[B]())
	for i := range s.BitLen() {
		block := uint64(s.GetBlock(int(i / w)))
		want := (block>>(w-1-i%w))&1 != 0
		if got := s.GetBit(i); got != want {
			t.Fatalf("GetBit(%d) = %v, block view says %v", i, got, want)
		}
	}
}

func TestVector(t *testing.T) {
	v := NewVector([]uint8{0xFF, 0xFF, 0xFF}, 20)

	if v.BitLen() != 20 {
		t.Errorf("BitLen = %d, want 20", v.BitLen())
	}
	if v.BlockLen() != 3 {
		t.Errorf("BlockLen = %d, want 3", v.BlockLen())
	}
	if !v.GetBit(19) {
		t.Error("GetBit(19) = false, want true")
	}
	if got := PopCount[uint8](v); got != 20 {
		t.Errorf("PopCount = %d, want 20", got)
	}

	// Blocks beyond the bit length are dropped.
	v = NewVector([]uint8{0xFF, 0xFF, 0xFF}, 8)
	if v.BlockLen() != 1 {
		t.Errorf("BlockLen = %d, want 1", v.BlockLen())
	}
	if len(v.Blocks()) != 1 {
		t.Errorf("len(Blocks()) = %d, want 1", len(v.Blocks()))
	}

	empty := NewVector[uint64](nil, 0)
	if empty.BitLen() != 0 || empty.BlockLen() != 0 {
		t.Errorf("empty vector: BitLen=%d BlockLen=%d, want 0 0", empty.BitLen(), empty.BlockLen())
	}
}

func TestPopCount(t *testing.T) {
	rng := newTestRNG(t)
	s := randomBlocks[uint16](rng, 100, 77)

	want := uint64(len(naiveSelects[uint16](s)))
	if got := PopCount[uint16](s); got != want {
		t.Errorf("PopCount = %d, want %d", got, want)
	}
	if got := PopCount[uint16](Blocks[uint16]{}); got != 0 {
		t.Errorf("PopCount(empty) = %d, want 0", got)
	}
}

func TestStoreOutOfRangePanics(t *testing.T) {
	s := Blocks[uint32]{1, 2}
	expectPanic(t, "GetBlock(2)", func() { s.GetBlock(2) })
	expectPanic(t, "GetBlock(-1)", func() { s.GetBlock(-1) })
	expectPanic(t, "GetBit(64)", func() { s.GetBit(64) })

	v := NewVector([]uint32{1, 2}, 40)
	expectPanic(t, "Vector.GetBit(40)", func() { v.GetBit(40) })
	expectPanic(t, "NewVector too short", func() { NewVector([]uint32{1}, 33) })
}
