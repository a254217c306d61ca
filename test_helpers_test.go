package succinct

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// repeatBlock returns n copies of b.
func repeatBlock[B Block](b B, n int) Blocks[B] {
	s := make(Blocks[B], n)
	for i := range s {
		s[i] = b
	}
	return s
}

// randomBlocks returns n blocks whose bits are set with probability
// density/256.
func randomBlocks[B Block](rng *rand.Rand, n int, density uint8) Blocks[B] {
	w := BlockWidth[B]()
	s := make(Blocks[B], n)
	for i := range s {
		var v uint64
		for j := uint(0); j < w; j++ {
			if uint8(rng.Uint32N(256)) < density {
				v |= 1 << j
			}
		}
		s[i] = B(v)
	}
	return s
}

// naiveRanks returns the inclusive prefix counts of s, bit by bit.
func naiveRanks[B Block](s BitStore[B]) []uint64 {
	ranks := make([]uint64, s.BitLen())
	var count uint64
	for i := range s.BitLen() {
		if s.GetBit(i) {
			count++
		}
		ranks[i] = count
	}
	return ranks
}

// naiveSelects returns the positions of the set bits of s in order.
func naiveSelects[B Block](s BitStore[B]) []uint64 {
	var positions []uint64
	for i := range s.BitLen() {
		if s.GetBit(i) {
			positions = append(positions, i)
		}
	}
	return positions
}

func mustRank[B Block](t testing.TB, s BitStore[B], opts ...RankOption) *JacobsonRank[B] {
	t.Helper()
	r, err := NewJacobsonRank(s, opts...)
	if err != nil {
		t.Fatalf("NewJacobsonRank: %v", err)
	}
	return r
}

// expectPanic runs fn and fails the test unless it panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
