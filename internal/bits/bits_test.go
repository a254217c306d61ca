package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/big"
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

// TestFastRange64Monotonicity verifies that for a fixed n,
// h1 < h2 implies FastRange64(h1,n) <= FastRange64(h2,n).
func TestFastRange64Monotonicity(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := rng.Uint64N(math.MaxUint64) + 1
		h1 := rng.Uint64()
		h2 := rng.Uint64()
		if h1 > h2 {
			h1, h2 = h2, h1
		}

		r1 := FastRange64(h1, n)
		r2 := FastRange64(h2, n)
		if r1 > r2 {
			t.Fatalf("iter %d: monotonicity violated: FastRange64(0x%X, %d)=%d > FastRange64(0x%X, %d)=%d",
				i, h1, n, r1, h2, n, r2)
		}
	}
}

// TestFastRange64Range verifies that the result is always in [0, n).
func TestFastRange64Range(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := rng.Uint64N(math.MaxUint64) + 1
		h := rng.Uint64()

		if got := FastRange64(h, n); got >= n {
			t.Fatalf("iter %d: FastRange64(0x%X, %d)=%d >= %d", i, h, n, got, n)
		}
	}
}

func TestFastRange64EdgeCases(t *testing.T) {
	for _, h := range []uint64{0, 1, math.MaxUint64, 0xDEADBEEF} {
		if got := FastRange64(h, 0); got != 0 {
			t.Errorf("FastRange64(0x%X, 0) = %d, want 0", h, got)
		}
		if got := FastRange64(h, 1); got != 0 {
			t.Errorf("FastRange64(0x%X, 1) = %d, want 0", h, got)
		}
	}

	// h=MaxUint64 maps to n-1 for any n >= 2
	for n := uint64(2); n <= 100; n++ {
		if got := FastRange64(math.MaxUint64, n); got != n-1 {
			t.Errorf("FastRange64(MaxUint64, %d) = %d, want %d", n, got, n-1)
		}
	}
}

// TestMidpoint compares against arbitrary-precision arithmetic, including
// operands whose sum overflows uint64.
func TestMidpoint(t *testing.T) {
	rng := newTestRNG(t)

	check := func(a, b uint64) {
		t.Helper()
		sum := new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		want := sum.Rsh(sum, 1).Uint64()
		if got := Midpoint(a, b); got != want {
			t.Fatalf("Midpoint(%d, %d) = %d, want %d", a, b, got, want)
		}
	}

	check(0, 0)
	check(0, 1)
	check(1, 1)
	check(1, 2)
	check(math.MaxUint64, math.MaxUint64)
	check(math.MaxUint64-1, math.MaxUint64)
	check(math.MaxUint64/2+1, math.MaxUint64)

	for range 10000 {
		a, b := rng.Uint64(), rng.Uint64()
		if a > b {
			a, b = b, a
		}
		check(a, b)
		if m := Midpoint(a, b); a < b && (m < a || m >= b) {
			t.Fatalf("Midpoint(%d, %d) = %d, outside [a, b)", a, b, m)
		}
	}
}

func TestPrefixMask(t *testing.T) {
	tests := []struct {
		n, w uint
		want uint64
	}{
		{0, 8, 0},
		{1, 8, 0x80},
		{3, 8, 0xE0},
		{8, 8, 0xFF},
		{1, 32, 0x80000000},
		{16, 32, 0xFFFF0000},
		{32, 32, 0xFFFFFFFF},
		{1, 64, 0x8000000000000000},
		{63, 64, 0xFFFFFFFFFFFFFFFE},
		{64, 64, math.MaxUint64},
	}
	for _, tt := range tests {
		if got := PrefixMask(tt.n, tt.w); got != tt.want {
			t.Errorf("PrefixMask(%d, %d) = 0x%X, want 0x%X", tt.n, tt.w, got, tt.want)
		}
	}
}

// TestRankPrefix checks RankPrefix against a bit-by-bit count.
func TestRankPrefix(t *testing.T) {
	rng := newTestRNG(t)

	for _, w := range []uint{8, 16, 32, 64} {
		for range 200 {
			word := rng.Uint64() >> (64 - w)
			for n := uint(0); n <= w; n++ {
				var want uint64
				for j := uint(0); j < n; j++ {
					want += (word >> (w - 1 - j)) & 1
				}
				if got := RankPrefix(word, n, w); got != want {
					t.Fatalf("RankPrefix(0x%X, %d, %d) = %d, want %d", word, n, w, got, want)
				}
			}
		}
	}
}
