// Package bits provides low-level bit manipulation primitives.
//
// Words are addressed most-significant-bit first: bit offset 0 of a w-bit
// word is its highest bit.
package bits

import "math/bits"

// FastRange64 maps a 64-bit hash uniformly to [0, n).
// Uses the "fastrange" technique: multiply and take high bits.
func FastRange64(hash, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, n)
	return hi
}

// Midpoint returns floor((start+limit)/2) without overflowing uint64.
func Midpoint(start, limit uint64) uint64 {
	return start/2 + limit/2 + (start%2+limit%2)/2
}

// PrefixMask returns a w-bit mask with the top n bits set (n <= w <= 64).
func PrefixMask(n, w uint) uint64 {
	if n == 0 {
		return 0
	}
	full := ^uint64(0) >> (64 - w)
	return full &^ (full >> n)
}

// RankPrefix counts the set bits among the first n MSB-first bits of a
// w-bit word.
func RankPrefix(word uint64, n, w uint) uint64 {
	return uint64(bits.OnesCount64(word & PrefixMask(n, w)))
}
