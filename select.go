package succinct

import (
	"fmt"

	intbits "github.com/tamirms/succinct/internal/bits"
)

// Select is a rank-capable BitStore that can locate set bits.
type Select[B Block] interface {
	Rank[B]
	// Select returns the position of the (k+1)-th set bit. ok is false when
	// the store holds k or fewer set bits.
	Select(k uint64) (pos uint64, ok bool)
}

// BinSearchSelect answers select queries by binary searching the rank
// support it wraps. It stores nothing besides the wrapped rank support and
// its population count; every BitStore and Rank query is forwarded unchanged.
//
// The wrapped rank support is borrowed: it must stay valid and unmodified for
// as long as the BinSearchSelect is in use.
type BinSearchSelect[B Block, R Rank[B]] struct {
	rank    R
	maxRank uint64
}

// NewBinSearchSelect creates a select support over rank. An empty rank
// support yields a BinSearchSelect whose every Select reports no result.
func NewBinSearchSelect[B Block, R Rank[B]](rank R) *BinSearchSelect[B, R] {
	var maxRank uint64
	if n := rank.BitLen(); n > 0 {
		maxRank = rank.Rank(n - 1)
	}
	return &BinSearchSelect[B, R]{
		rank:    rank,
		maxRank: maxRank,
	}
}

// MaxRank returns the population count cached at construction.
func (s *BinSearchSelect[B, R]) MaxRank() uint64 {
	return s.maxRank
}

// BlockLen implements BitStore.
func (s *BinSearchSelect[B, R]) BlockLen() int {
	return s.rank.BlockLen()
}

// BitLen implements BitStore.
func (s *BinSearchSelect[B, R]) BitLen() uint64 {
	return s.rank.BitLen()
}

// GetBlock implements BitStore.
func (s *BinSearchSelect[B, R]) GetBlock(i int) B {
	return s.rank.GetBlock(i)
}

// GetBit implements BitStore.
func (s *BinSearchSelect[B, R]) GetBit(i uint64) bool {
	return s.rank.GetBit(i)
}

// Rank implements Rank.
func (s *BinSearchSelect[B, R]) Rank(i uint64) uint64 {
	return s.rank.Rank(i)
}

// Select implements Select using O(log BitLen()) rank queries.
//
// It panics if the wrapped rank support is discovered to be non-monotonic or
// to skip values during the search.
func (s *BinSearchSelect[B, R]) Select(k uint64) (uint64, bool) {
	// The k-th one sits where the rank first reaches k+1.
	if k >= s.maxRank {
		return 0, false
	}
	target := k + 1

	// Search in [start, limit).
	start := uint64(0)
	limit := s.rank.BitLen()
	for start < limit {
		mid := intbits.Midpoint(start, limit)

		midRank := s.rank.Rank(mid)
		var preMidRank uint64
		if mid > 0 {
			preMidRank = s.rank.Rank(mid - 1)
		}

		switch {
		case midRank == target && preMidRank == target-1:
			return mid, true
		case preMidRank > target:
			limit = mid - 1
		case preMidRank == target:
			limit = mid
		case midRank < target:
			start = mid + 1
		default:
			// preMidRank < target <= midRank without a unit step: rank
			// advanced by more than one at mid.
			panic(brokenInvariant(mid, midRank, preMidRank, target))
		}
	}

	panic(fmt.Sprintf("%s: search for rank %d ended empty at %d", brokenInvariantMsg, target, start))
}

const brokenInvariantMsg = "succinct: BinSearchSelect: broken invariant in rank support"

func brokenInvariant(pos, midRank, preMidRank, target uint64) string {
	return fmt.Sprintf("%s: rank(%d)=%d, rank(%d-1)=%d while searching for rank %d",
		brokenInvariantMsg, pos, midRank, pos, preMidRank, target)
}
