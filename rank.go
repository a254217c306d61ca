package succinct

import (
	"fmt"
	"math/bits"

	succincterrors "github.com/tamirms/succinct/errors"
	intbits "github.com/tamirms/succinct/internal/bits"
)

// Rank is a BitStore that can count set bits.
type Rank[B Block] interface {
	BitStore[B]
	// Rank returns the number of set bits in positions [0, i].
	// i must be less than BitLen().
	Rank(i uint64) uint64
}

// JacobsonRank answers rank queries in constant time using a two-level
// directory over a BitStore:
//
//   - superblocks[j] is the absolute number of set bits before superblock j
//   - blocks[i] is the number of set bits before block i, relative to the
//     start of its superblock
//
// A query adds the two counts to a masked popcount of the block holding the
// queried bit. The directory costs 16 bits per block plus 64 bits per
// superblock.
//
// The wrapped store must not be modified after construction.
type JacobsonRank[B Block] struct {
	store          BitStore[B]
	superblocks    []uint64
	blocks         []uint16
	blocksPerSuper int
	width          uint
	maxRank        uint64
}

// NewJacobsonRank builds a rank directory over store.
func NewJacobsonRank[B Block](store BitStore[B], opts ...RankOption) (*JacobsonRank[B], error) {
	cfg := defaultRankConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sb := cfg.superblockBits
	if sb < minSuperblockBits || sb > maxSuperblockBits || sb&(sb-1) != 0 {
		return nil, fmt.Errorf("%w: superblock bits %d must be a power of two in [%d, %d]",
			succincterrors.ErrInvalidOption, sb, minSuperblockBits, maxSuperblockBits)
	}

	w := BlockWidth[B]()
	numBlocks := store.BlockLen()
	bitLen := store.BitLen()
	if uint64(numBlocks)*uint64(w) < bitLen {
		panic(fmt.Sprintf("succinct: store reports %d bits in %d blocks of width %d", bitLen, numBlocks, w))
	}

	r := &JacobsonRank[B]{
		store:          store,
		blocksPerSuper: sb / int(w),
		width:          w,
	}
	r.blocks = make([]uint16, numBlocks)
	r.superblocks = make([]uint64, 0, numBlocks/r.blocksPerSuper+1)

	var total uint64
	var relative uint64
	for i := range numBlocks {
		if i%r.blocksPerSuper == 0 {
			r.superblocks = append(r.superblocks, total)
			relative = 0
		}
		r.blocks[i] = uint16(relative)

		count := r.blockCount(i, bitLen)
		relative += count
		total += count
	}
	if len(r.superblocks) == 0 {
		r.superblocks = append(r.superblocks, 0)
	}
	r.maxRank = total

	return r, nil
}

// blockCount counts the set bits of block i that lie below bitLen.
func (r *JacobsonRank[B]) blockCount(i int, bitLen uint64) uint64 {
	w := uint64(r.width)
	start := uint64(i) * w
	if start >= bitLen {
		return 0
	}
	word := uint64(r.store.GetBlock(i))
	if valid := bitLen - start; valid < w {
		return intbits.RankPrefix(word, uint(valid), r.width)
	}
	return uint64(bits.OnesCount64(word))
}

// Rank implements Rank.
func (r *JacobsonRank[B]) Rank(i uint64) uint64 {
	if i >= r.store.BitLen() {
		panic(fmt.Sprintf("succinct: rank index %d out of range [0, %d)", i, r.store.BitLen()))
	}
	w := uint64(r.width)
	block := int(i / w)
	offset := uint(i % w)

	rank := r.superblocks[block/r.blocksPerSuper] + uint64(r.blocks[block])
	return rank + intbits.RankPrefix(uint64(r.store.GetBlock(block)), offset+1, r.width)
}

// MaxRank returns the total number of set bits.
func (r *JacobsonRank[B]) MaxRank() uint64 {
	return r.maxRank
}

// Store returns the wrapped BitStore.
func (r *JacobsonRank[B]) Store() BitStore[B] {
	return r.store
}

// BlockLen implements BitStore.
func (r *JacobsonRank[B]) BlockLen() int {
	return r.store.BlockLen()
}

// BitLen implements BitStore.
func (r *JacobsonRank[B]) BitLen() uint64 {
	return r.store.BitLen()
}

// GetBlock implements BitStore.
func (r *JacobsonRank[B]) GetBlock(i int) B {
	return r.store.GetBlock(i)
}

// GetBit implements BitStore.
func (r *JacobsonRank[B]) GetBit(i uint64) bool {
	return r.store.GetBit(i)
}

// DirectorySize returns the number of bytes the rank directory adds on top of
// the wrapped store.
func (r *JacobsonRank[B]) DirectorySize() int {
	return len(r.superblocks)*8 + len(r.blocks)*2
}
