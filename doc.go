// Package succinct implements rank and select queries over packed bit
// sequences.
//
// A BitStore exposes a fixed-length sequence of bits both bit by bit and as
// fixed-width blocks. A Rank support counts the set bits up to a position, and
// a Select support finds the position of the k-th set bit. Compressed data
// structures (succinct trees, compressed suffix arrays, posting lists) build
// on these two primitives.
//
// # Basic Usage
//
//	store := succinct.Blocks[uint32]{0b10000000000000001110000000000000}
//	rank, err := succinct.NewJacobsonRank[uint32](store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sel := succinct.NewBinSearchSelect[uint32](rank)
//
//	rank.Rank(16)     // 2: bits 0 and 16 are set
//	sel.Select(2)     // 17, true
//	sel.Select(4)     // 0, false: only four bits are set
//
// Bits are numbered from the most significant end of each block, so the
// literal above has bits 0, 16, 17 and 18 set.
//
// # Failure Model
//
// Asking for a set bit that does not exist is an ordinary outcome reported
// through a false ok result. Out-of-range indices and rank supports that
// break their invariants are programming errors and panic.
//
// # Package Structure
//
//   - Contracts: storage.go (Block, BitStore, Blocks, Vector), rank.go (Rank),
//     select.go (Select)
//   - Rank support: rank.go (JacobsonRank), options.go (RankOption)
//   - Select support: select.go (BinSearchSelect)
//   - Serialization: image.go (Encode, Decode)
//   - Bit streams: bitio/ (Writer, Reader, Queue)
//   - Universal codes: coding/ (Unary, Elias, Fibonacci, truncated binary, Rice)
//
// All structures are immutable after construction and may be shared across
// goroutines for reading, provided the stores they borrow are not modified.
package succinct
