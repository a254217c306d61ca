// Package bitio provides bit sinks and sources for universal codes.
//
// Writer and Reader pack bits most-significant-bit first into 64-bit words,
// the numbering succinct.Blocks[uint64] uses, so the words a Writer produces
// can be indexed for rank and select directly. Queue is an unpacked
// double-ended sequence of bits, convenient for tests and small buffers.
package bitio
