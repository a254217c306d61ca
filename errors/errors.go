// Package errors defines all exported error sentinels for the succinct library.
//
// This is the single source of truth for error values. The top-level succinct
// package and the bitio and coding packages import from here, ensuring
// errors.Is checks work across package boundaries.
//
// Contract violations (out-of-range indices, a rank support that breaks its
// invariants) are not reported through these values; they panic.
package errors

import "errors"

// Configuration errors
var (
	ErrInvalidOption = errors.New("succinct: invalid option")
)

// Binary image errors
var (
	ErrInvalidMagic       = errors.New("succinct: invalid magic number")
	ErrInvalidVersion     = errors.New("succinct: unsupported version")
	ErrBlockWidthMismatch = errors.New("succinct: block width does not match requested block type")
	ErrTruncated          = errors.New("succinct: encoded data is truncated")
	ErrChecksumFailed     = errors.New("succinct: checksum verification failed")
	ErrCorrupted          = errors.New("succinct: encoded data is corrupted")
)

// Coding errors
var (
	ErrZeroValue       = errors.New("succinct: universal codes cannot encode zero")
	ErrValueOutOfRange = errors.New("succinct: value outside the range of the code")
	ErrMalformedCode   = errors.New("succinct: malformed code")
	ErrOverflow        = errors.New("succinct: decoded value overflows uint64")
)
