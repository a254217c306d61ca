// Package coding implements universal codes: self-delimiting, variable-length
// encodings of strictly positive integers into a bit stream.
//
// Every code satisfies the same law: decoding the bits written by Encode(v)
// yields v and consumes exactly those bits, so values written back to back
// decode in order without separators.
//
// Codes operate on strictly positive values. Callers storing zero either
// bias their values themselves or wrap a code in Lift0.
//
// Families:
//
//   - Unary: v-1 one-bits and a terminating zero-bit
//   - EliasGamma, EliasDelta, EliasOmega: length-prefixed binary
//   - Fibonacci: Zeckendorf representation terminated by "11"
//   - TruncatedBinary: near-fixed-width code for values in [1, N]
//   - Rice: Golomb-Rice code with a power-of-two divisor
//
// Codes write to any BitWriter and read from any BitReader. bitio.Writer and
// bitio.Reader offer word-level fast paths that the codes use when present.
package coding
