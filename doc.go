// Package tis620 converts between TIS-620 (Thai Industrial Standard
// 620-2533) octets and Unicode text. The codec is pure, stateless and
// table-driven: 87 Thai-block characters (plus U+0E3F BAHT) map to byte
// values 0xA1-0xFB, ASCII passes through unchanged, and everything else is
// invalid.
//
// Modes:
//   - Decode/Encode: strict, all-or-nothing. The first invalid unit fails
//     the whole call with a typed error carrying that unit.
//   - EncodeLossy: never fails. A ReplacementFunc policy substitutes or
//     drops each unencodable rune.
//
// Append* variants reuse a caller-owned buffer across calls and produce
// byte-identical output to their allocating counterparts.
//
// The mapping table is immutable process-wide state; all operations are safe
// for concurrent use without coordination.
//
// Subpackage xtext adapts the codec to golang.org/x/text/encoding so it
// composes with transform readers and writers.
package tis620
