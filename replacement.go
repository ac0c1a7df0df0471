package tis620

// ReplacementChar is a substitute byte for lossy encoding. It can only be
// constructed from a rune that is itself representable in TIS-620, so a
// ReplacementChar obtained from ReplacementCharFromRune always carries a
// valid byte. The zero value encodes as NUL.
type ReplacementChar struct {
	b byte
}

// ReplacementCharFromRune validates that r is representable in TIS-620
// (ASCII or Thai-mapped) and wraps it. ok is false for anything else; the
// caller must check before handing the result to a lossy encode.
func ReplacementCharFromRune(r rune) (ReplacementChar, bool) {
	b, ok := tisByte(r)
	if !ok {
		return ReplacementChar{}, false
	}
	return ReplacementChar{b: b}, true
}

// Byte returns the TIS-620 byte the replacement encodes as.
func (rc ReplacementChar) Byte() byte { return rc.b }

// FixedReplacement returns a policy substituting rc for every unencodable
// rune.
func FixedReplacement(rc ReplacementChar) ReplacementFunc {
	return func(rune) (ReplacementChar, bool) { return rc, true }
}
