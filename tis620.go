package tis620

import (
	"unicode/utf8"
)

const asciiMax = 0x7F

// ReplacementFunc decides what to substitute for a rune with no TIS-620
// representation during lossy encoding. It is called once per such rune.
// Returning ok=false drops the rune from the output.
type ReplacementFunc func(r rune) (ReplacementChar, bool)

// Decode interprets input as TIS-620 octets and returns the equivalent
// string. Decoding is all-or-nothing: the first byte outside ASCII and the
// Thai table fails the whole call with a *DecodeError and no output.
func Decode(input []byte) (string, error) {
	buf, err := AppendDecode(make([]byte, 0, len(input)), input)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendDecode is like Decode but appends UTF-8 bytes to dst and returns the
// extended slice, letting one buffer serve many calls. On error dst is
// returned at its original length.
func AppendDecode(dst []byte, input []byte) ([]byte, error) {
	n := len(dst)
	for _, b := range input {
		if b <= asciiMax {
			dst = append(dst, b)
			continue
		}
		r, ok := RuneForByte(b)
		if !ok {
			return dst[:n], &DecodeError{Byte: b}
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst, nil
}

// Encode converts input to TIS-620 octets. Encoding is all-or-nothing: the
// first rune outside ASCII and the Thai table fails the whole call with an
// *EncodeError. Malformed UTF-8 decodes as U+FFFD and therefore fails too.
func Encode(input string) ([]byte, error) {
	return AppendEncode(make([]byte, 0, len(input)), input)
}

// AppendEncode is like Encode but appends to dst and returns the extended
// slice. On error dst is returned at its original length.
func AppendEncode(dst []byte, input string) ([]byte, error) {
	n := len(dst)
	for _, r := range input {
		b, ok := tisByte(r)
		if !ok {
			return dst[:n], &EncodeError{Rune: r}
		}
		dst = append(dst, b)
	}
	return dst, nil
}

// EncodeLossy converts input to TIS-620 octets, consulting repl for every
// rune that has no TIS-620 representation. It never fails; dropped runes make
// the output shorter than the input. A nil repl drops all such runes.
func EncodeLossy(input string, repl ReplacementFunc) []byte {
	return AppendEncodeLossy(make([]byte, 0, len(input)), input, repl)
}

// AppendEncodeLossy is like EncodeLossy but appends to dst and returns the
// extended slice.
func AppendEncodeLossy(dst []byte, input string, repl ReplacementFunc) []byte {
	for _, r := range input {
		if b, ok := tisByte(r); ok {
			dst = append(dst, b)
			continue
		}
		if repl == nil {
			continue
		}
		if rc, ok := repl(r); ok {
			dst = append(dst, rc.Byte())
		}
	}
	return dst
}

// tisByte maps a rune to its TIS-620 byte: identity for ASCII, table lookup
// for everything else.
func tisByte(r rune) (byte, bool) {
	if r <= asciiMax {
		return byte(r), true
	}
	return ByteForRune(r)
}
