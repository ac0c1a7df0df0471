// Package xtext adapts the TIS-620 codec to the golang.org/x/text encoding
// interfaces so it composes with transform readers, writers and pipelines.
//
// Per x/text convention the decoder substitutes U+FFFD for bytes outside the
// TIS-620 repertoire instead of failing; use tis620.Decode for the strict
// all-or-nothing contract. The encoder rejects unmappable runes with
// ErrUnmappable and malformed UTF-8 with encoding.ErrInvalidUTF8. Note that
// encoding.ReplaceUnsupported only recognizes x/text's internal repertoire
// errors and will not substitute for this encoder; use tis620.EncodeLossy
// when replacement semantics are wanted.
package xtext

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/unkn0wn-root/tis620"
)

// ErrUnmappable is returned by the encoder for a rune with no TIS-620
// representation.
var ErrUnmappable = errors.New("xtext: rune has no TIS-620 representation")

// TIS620 is the TIS-620 encoding.
var TIS620 encoding.Encoding = tis620Encoding{}

type tis620Encoding struct{}

func (tis620Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: tis620Decoder{}}
}

func (tis620Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: tis620Encoder{}}
}

func (tis620Encoding) String() string { return "TIS-620" }

type tis620Decoder struct{ transform.NopResetter }

func (tis620Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for ; nSrc < len(src); nSrc++ {
		b := src[nSrc]
		if b < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			continue
		}
		r, ok := tis620.RuneForByte(b)
		if !ok {
			r = utf8.RuneError
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
	}
	return nDst, nSrc, nil
}

type tis620Encoder struct{ transform.NopResetter }

func (tis620Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError && size == 1 {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, encoding.ErrInvalidUTF8
			}
		}
		b, ok := byteFor(r)
		if !ok {
			return nDst, nSrc, ErrUnmappable
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

func byteFor(r rune) (byte, bool) {
	if r < utf8.RuneSelf {
		return byte(r), true
	}
	return tis620.ByteForRune(r)
}
