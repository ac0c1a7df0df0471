package tis620

import (
	"fmt"
)

// DecodeError reports the first input byte with no TIS-620 meaning.
type DecodeError struct {
	Byte byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("0x%02X is invalid TIS-620 byte.", e.Byte)
}

// EncodeError reports the first input rune with no TIS-620 representation.
type EncodeError struct {
	Rune rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%q is invalid TIS-620 character.", e.Rune)
}
