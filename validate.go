package cvdash

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrEmptyInput reports a data file with no content.
	ErrEmptyInput = errors.New("empty input")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is empty, not valid UTF-8, or
// appears binary. It runs before JSON decoding so that a wrong file yields a
// clear error instead of a syntax error at some offset.
func ValidateInput(src []byte) error {
	if len(bytes.TrimSpace(src)) == 0 {
		return ErrEmptyInput
	}
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}
