package pdf

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// textEncoder maps UTF-8 input onto the byte strings the active font
// expects.
type textEncoder func(string) string

// encodeCore transcodes s to Windows-1252 for the core fonts. Runes the code
// page cannot represent, and control characters, are dropped.
func encodeCore(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' {
			b.WriteByte(' ')
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func encodeUTF8(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
