package js

import (
	"unicode"
	"unicode/utf8"
)

func utf8DecodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	} else if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	return utf8.DecodeRune(b)
}

// isSpaceRune returns true for non-ASCII whitespace and line terminators.
func isSpaceRune(r rune) bool {
	return r == '\u00A0' || r == '\uFEFF' || r == '\u2028' || r == '\u2029' || unicode.Is(unicode.Zs, r)
}
