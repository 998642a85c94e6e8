package esparse

// IsLineTerminator returns true for \n, \r, U+2028 and U+2029.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// LineTerminatorLen returns the byte length of the line terminator at the start of b, where \r\n counts as one terminator. It returns 0 if b does not start with a line terminator.
func LineTerminatorLen(b []byte) int {
	if len(b) == 0 {
		return 0
	} else if b[0] == '\n' {
		return 1
	} else if b[0] == '\r' {
		if 1 < len(b) && b[1] == '\n' {
			return 2
		}
		return 1
	} else if b[0] == 0xE2 && 2 < len(b) && b[1] == 0x80 && (b[2] == 0xA8 || b[2] == 0xA9) {
		return 3 // U+2028 or U+2029
	}
	return 0
}

// ContainsLineTerminator returns true if b contains a line terminator.
func ContainsLineTerminator(b []byte) bool {
	for i := 0; i < len(b); i++ {
		if LineTerminatorLen(b[i:]) != 0 {
			return true
		}
	}
	return false
}
