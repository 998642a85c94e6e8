package js

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestDecodeString(t *testing.T) {
	var tests = []struct {
		s        string
		strict   bool
		template bool
		expected string
	}{
		{"a\\nb", false, false, "a\nb"},
		{"\\x41\\u0042\\u{43}", false, false, "ABC"},
		{"\\uD83D\\uDE00", false, false, "\U0001F600"},
		{"\\u{1F600}", false, false, "\U0001F600"},
		{"\\uD83D", false, false, "\uFFFD"},
		{"\\101\\0", false, false, "A\x00"},
		{"a\\\nb\\\r\nc", false, false, "abc"},
		{"\\q\\'", false, false, "q'"},
		{"\\0", false, true, "\x00"},
		{"a\r\nb\rc", false, true, "a\nb\nc"},
		{"a\r\nb", false, false, "a\r\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			d := stringDecoder{version: ES2023, strict: tt.strict, template: tt.template}
			s, err := d.decode([]byte(tt.s))
			test.That(t, err == nil, "no error")
			test.String(t, s, tt.expected)
		})
	}
}

func TestDecodeStringError(t *testing.T) {
	var tests = []struct {
		s        string
		version  Version
		strict   bool
		template bool
		msg      string
		offset   int
	}{
		{"\\x4", ES2023, false, false, "Bad character escape sequence", 2},
		{"\\xZZ", ES2023, false, false, "Bad character escape sequence", 2},
		{"ab\\u12", ES2023, false, false, "Bad character escape sequence", 4},
		{"\\u{110000}", ES2023, false, false, "Code point out of bounds", 3},
		{"\\u{41}", ES5, false, false, "Bad character escape sequence", 2},
		{"\\01", ES2023, true, false, "Octal literal in strict mode", 0},
		{"\\01", ES2023, false, true, "Octal literal in template string", 0},
		{"\\8", ES2023, true, false, "Invalid escape sequence", 1},
		{"\\8", ES2023, false, true, "Invalid escape sequence in template string", 1},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			d := stringDecoder{version: tt.version, strict: tt.strict, template: tt.template}
			_, err := d.decode([]byte(tt.s))
			test.That(t, err != nil, "must fail")
			test.String(t, err.msg, tt.msg)
			test.T(t, err.offset, tt.offset)
		})
	}
}

func TestDecodeIdentifier(t *testing.T) {
	name, escaped, err := decodeIdentifier([]byte("abc"))
	test.T(t, name, "abc")
	test.T(t, escaped, false)
	test.That(t, err == nil)

	name, escaped, err = decodeIdentifier([]byte("\\u0061b\\u{63}"))
	test.T(t, name, "abc")
	test.T(t, escaped, true)
	test.That(t, err == nil)

	_, _, err = decodeIdentifier([]byte("\\u0031a"))
	test.That(t, err != nil)
	test.T(t, err.offset, 0)

	_, _, err = decodeIdentifier([]byte("a\\u002D"))
	test.That(t, err != nil)
	test.T(t, err.offset, 1)
}

func TestNumericValue(t *testing.T) {
	var tests = []struct {
		raw   string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{".5", 0.5},
		{"1.5e3", 1500},
		{"1_000.5", 1000.5},
		{"0x1F", 31},
		{"0o17", 15},
		{"0B101", 5},
		{"017", 15},
		{"019", 19},
		{"0xFFFFFFFFFFFFFFFFFF", 4722366482869645213696},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			test.T(t, numericValue([]byte(tt.raw)), tt.value)
		})
	}
	test.That(t, math.IsInf(numericValue([]byte("1e400")), 1), "overflow is infinity")
}

func TestBigIntValue(t *testing.T) {
	var tests = []struct {
		raw    string
		value  int64
		bigint string
	}{
		{"10n", 10, "10"},
		{"1_000n", 1000, "1000"},
		{"0x1Fn", 31, "0x1F"},
		{"0b11n", 3, "0b11"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			i, s := bigIntValue([]byte(tt.raw))
			test.T(t, i.Int64(), tt.value)
			test.String(t, s, tt.bigint)
		})
	}
}

func TestIdentifierRunes(t *testing.T) {
	var tests = []struct {
		r     rune
		start bool
		part  bool
	}{
		{'a', true, true},
		{'$', true, true},
		{'_', true, true},
		{'1', false, true},
		{'-', false, false},
		{'\u00D8', true, true},
		{'\u200C', false, true},
		{'\u0301', false, true},
		{' ', false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			test.T(t, isIdentifierStartRune(tt.r), tt.start, "start")
			test.T(t, isIdentifierPartRune(tt.r), tt.part, "part")
		})
	}
}
