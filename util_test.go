package esparse

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func helperRandChars(n, m int, chars string) [][]byte {
	r := make([][]byte, n)
	for i := range r {
		for j := 0; j < m; j++ {
			r[i] = append(r[i], chars[rand.Intn(len(chars))])
		}
	}
	return r
}

////////////////////////////////////////////////////////////////

var ltSlices [][]byte

func init() {
	ltSlices = helperRandChars(10000, 50, "abcdefghijklmnop \t\n")
}

func TestIsLineTerminator(t *testing.T) {
	test.That(t, IsLineTerminator('\n'))
	test.That(t, IsLineTerminator('\r'))
	test.That(t, IsLineTerminator('\u2028'))
	test.That(t, IsLineTerminator('\u2029'))
	test.That(t, !IsLineTerminator('\t'))
	test.That(t, !IsLineTerminator('\u0085'))
}

func TestLineTerminatorLen(t *testing.T) {
	var tests = []struct {
		s string
		n int
	}{
		{"", 0},
		{"a\n", 0},
		{"\n", 1},
		{"\r", 1},
		{"\r\n", 2},
		{"\n\r", 1},
		{"\u2028x", 3},
		{"\u2029", 3},
		{"\u2027", 0},
		{"\xE2\x80", 0},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, LineTerminatorLen([]byte(tt.s)), tt.n)
		})
	}
}

func TestContainsLineTerminator(t *testing.T) {
	test.That(t, !ContainsLineTerminator([]byte("a b\tc")))
	test.That(t, ContainsLineTerminator([]byte("a\rb")))
	test.That(t, ContainsLineTerminator([]byte("a\u2028")))

	for _, b := range ltSlices[:100] {
		test.T(t, ContainsLineTerminator(b), bytes.IndexByte(b, '\n') != -1, string(b))
	}
}

////////////////////////////////////////////////////////////////

func BenchmarkContainsLineTerminator(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, e := range ltSlices {
			ContainsLineTerminator(e)
		}
	}
}

func BenchmarkIndexByte(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, e := range ltSlices {
			bytes.IndexByte(e, '\n')
		}
	}
}
