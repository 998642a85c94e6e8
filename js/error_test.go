package js

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func TestSyntaxError(t *testing.T) {
	_, err := Parse([]byte("a = 1;\nfoo bar"), Options{})
	require.Error(t, err)
	syntaxErr, ok := err.(*SyntaxError)
	require.True(t, ok)
	test.String(t, syntaxErr.Message, "Unexpected token")
	test.T(t, syntaxErr.Offset, 11)
	test.T(t, syntaxErr.Line, 2)
	test.T(t, syntaxErr.Column, 4)
	test.That(t, syntaxErr.Unwrap() == nil, "no lexical error")

	line, col, context := syntaxErr.Position()
	test.T(t, line, 2)
	test.T(t, col, 4)
	test.That(t, context != "", "context")
}

func TestSyntaxErrorLexical(t *testing.T) {
	_, err := Parse([]byte("x = 'abc"), Options{})
	require.Error(t, err)
	test.String(t, err.Error(), "Unterminated string constant (1:4)")

	var lexErr *LexError
	test.That(t, errors.As(err, &lexErr), "wraps the LexError")
	test.T(t, lexErr.Offset, 4)
	test.String(t, lexErr.Error(), "Unterminated string constant at offset 4")
}

func TestParseNoPanic(t *testing.T) {
	var tests = []string{
		"(",
		"a(",
		"{",
		"`${",
		"function (",
		"class { #",
		"x = {get",
		"for (let [",
		"a => {",
		"async (",
		"import(",
		"/",
		"new.",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Parse([]byte(src), Options{EcmaVersion: Latest})
			test.That(t, err != nil, "truncated source must fail")
			_, ok := err.(*SyntaxError)
			test.That(t, ok, "must be a SyntaxError")
		})
	}
}
