package esparse

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	err := NewError(NewLineIndex([]byte("buffer")), 3, "message")

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 3, "column")
	test.T(t, err.Offset, 3, "offset")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
}

func TestErrorFormat(t *testing.T) {
	err := NewError(NewLineIndex([]byte("a\nbc")), 3, "unexpected %s", "'c'")
	test.T(t, err.Message, "unexpected 'c'")
	test.T(t, err.Line, 2, "line")
	test.T(t, err.Column, 1, "column")
	test.T(t, "\n"+err.Context, "\n    2: bc\n        ^", "context")
}
