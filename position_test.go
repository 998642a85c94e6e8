package esparse

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 0},
		{1, "xx", 1, 1},
		{2, "x\nx", 2, 0},
		{2, "\n\nx", 3, 0},
		{3, "\nxxx", 2, 2},
		{2, "\r\nx", 2, 0},
		{1, "\rx", 2, 0},
		{4, "a\u2028b", 2, 0},
		{4, "a\u2029b", 2, 0},
		{5, "a\u2028b", 2, 1},
		{3, "ab\u2028", 1, 3},    // inside the terminator
		{6, "'\u00E9'; x", 1, 6}, // columns count bytes

		// edge cases
		{0, "", 1, 0},
		{0, "\n", 1, 0},
		{1, "\r\n", 1, 1},
		{-1, "x", 1, 0},
		{10, "x\ny", 2, 1}, // clamped to the end
		{1, "\x00a", 1, 1},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			line, col := NewLineIndex([]byte(tt.buf)).Position(tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionMonotonic(t *testing.T) {
	src := []byte("var a = 1;\r\nvar b\u2028= 2;\n\n  c\r")
	idx := NewLineIndex(src)
	test.T(t, idx.Lines(), 6, "lines")

	prevLine, prevCol := 0, -1
	for offset := 0; offset <= len(src); offset++ {
		line, col := idx.Position(offset)
		test.That(t, prevLine < line || prevLine == line && prevCol < col, fmt.Sprint("position must increase at offset ", offset))
		test.T(t, idx.LineStart(line)+col, offset, "line start plus column")
		prevLine, prevCol = line, col
	}
}

func TestLineStart(t *testing.T) {
	idx := NewLineIndex([]byte("ab\ncd\r\nef"))
	test.T(t, idx.LineStart(0), 0)
	test.T(t, idx.LineStart(1), 0)
	test.T(t, idx.LineStart(2), 3)
	test.T(t, idx.LineStart(3), 7)
	test.T(t, idx.LineStart(4), 9)
}

func TestPositionContext(t *testing.T) {
	var contextTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{0, "var", "    1: var\n       ^"},
		{5, "a;\nb = c;", "    2: b = c;\n         ^"},
		{3, "a\r\nb\r\n", "    2: b\n       ^"},
		{1, "", "    1: \n       ^"},
	}
	for _, tt := range contextTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			context := NewLineIndex([]byte(tt.buf)).Context(tt.offset)
			test.T(t, context, tt.context)
		})
	}
}
