package esparse

import (
	"fmt"
	"sort"
	"strings"
)

// LineIndex maps byte offsets to line and column numbers. Line starts are computed once so that every lookup is a binary search.
// It recognizes \n, \r, \r\n, U+2028 and U+2029 as line terminators, as ECMAScript does.
type LineIndex struct {
	src    []byte
	starts []int // starts[i] is the offset at which line i+1 begins
}

// NewLineIndex returns the LineIndex of src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); {
		if n := LineTerminatorLen(src[i:]); n != 0 {
			i += n
			starts = append(starts, i)
		} else {
			i++
		}
	}
	return &LineIndex{src, starts}
}

// Lines returns the number of lines.
func (idx *LineIndex) Lines() int {
	return len(idx.starts)
}

// LineStart returns the offset at which a 1-based line begins.
func (idx *LineIndex) LineStart(line int) int {
	if line < 1 {
		return 0
	} else if len(idx.starts) < line {
		return len(idx.src)
	}
	return idx.starts[line-1]
}

// Position returns the 1-based line and the 0-based column of offset. Offsets outside the source are clamped.
// Columns count bytes rather than the UTF-16 code units reported by JavaScript engines and ESTree tools, so the two differ after non-ASCII characters.
func (idx *LineIndex) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	} else if len(idx.src) < offset {
		offset = len(idx.src)
	}
	line = sort.Search(len(idx.starts), func(i int) bool {
		return offset < idx.starts[i]
	})
	return line, offset - idx.LineStart(line)
}

// Context returns the line at offset followed by a caret pointing at the column.
func (idx *LineIndex) Context(offset int) string {
	line, col := idx.Position(offset)
	start := idx.LineStart(line)
	end := start
	for end < len(idx.src) && LineTerminatorLen(idx.src[end:]) == 0 {
		end++
	}
	context := fmt.Sprintf("%5d: %s\n", line, string(idx.src[start:end]))
	context += fmt.Sprintf("%s^", strings.Repeat(" ", col+7))
	return context
}
