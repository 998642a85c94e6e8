package esparse

import (
	"io"
	"unicode/utf8"
)

// Input is an in-memory buffer over source text that allows peeking forward, moving back and shifting out lexemes.
// Peeking past the end of the buffer returns a NULL byte, use EOF to tell it apart from a NULL in the source.
type Input struct {
	buf   []byte
	start int // start of the current lexeme
	pos   int // current position
}

// NewInput returns a new Input over b, the bytes are not copied.
func NewInput(b []byte) *Input {
	return &Input{
		buf: b,
	}
}

// Err returns io.EOF when the end of the buffer has been reached.
func (z *Input) Err() error {
	if z.EOF() {
		return io.EOF
	}
	return nil
}

// EOF returns true if the current position is at or past the end of the buffer.
func (z *Input) EOF() bool {
	return len(z.buf) <= z.pos
}

// Peek returns the ith byte relative to the current position.
func (z *Input) Peek(i int) byte {
	i += z.pos
	if 0 <= i && i < len(z.buf) {
		return z.buf[i]
	}
	return 0
}

// PeekRune returns the rune and its byte length at the ith byte relative to the current position.
func (z *Input) PeekRune(i int) (rune, int) {
	i += z.pos
	if i < 0 || len(z.buf) <= i {
		return 0, 0
	}
	c := z.buf[i]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(z.buf[i:])
}

// Move advances the position by n bytes, n may be negative.
func (z *Input) Move(n int) {
	z.pos += n
}

// Pos returns the position relative to the start of the current lexeme.
func (z *Input) Pos() int {
	return z.pos - z.start
}

// Rewind sets the position relative to the start of the current lexeme.
func (z *Input) Rewind(pos int) {
	z.pos = z.start + pos
}

// Lexeme returns the bytes of the current lexeme.
func (z *Input) Lexeme() []byte {
	return z.buf[z.start:z.pos:z.pos]
}

// Skip collapses the current lexeme, its start is set to the current position.
func (z *Input) Skip() {
	z.start = z.pos
}

// Shift returns the bytes of the current lexeme and starts a new one.
func (z *Input) Shift() []byte {
	b := z.buf[z.start:z.pos:z.pos]
	z.start = z.pos
	return b
}

// Start returns the absolute offset of the current lexeme.
func (z *Input) Start() int {
	return z.start
}

// Offset returns the absolute offset of the current position.
func (z *Input) Offset() int {
	return z.pos
}

// Reset moves the lexeme start and the position to an absolute offset, clamped to the buffer.
func (z *Input) Reset(offset int) {
	if offset < 0 {
		offset = 0
	} else if len(z.buf) < offset {
		offset = len(z.buf)
	}
	z.start = offset
	z.pos = offset
}

// Len returns the length of the buffer.
func (z *Input) Len() int {
	return len(z.buf)
}

// Bytes returns the underlying buffer.
func (z *Input) Bytes() []byte {
	return z.buf
}
