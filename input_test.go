package esparse

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	var s = `Lorem ipsum dolor sit amet, consectetur adipiscing elit.`
	var z = NewInput([]byte(s))

	assert.Equal(t, 0, z.Pos(), "buffer must start at position 0")
	assert.Equal(t, byte('L'), z.Peek(0), "first character must be 'L'")
	assert.Equal(t, byte('o'), z.Peek(1), "second character must be 'o'")

	z.Move(1)
	assert.Equal(t, byte('o'), z.Peek(0), "must be 'o' at position 1")
	assert.Equal(t, byte('r'), z.Peek(1), "must be 'r' at position 1")
	z.Rewind(6)
	assert.Equal(t, byte('i'), z.Peek(0), "must be 'i' at position 6")
	assert.Equal(t, byte('p'), z.Peek(1), "must be 'p' at position 7")

	assert.Equal(t, []byte("Lorem "), z.Lexeme(), "buffered string must now read 'Lorem ' when at position 6")
	assert.Equal(t, []byte("Lorem "), z.Shift(), "shift must return the buffered string")
	assert.Equal(t, 6, z.Start(), "lexeme must start at offset 6 after shift")
	assert.Equal(t, 0, z.Pos(), "position must be 0 after shift")
	assert.Equal(t, byte('i'), z.Peek(0), "must be 'i' at position 0 after shift")
	assert.Equal(t, byte('p'), z.Peek(1), "must be 'p' at position 1 after shift")

	z.Move(5)
	assert.Equal(t, []byte("ipsum"), z.Lexeme(), "lexeme must be 'ipsum'")
	z.Skip()
	assert.Equal(t, 11, z.Offset(), "offset must be 11 after skip")
	assert.Equal(t, []byte{}, z.Lexeme(), "lexeme must be empty after skip")

	assert.Equal(t, byte(0), z.Peek(len(s)), "peeking past the end must return 0")
	assert.Equal(t, byte('u'), z.Peek(-2), "peeking backwards must work")
	assert.Nil(t, z.Err(), "error must be nil before the end")

	z.Reset(len(s) + 10)
	assert.Equal(t, len(s), z.Offset(), "reset must clamp to the end")
	assert.True(t, z.EOF(), "must be at the end")
	assert.Equal(t, io.EOF, z.Err(), "error must be io.EOF at the end")
}

func TestInputRune(t *testing.T) {
	z := NewInput([]byte("a\u00E9\u2028"))

	r, n := z.PeekRune(0)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, n)

	r, n = z.PeekRune(1)
	assert.Equal(t, '\u00E9', r)
	assert.Equal(t, 2, n)

	r, n = z.PeekRune(3)
	assert.Equal(t, '\u2028', r)
	assert.Equal(t, 3, n)

	r, n = z.PeekRune(6)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, 0, n)
	assert.Equal(t, 6, z.Len())
}
