package esparse

import (
	"fmt"
)

// Error is a parsing error returned by parser. It contains a message and the offset, line and column at which the error occurred.
type Error struct {
	Message string
	Offset  int
	Line    int // 1-based
	Column  int // 0-based, in bytes
	Context string
}

// NewError creates a new error at offset, its position is resolved through lines.
func NewError(lines *LineIndex, offset int, msg string, a ...interface{}) *Error {
	if 0 < len(a) {
		msg = fmt.Sprintf(msg, a...)
	}
	line, column := lines.Position(offset)
	return &Error{
		Message: msg,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: lines.Context(offset),
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number. The column is printed 1-based.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column+1, e.Context)
}
