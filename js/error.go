package js

import (
	"strconv"

	"github.com/tdewolff/esparse"
)

// SyntaxError is returned by the parser and tokenizer for invalid source. It carries the message and the offset, line, column and context of the offending position.
type SyntaxError struct {
	Message string
	Offset  int
	Line    int // 1-based
	Column  int // 0-based, in bytes
	Context string
	Err     error // the LexError for lexical errors, nil otherwise
}

func newSyntaxError(lines *esparse.LineIndex, offset int, msg string, err error) *SyntaxError {
	e := esparse.NewError(lines, offset, msg)
	return &SyntaxError{
		Message: e.Message,
		Offset:  e.Offset,
		Line:    e.Line,
		Column:  e.Column,
		Context: e.Context,
		Err:     err,
	}
}

// Error renders the message followed by the 1-based line and 0-based column.
func (e *SyntaxError) Error() string {
	return e.Message + " (" + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column) + ")"
}

// Unwrap returns the wrapped lexical error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Position returns the line, column and context of the error, like esparse.Error.
func (e *SyntaxError) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// bailout is the panic value used to abort parsing, it is recovered at the API boundary.
type bailout struct {
	err error
}

// recoverBailout turns a bailout panic into an error and repanics anything else.
func recoverBailout(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}
