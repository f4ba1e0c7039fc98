package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEnd        = errors.New("unexpected end of input")
	ErrUnexpectedCloseParen = errors.New("unexpected `)`")
	ErrUnterminatedList     = errors.New("could not find closing `)`")
	ErrTooDeep              = errors.New("expression nested too deeply")
)

// Error is a parse failure located at a column of the input line.
type Error struct {
	Err error
	Col int
}

func newError(err error, col int) *Error {
	return &Error{Err: err, Col: col}
}

func (e *Error) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%v (col %d)", e.Err, e.Col)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
