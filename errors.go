package commandlisp

import (
	"errors"
)

var (
	ErrUnboundSymbol      = errors.New("unbound symbol")
	ErrNotApplicable      = errors.New("first form must be a function")
	ErrEmptyApplication   = errors.New("expected a non-empty list")
	ErrBareCommand        = errors.New("unexpected form")
	ErrType               = errors.New("expected a number")
	ErrArity              = errors.New("expected at least one number")
	ErrArithmeticOverflow = errors.New("integer overflow")
)
