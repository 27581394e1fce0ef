package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned for text that is neither a number, an operator nor a parenthesis.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrUnmatchedParen is returned when parentheses do not balance.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")
	// ErrMalformedExpression is returned when operators and operands do not reduce to a single value.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrDivisionByZero is returned when a divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Error reports a failed evaluation of Expr.
type Error struct {
	Expr string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("invalid expression %q: %v", e.Expr, e.Err) }

func (e *Error) Unwrap() error { return e.Err }
