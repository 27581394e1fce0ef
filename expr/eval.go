package expr

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DivisionScale is the number of fractional digits kept by a division.
const DivisionScale = 10

// Evaluate computes the exact value of an infix arithmetic expression.
//
// Supported are decimal numbers, the binary operators + - * / with the usual
// precedence, and parentheses. Any failure is returned as an *Error wrapping
// one of ErrUnknownSymbol, ErrUnmatchedParen, ErrMalformedExpression or
// ErrDivisionByZero.
func Evaluate(expression string) (decimal.Decimal, error) {
	postfix, err := ToPostfix(Tokenize(expression))
	if err != nil {
		return decimal.Zero, &Error{Expr: expression, Err: err}
	}
	v, err := EvalPostfix(postfix)
	if err != nil {
		return decimal.Zero, &Error{Expr: expression, Err: err}
	}
	return v, nil
}

// EvalPostfix reduces a postfix sequence of numbers and operators to a single value.
func EvalPostfix(postfix []Token) (decimal.Decimal, error) {
	stack := make([]decimal.Decimal, 0, len(postfix))
	for _, t := range postfix {
		switch t.kind {
		case Number:
			stack = append(stack, t.value)
		case Operator:
			if len(stack) < 2 {
				return decimal.Zero, fmt.Errorf("%w: missing operand for %q", ErrMalformedExpression, t.text)
			}
			// first pop is the right hand side.
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(t.text, a, b)
			if err != nil {
				return decimal.Zero, err
			}
			stack = append(stack, v)
		default:
			return decimal.Zero, fmt.Errorf("%w: unexpected %v in postfix expression", ErrMalformedExpression, t.kind)
		}
	}
	if len(stack) != 1 {
		return decimal.Zero, fmt.Errorf("%w: %d values left, want 1", ErrMalformedExpression, len(stack))
	}
	return stack[0], nil
}

func apply(op string, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		// DivRound rounds half away from zero.
		return a.DivRound(b, DivisionScale), nil
	default:
		return decimal.Zero, fmt.Errorf("%w %q", ErrUnknownSymbol, op)
	}
}
