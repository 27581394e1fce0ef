// Package expr evaluates infix arithmetic expressions typed as transaction
// amounts, like "3 + 5 * (2 - 1)".
//
// Evaluation is exact: numbers are decimal.Decimal values, and the only
// rounding happens on division, to 10 fractional digits, half away from zero.
//
// The evaluation is done in three steps: the expression is split into tokens,
// tokens are reordered in postfix (Reverse Polish) order, and the postfix
// sequence is reduced with a stack.
package expr

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is the lexical class of a Token.
type Kind int

const (
	Number Kind = iota
	Operator
	LeftParen
	RightParen
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is a lexical unit of an expression.
type Token struct {
	kind  Kind
	text  string
	value decimal.Decimal // only for Number
}

// Num returns a Number token for a decimal value.
func Num(v decimal.Decimal) Token { return Token{kind: Number, text: v.String(), value: v} }

// Op returns an Operator token, op must be one of "+-*/".
func Op(op byte) Token { return Token{kind: Operator, text: string(op)} }

var (
	lparen = Token{kind: LeftParen, text: "("}
	rparen = Token{kind: RightParen, text: ")"}
)

func (t Token) Kind() Kind { return t.kind }

// Text returns the token as it was read in the expression.
func (t Token) Text() string { return t.text }

// Value returns the decimal value of a Number token, zero otherwise.
func (t Token) Value() decimal.Decimal { return t.value }

func (t Token) String() string { return t.text }

// Equal reports whether t and u are the same token.
func (t Token) Equal(u Token) bool {
	return t.kind == u.kind && t.text == u.text && t.value.Equal(u.value)
}

// precedence returns the binding power of an operator token, higher binds tighter.
func (t Token) precedence() int {
	switch t.text {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return -1
	}
}
