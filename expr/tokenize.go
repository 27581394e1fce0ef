package expr

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// delimiters split an expression, they are kept as tokens, except the space.
const delimiters = "+-*/() "

// Tokenize returns the sequence of tokens in s.
//
// The sequence is lazy and can be ranged over several times, yielding the same
// tokens each time. On an unknown symbol it yields a zero Token and an error
// wrapping ErrUnknownSymbol, and stops.
func Tokenize(s string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		rest := s
		for rest != "" {
			i := strings.IndexAny(rest, delimiters)
			if i == 0 {
				c := rest[0]
				rest = rest[1:]
				var t Token
				switch c {
				case ' ':
					continue
				case '(':
					t = lparen
				case ')':
					t = rparen
				default:
					t = Op(c)
				}
				if !yield(t, nil) {
					return
				}
				continue
			}

			var chunk string
			if i < 0 {
				chunk, rest = rest, ""
			} else {
				chunk, rest = rest[:i], rest[i:]
			}
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			t, err := number(chunk)
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Tokens collects all the tokens in s.
func Tokens(s string) ([]Token, error) {
	var tokens []Token
	for t, err := range Tokenize(s) {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// number parses a decimal literal: digits with at most one '.', and at least one digit.
func number(s string) (Token, error) {
	digits, dots := 0, 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return Token{}, fmt.Errorf("%w %q", ErrUnknownSymbol, s)
		}
	}
	if digits == 0 || dots > 1 {
		return Token{}, fmt.Errorf("%w %q", ErrUnknownSymbol, s)
	}

	lit := s
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	if strings.HasSuffix(lit, ".") {
		lit += "0"
	}
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return Token{}, fmt.Errorf("%w %q: %v", ErrUnknownSymbol, s, err)
	}
	return Token{kind: Number, text: s, value: v}, nil
}
