package expr

import (
	"fmt"
	"iter"
)

// ToPostfix reorders infix tokens into postfix order using the shunting-yard algorithm.
//
// Parentheses are resolved and do not appear in the result. All operators are
// left-associative: "a - b - c" becomes "a b - c -".
func ToPostfix(tokens iter.Seq2[Token, error]) ([]Token, error) {
	var output []Token
	var stack []Token // operators and left parentheses

	for t, err := range tokens {
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case Number:
			output = append(output, t)

		case Operator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != Operator || top.precedence() < t.precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case LeftParen:
			stack = append(stack, t)

		case RightParen:
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: ')' without '('", ErrUnmatchedParen)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == LeftParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == LeftParen {
			return nil, fmt.Errorf("%w: '(' never closed", ErrUnmatchedParen)
		}
		output = append(output, top)
	}
	return output, nil
}
