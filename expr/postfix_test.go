package expr

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3 + 5 * (2 - 1)", "3 5 2 1 - * +"},
		{"10 - 2 - 3", "10 2 - 3 -"},
		{"100 / 10 / 2", "100 10 / 2 /"},
		{"2 * 3 + 4", "2 3 * 4 +"},
		{"2 + 3 * 4", "2 3 4 * +"},
		{"((1 + 2) * (3 + 4))", "1 2 + 3 4 + *"},
		{"1 - 2 + 3", "1 2 - 3 +"},
		{"8 / 2 * 4", "8 2 / 4 *"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ToPostfix(Tokenize(tt.in))
		if err != nil {
			t.Errorf("ToPostfix(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if texts(got) != tt.want {
			t.Errorf("ToPostfix(%q) = %q, want %q", tt.in, texts(got), tt.want)
		}
		for _, tok := range got {
			if tok.Kind() == LeftParen || tok.Kind() == RightParen {
				t.Errorf("ToPostfix(%q) left a parenthesis in the output", tt.in)
			}
		}
	}
}

func TestToPostfixErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"(1 + 2", ErrUnmatchedParen},
		{"1 + 2)", ErrUnmatchedParen},
		{"(()", ErrUnmatchedParen},
		{"1 ? 2", ErrUnknownSymbol},
	}
	for _, tt := range tests {
		_, err := ToPostfix(Tokenize(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("ToPostfix(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestEvalPostfix(t *testing.T) {
	d := decimal.RequireFromString
	postfix := []Token{Num(d("7")), Num(d("2")), Op('-'), Num(d("4")), Op('*')}
	got, err := EvalPostfix(postfix)
	if err != nil {
		t.Fatalf("EvalPostfix() unexpected error: %v", err)
	}
	if !got.Equal(d("20")) {
		t.Errorf("EvalPostfix() = %v, want 20", got)
	}

	// operands are popped right hand side first.
	got, err = EvalPostfix([]Token{Num(d("1")), Num(d("4")), Op('/')})
	if err != nil {
		t.Fatalf("EvalPostfix() unexpected error: %v", err)
	}
	if !got.Equal(d("0.25")) {
		t.Errorf("EvalPostfix(1 4 /) = %v, want 0.25", got)
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		postfix []Token
		want    error
	}{
		{"empty", nil, ErrMalformedExpression},
		{"lonely operator", []Token{Op('+')}, ErrMalformedExpression},
		{"missing operand", []Token{Num(d("1")), Op('*')}, ErrMalformedExpression},
		{"two values", []Token{Num(d("1")), Num(d("2"))}, ErrMalformedExpression},
		{"parenthesis", []Token{Num(d("1")), lparen}, ErrMalformedExpression},
		{"zero divisor", []Token{Num(d("1")), Num(d("0")), Op('/')}, ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EvalPostfix(tt.postfix); !errors.Is(err, tt.want) {
				t.Errorf("EvalPostfix() error = %v, want %v", err, tt.want)
			}
		})
	}
}
