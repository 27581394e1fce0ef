package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"42", "42"},
		{"12.50", "12.5"},
		{".5 + 5.", "5.5"},
		{"3 + 5 * (2 - 1)", "8"},
		{"10 - 2 - 3", "5"},
		{"100 / 10 / 2", "5"},
		{"((1 + 2) * (3 + 4))", "21"},
		{"2*3+4", "10"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"  7   *  ( 1+1 ) ", "14"},
		{"0.1 + 0.2", "0.3"},
		{"1 - 3", "-2"},
		{"1 / 3", "0.3333333333"},
		{"2 / 3", "0.6666666667"},
		{"(1 - 3) / 3", "-0.6666666667"},
		{"1 / 2 / 10000000000", "0.0000000001"},
		{"(0 - 1) / 20000000000", "-0.0000000001"},
		{"1 / 3 * 3", "0.9999999999"},
		{"120 * 3 + 45.5 / 2", "382.75"},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) unexpected error: %v", tt.expr, err)
			continue
		}
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, want)
		}
	}
}

func TestEvaluateDivisionScale(t *testing.T) {
	got, err := Evaluate("1 / 3")
	if err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}
	if got.String() != "0.3333333333" {
		t.Errorf("Evaluate(\"1 / 3\") = %s, want 0.3333333333", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"5 / 0", ErrDivisionByZero},
		{"5 / (2 - 2)", ErrDivisionByZero},
		{"5 / 0.000", ErrDivisionByZero},
		{"(1 + 2", ErrUnmatchedParen},
		{"1 + 2)", ErrUnmatchedParen},
		{") (", ErrUnmatchedParen},
		{"((1)", ErrUnmatchedParen},
		{"+ 3", ErrMalformedExpression},
		{"3 +", ErrMalformedExpression},
		{"", ErrMalformedExpression},
		{"   ", ErrMalformedExpression},
		{"()", ErrMalformedExpression},
		{"3 4", ErrMalformedExpression},
		{"-5 + 3", ErrMalformedExpression},
		{"3 & 4", ErrUnknownSymbol},
		{"1e5", ErrUnknownSymbol},
		{"1.2.3", ErrUnknownSymbol},
		{"abc", ErrUnknownSymbol},
		{".", ErrUnknownSymbol},
		{"3\t4", ErrUnknownSymbol},
		{"1,000", ErrUnknownSymbol},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		if !errors.Is(err, tt.want) {
			t.Errorf("Evaluate(%q) = %v, %v; want error %v", tt.expr, got, err, tt.want)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("Evaluate(%q) error %T is not an *Error", tt.expr, err)
			continue
		}
		if e.Expr != tt.expr {
			t.Errorf("Evaluate(%q) error Expr = %q", tt.expr, e.Expr)
		}
		if !got.IsZero() {
			t.Errorf("Evaluate(%q) returned a partial result %v", tt.expr, got)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Evaluate("3 & 4")
	if err == nil {
		t.Fatal("Evaluate() expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"3 & 4"`) || !strings.Contains(msg, `unknown symbol "&"`) {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	const in = "(12.3 + 4) * 7 / 3 - 1"
	first, err := Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Evaluate(in)
		if err != nil || !got.Equal(first) {
			t.Fatalf("Evaluate(%q) run %d = %v, %v; want %v", in, i, got, err, first)
		}
	}
}
