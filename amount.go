package tally

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tally/expr"
	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by ParseAmount on blank input.
var ErrEmptyAmount = errors.New("empty amount")

// ParseAmount reads an amount typed by the user.
//
// The input is either a plain decimal number ("12.50") or an arithmetic
// expression ("3 * 45 + 12.5"): anything containing an operator or a
// parenthesis is handed to expr.Evaluate.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}
	if strings.ContainsAny(s, "+-*/()") {
		return expr.Evaluate(s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}
