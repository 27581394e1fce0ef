package tally

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tally/date"
)

// Kind tells whether an entry brings money in or takes it out.
type Kind int

const (
	Expense Kind = iota
	Income
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a Kind, it accepts the english names and their traditional chinese equivalent.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "收入":
		return Income, nil
	case "expense", "out", "支出":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown entry type %q, want income or expense", s)
	}
}

// Entry is a single record in the ledger.
type Entry struct {
	Date     date.Date
	Kind     Kind
	Amount   Money
	Category string
	Remark   string
}

// Signed returns the amount with its sign: negative for expenses.
func (e Entry) Signed() Money {
	if e.Kind == Expense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate returns all the reasons e cannot be recorded.
func (e Entry) Validate() error {
	var errs []error
	if e.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if e.Kind != Income && e.Kind != Expense {
		errs = append(errs, fmt.Errorf("invalid entry type %d", int(e.Kind)))
	}
	if !e.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("amount must be positive, got %s", e.Amount.Decimal()))
	}
	if strings.TrimSpace(e.Category) == "" {
		errs = append(errs, errors.New("missing category"))
	}
	return errors.Join(errs...)
}
