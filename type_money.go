package tally

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns Money for value in currency.
func M[T int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for its currency, rounded to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string               { return m.cur }
func (m Money) Decimal() decimal.Decimal       { return m.value }
func (m Money) Equal(n Money) bool             { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                   { return m.value.IsZero() }
func (m Money) IsPositive() bool               { return m.value.IsPositive() }
func (m Money) IsNegative() bool               { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool          { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool       { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                     { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money              { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money              { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) Cmp(n Money) int                { return m.value.Cmp(n.value) }

// StringFixed returns the decimal value with exactly places fractional digits, without currency.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
