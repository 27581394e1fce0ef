package tally

import (
	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// TWD is a helper for test to create money from a decimal literal.
func TWD(v string) Money { return M(decimal.RequireFromString(v), "TWD") }

// USD is a helper for test to create usd money from a decimal literal.
func USD(v string) Money { return M(decimal.RequireFromString(v), "USD") }

// expense is a helper for test to create an expense entry.
func expense(on string, amount Money, category, remark string) Entry {
	return Entry{Date: date.MustParse(on), Kind: Expense, Amount: amount, Category: category, Remark: remark}
}

// income is a helper for test to create an income entry.
func income(on string, amount Money, category, remark string) Entry {
	return Entry{Date: date.MustParse(on), Kind: Income, Amount: amount, Category: category, Remark: remark}
}
