package tally

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// Ledger is the list of recorded entries, in the order they were added.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Add validates and appends an entry.
func (l *Ledger) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	l.entries = append(l.entries, e)
	return nil
}

// Delete removes and returns the entry at index i (0-based).
func (l *Ledger) Delete(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, fmt.Errorf("no entry #%d, the ledger has %d entries", i+1, len(l.entries))
	}
	e := l.entries[i]
	l.entries = slices.Delete(l.entries, i, i+1)
	return e, nil
}

// Entries iterates over entries with their index.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return slices.All(l.entries)
}

// All returns a copy of all entries.
func (l *Ledger) All() []Entry { return slices.Clone(l.entries) }

// filter returns a new slice with the entries accepted by keep.
func (l *Ledger) filter(keep func(Entry) bool) []Entry {
	list := make([]Entry, 0)
	for _, e := range l.entries {
		if keep(e) {
			list = append(list, e)
		}
	}
	return list
}

// ByMonth returns the entries of a given month.
func (l *Ledger) ByMonth(year int, month time.Month) []Entry {
	return l.filter(func(e Entry) bool { return e.Date.Year() == year && e.Date.Month() == month })
}

// ByYear returns the entries of a given year.
func (l *Ledger) ByYear(year int) []Entry {
	return l.filter(func(e Entry) bool { return e.Date.Year() == year })
}

// SearchRemark returns entries whose remark contains keyword, ignoring case.
func (l *Ledger) SearchRemark(keyword string) []Entry { return SearchRemark(l.entries, keyword) }

// SearchRemark returns a new slice with the entries whose remark contains keyword, ignoring case.
func SearchRemark(entries []Entry, keyword string) []Entry {
	keyword = strings.ToLower(keyword)
	list := make([]Entry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Remark), keyword) {
			list = append(list, e)
		}
	}
	return list
}

// SortOrder defines how entries are listed.
type SortOrder int

const (
	DateDesc SortOrder = iota // most recent first, the default
	DateAsc
	AmountDesc
	AmountAsc
)

func (o SortOrder) String() string {
	switch o {
	case DateDesc:
		return "date-desc"
	case DateAsc:
		return "date-asc"
	case AmountDesc:
		return "amount-desc"
	case AmountAsc:
		return "amount-asc"
	default:
		return "unknown"
	}
}

// ParseSortOrder parses a SortOrder, the empty string is DateDesc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "date-desc", "datedesc":
		return DateDesc, nil
	case "date-asc", "dateasc":
		return DateAsc, nil
	case "amount-desc", "amountdesc":
		return AmountDesc, nil
	case "amount-asc", "amountasc":
		return AmountAsc, nil
	default:
		return DateDesc, fmt.Errorf("unknown sort order %q", s)
	}
}

// Sort sorts entries in place. The sort is stable: entries that compare equal keep their order.
func Sort(entries []Entry, order SortOrder) {
	byDate := func(a, b Entry) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	}
	byAmount := func(a, b Entry) int { return a.Amount.Decimal().Cmp(b.Amount.Decimal()) }

	var cmp func(a, b Entry) int
	switch order {
	case DateAsc:
		cmp = byDate
	case AmountDesc:
		cmp = func(a, b Entry) int { return byAmount(b, a) }
	case AmountAsc:
		cmp = byAmount
	default:
		cmp = func(a, b Entry) int { return byDate(b, a) }
	}
	slices.SortStableFunc(entries, cmp)
}

// Summary totals entries in a single currency.
type Summary struct {
	Currency string
	Income   Money
	Expense  Money
	Count    int
}

// Net is income minus expenses.
func (s Summary) Net() Money { return s.Income.Sub(s.Expense) }

// Balance totals entries per currency, sorted by currency code.
func Balance(entries []Entry) []Summary {
	index := make(map[string]int)
	var sums []Summary
	for _, e := range entries {
		code := e.Amount.Currency()
		i, ok := index[code]
		if !ok {
			i = len(sums)
			index[code] = i
			sums = append(sums, Summary{Currency: code, Income: M(0, code), Expense: M(0, code)})
		}
		s := &sums[i]
		s.Count++
		switch e.Kind {
		case Income:
			s.Income = s.Income.Add(e.Amount)
		case Expense:
			s.Expense = s.Expense.Add(e.Amount)
		}
	}
	slices.SortFunc(sums, func(a, b Summary) int { return strings.Compare(a.Currency, b.Currency) })
	return sums
}

// Page returns the items of a 0-based page of the given size, and the total
// number of pages (at least 1). A page out of range is empty.
func Page[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 {
		size = len(items)
	}
	pages := 1
	if size > 0 && len(items) > 0 {
		pages = (len(items) + size - 1) / size
	}
	if page < 0 || page >= pages || len(items) == 0 {
		return []T{}, pages
	}
	start := page * size
	end := min(start+size, len(items))
	return items[start:end], pages
}
