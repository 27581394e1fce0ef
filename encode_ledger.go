package tally

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// jentry is the persisted form of an Entry.
type jentry struct {
	Date     date.Date       `json:"date"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Remark   string          `json:"remark"`
}

// MarshalJSON writes fields in a fixed order: date, type, amount, currency, category, remark.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("type", e.Kind.String())
	w.Append("amount", e.Amount.Decimal())
	w.Optional("currency", e.Amount.Currency())
	w.Append("category", e.Category)
	w.Optional("remark", e.Remark)
	return w.MarshalJSON()
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var j jentry
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	kind, err := ParseKind(j.Type)
	if err != nil {
		return err
	}
	*e = Entry{
		Date:     j.Date,
		Kind:     kind,
		Amount:   M(j.Amount, j.Currency),
		Category: j.Category,
		Remark:   j.Remark,
	}
	return nil
}

// EncodeEntry writes a single entry as a JSON line.
func EncodeEntry(w io.Writer, e Entry) error { return encodeLine(w, e) }

// EncodeLedger writes all entries in JSONL format, in ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, e := range l.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a ledger in JSONL format. Every entry is validated.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	err := decodeLines(r, func(i int, line []byte) error {
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
		if err := l.Add(e); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
