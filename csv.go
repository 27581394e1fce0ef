package tally

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSV writes entries as CSV with a header line.
func ExportCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "amount", "currency", "category", "remark"}); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Date.String(),
			e.Kind.String(),
			e.Amount.Decimal().String(),
			e.Amount.Currency(),
			e.Category,
			e.Remark,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
