package tally

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger and reminders are persisted as JSONL: one json object per line, in
// a stable field order, so that the files remain human-readable and
// friendly to version control.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// decodeLines calls decode for each non blank line read from r, with its 1-based line number.
func decodeLines(r io.Reader, decode func(i int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if strings.TrimSpace(string(line)) == "" {
			continue
		}
		if err := decode(i, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// encodeLine writes v as a single json line.
func encodeLine(w io.Writer, v json.Marshaler) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}
