package tally

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tally/date"
)

// DefaultReminderDay is the due day of the default reminders.
const DefaultReminderDay = 15

// Reminder is a bill due every month on the same day.
type Reminder struct {
	Name string `json:"name"`
	Day  int    `json:"day"` // day of month, 1 to 31
}

// DefaultReminders returns the reminders created on first use.
func DefaultReminders() []Reminder {
	return []Reminder{
		{Name: "rent", Day: DefaultReminderDay},
		{Name: "phone bill", Day: DefaultReminderDay},
		{Name: "utilities", Day: DefaultReminderDay},
	}
}

// Validate checks the reminder name and day.
func (r Reminder) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("missing reminder name"))
	}
	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, fmt.Errorf("invalid day of month %d, want 1 to 31", r.Day))
	}
	return errors.Join(errs...)
}

// Due returns the next due date on or after today.
//
// The due day is clamped to the length of the month: a reminder on the 31st
// is due on the 30th in April.
func (r Reminder) Due(today date.Date) date.Date {
	due := today.WithDay(r.Day)
	if today.After(due) {
		due = today.WithDay(1).AddMonths(1).WithDay(r.Day)
	}
	return due
}

// DaysRemaining returns the number of days from today to the next due date, 0 if due today.
func (r Reminder) DaysRemaining(today date.Date) int {
	return r.Due(today).Sub(today)
}

func (r Reminder) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", r.Name)
	w.Append("day", r.Day)
	return w.MarshalJSON()
}

// EncodeReminders writes reminders in JSONL format.
func EncodeReminders(w io.Writer, reminders []Reminder) error {
	for _, r := range reminders {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeReminders reads reminders in JSONL format.
func DecodeReminders(r io.Reader) ([]Reminder, error) {
	list := make([]Reminder, 0)
	err := decodeLines(r, func(i int, line []byte) error {
		var rem Reminder
		if err := json.Unmarshal(line, &rem); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
		if err := rem.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		list = append(list, rem)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
