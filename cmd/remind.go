package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type remindCmd struct {
	add   string
	day   int
	rm    int
	set   int
	today string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "show and edit monthly bill reminders" }
func (*remindCmd) Usage() string {
	return `tally remind [-add <name> -day <n> | -rm <n> | -set <n> -day <n>]

  Lists the monthly reminders with the number of days until they are due.
  The first time, rent, phone bill and utilities reminders are created on the 15th.

Usage Examples:
$ tally remind -add "gym" -day 5
$ tally remind -set 1 -day 10
$ tally remind -rm 2
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a reminder with this name, requires -day.")
	f.IntVar(&c.day, "day", 0, "Day of month the bill is due (1-31).")
	f.IntVar(&c.rm, "rm", 0, "Remove the n-th reminder.")
	f.IntVar(&c.set, "set", 0, "Change the day of the n-th reminder, requires -day.")
	f.StringVar(&c.today, "d", date.Today().String(), "Count days from this date (YYYY-MM-DD).")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actions := 0
	for _, set := range []bool{c.add != "", c.rm != 0, c.set != 0} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		fmt.Fprintln(stderr, "Error: -add, -rm and -set cannot be used together.")
		return subcommands.ExitUsageError
	}
	today, err := date.Parse(c.today)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	list, err := DecodeReminders()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	if actions == 1 {
		list, err = c.edit(list)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := EncodeReminders(list); err != nil {
			fmt.Fprintln(stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Reminders(list, today))
	return subcommands.ExitSuccess
}

// edit applies the requested change to a copy of list.
func (c *remindCmd) edit(list []tally.Reminder) ([]tally.Reminder, error) {
	list = slices.Clone(list)
	checkIndex := func(n int) error {
		if n < 1 || n > len(list) {
			return fmt.Errorf("no reminder #%d, there are %d reminders", n, len(list))
		}
		return nil
	}
	switch {
	case c.add != "":
		r := tally.Reminder{Name: c.add, Day: c.day}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		list = append(list, r)
	case c.rm != 0:
		if err := checkIndex(c.rm); err != nil {
			return nil, err
		}
		list = slices.Delete(list, c.rm-1, c.rm)
	case c.set != 0:
		if err := checkIndex(c.set); err != nil {
			return nil, err
		}
		r := list[c.set-1]
		r.Day = c.day
		if err := r.Validate(); err != nil {
			return nil, err
		}
		list[c.set-1] = r
	}
	return list, nil
}
