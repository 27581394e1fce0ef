package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	date     string
	kind     string
	category string
	remark   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `tally add [-d <date>] [-t income|expense] -c <category> [-m <remark>] [--] [<amount>]

  Records an entry in the ledger. The amount is a decimal number or an
  arithmetic expression with + - * / and parentheses, quote it for the shell.
  When the amount is missing or invalid, it is asked for until a valid one is typed.
  An amount starting with '-' must follow '--', or it is read as a flag.

  The category must be one of the categories of the entry type, see 'tally category'.

Usage Examples:
$ tally add -c food -m "lunch" 120
$ tally add -c food -m "bento for the team" '3 * 95 + 40'
$ tally add -t income -c salary 52000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Entry date (YYYY-MM-DD)")
	f.StringVar(&c.kind, "t", "expense", "Entry type: income or expense")
	f.StringVar(&c.category, "c", "", "Category, like food or salary")
	f.StringVar(&c.remark, "m", "", "An optional remark")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.category) == "" {
		fmt.Fprintln(stderr, "Error: -c category is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := tally.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	categories, err := DecodeCategories()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	if !categories.Valid(kind, c.category) {
		fmt.Fprintf(stderr, "Error: %q is not an %s category, choose one of: %s\n",
			c.category, kind, strings.Join(categories.Names(kind), ", "))
		return subcommands.ExitUsageError
	}

	amount, ok := readAmount(strings.Join(f.Args(), " "))
	if !ok {
		fmt.Fprintln(stderr, "Error: no valid amount was given.")
		return subcommands.ExitFailure
	}

	e := tally.Entry{
		Date:     day,
		Kind:     kind,
		Amount:   tally.M(amount, *currency),
		Category: c.category,
		Remark:   c.remark,
	}
	if err := e.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid entry: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := appendEntry(e); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Recorded %s %s %s in %q\n", e.Date, e.Kind, e.Amount, e.Category)
	return subcommands.ExitSuccess
}

// readAmount parses input as an amount, and asks for a new one on stdin until it is valid.
// It returns false when stdin is exhausted.
func readAmount(input string) (decimal.Decimal, bool) {
	var in *bufio.Scanner
	for {
		if strings.TrimSpace(input) != "" {
			v, err := tally.ParseAmount(input)
			if err == nil {
				return v, true
			}
			fmt.Fprintf(stderr, "Invalid amount: %v\n", err)
		}
		if in == nil {
			in = bufio.NewScanner(stdin)
		}
		line, ok := prompt(in, "Amount or expression: ")
		if !ok {
			return decimal.Zero, false
		}
		input = line
	}
}
