package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entry from the ledger" }
func (*deleteCmd) Usage() string {
	return `tally delete [-y] [<n>]

  Without argument, prints all entries numbered in ledger order.
  With a number, deletes that entry after confirmation (skipped with -y).
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.Entries(renderer.Table{Title: "All entries", Entries: ledger.All(), First: 1, Page: 1, Pages: 1}))
		return subcommands.ExitSuccess
	}

	n, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid entry number %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if n < 1 || n > ledger.Len() {
		fmt.Fprintf(stderr, "Error: no entry #%d, the ledger has %d entries\n", n, ledger.Len())
		return subcommands.ExitFailure
	}

	if !c.yes {
		e := ledger.All()[n-1]
		question := fmt.Sprintf("Delete %s %s %s %q %q? (y/n) ", e.Date, e.Kind, e.Amount, e.Category, e.Remark)
		answer, _ := prompt(bufio.NewScanner(stdin), question)
		if strings.ToLower(answer) != "y" {
			fmt.Fprintln(stdout, "Canceled.")
			return subcommands.ExitSuccess
		}
	}

	e, err := ledger.Delete(n - 1)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted %s %s %s in %q\n", e.Date, e.Kind, e.Amount, e.Category)
	return subcommands.ExitSuccess
}
