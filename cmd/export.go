package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	sort   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as a CSV file" }
func (*exportCmd) Usage() string {
	return `tally export [-o <file>] [-sort <order>]

  Writes all entries to a CSV file, by default ledger_<today>.csv.
  Use -o - to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout.")
	f.StringVar(&c.sort, "sort", "date-asc", "Sort order.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := tally.ParseSortOrder(c.sort)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	entries := ledger.All()
	tally.Sort(entries, order)

	if c.output == "-" {
		if err := tally.ExportCSV(stdout, entries); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = fmt.Sprintf("ledger_%s.csv", date.Today())
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := tally.ExportCSV(out, entries); err != nil {
		fmt.Fprintf(stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported %d entries to %s\n", len(entries), filename)
	return subcommands.ExitSuccess
}
