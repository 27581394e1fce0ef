package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type listCmd struct {
	year   int
	month  int
	search string
	sort   string
	page   int
	size   int
	html   bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list entries of the ledger with their balance" }
func (*listCmd) Usage() string {
	return `tally list [-y <year> [-month <month>]] [-search <keyword>] [-sort <order>] [-page <n>] [-size <n>] [-html]

  Lists entries from the ledger, filtered by year, month or remark keyword,
  sorted and paginated, followed by the income, expense and net totals.

  Sort orders are date-desc (default), date-asc, amount-desc and amount-asc.
  Entries are not numbered, 'tally delete' lists them with their number.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Only entries of this year.")
	f.IntVar(&c.month, "month", 0, "Only entries of this month (1-12), requires -y.")
	f.StringVar(&c.search, "search", "", "Only entries whose remark contains this keyword.")
	f.StringVar(&c.sort, "sort", "date-desc", "Sort order.")
	f.IntVar(&c.page, "page", 1, "Page to show.")
	f.IntVar(&c.size, "size", 20, "Entries per page, 0 for a single page.")
	f.BoolVar(&c.html, "html", false, "Print HTML instead of markdown.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month != 0 && (c.year == 0 || c.month < 1 || c.month > 12) {
		fmt.Fprintln(stderr, "Error: -month must be between 1 and 12 and requires -y.")
		return subcommands.ExitUsageError
	}
	if c.page < 1 {
		fmt.Fprintln(stderr, "Error: -page must be at least 1.")
		return subcommands.ExitUsageError
	}
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

	title := "All entries"
	var entries []tally.Entry
	switch {
	case c.month != 0:
		entries = ledger.ByMonth(c.year, time.Month(c.month))
		title = fmt.Sprintf("%d-%02d", c.year, c.month)
	case c.year != 0:
		entries = ledger.ByYear(c.year)
		title = fmt.Sprintf("%d", c.year)
	default:
		entries = ledger.All()
	}
	if c.search != "" {
		entries = tally.SearchRemark(entries, c.search)
		title += fmt.Sprintf(" matching %q", c.search)
	}
	tally.Sort(entries, order)

	page, pages := tally.Page(entries, c.page-1, c.size)
	if c.page > pages {
		fmt.Fprintf(stderr, "Error: -page %d is out of range, there are %d pages.\n", c.page, pages)
		return subcommands.ExitUsageError
	}
	doc := renderer.Entries(renderer.Table{Title: title, Entries: page, Page: c.page, Pages: pages}) +
		"\n" + renderer.Summary("Balance", tally.Balance(entries))

	if c.html {
		gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
		if err := gm.Convert([]byte(doc), stdout); err != nil {
			fmt.Fprintf(stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
