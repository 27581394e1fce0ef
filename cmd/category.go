package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type categoryCmd struct {
	kind   string
	add    string
	parent string
	rm     string
	rename string
	to     string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "show and edit entry categories" }
func (*categoryCmd) Usage() string {
	return `tally category [-t income|expense] [-add <name> [-parent <main>] | -rm <name> | -rename <name> -to <new name>]

  Lists the income categories and the expense categories, grouped under their
  main category. Entries can only be recorded in a category of their type.
  The first time, a default set of categories is created.

  For expenses, -add without -parent creates a main category.
  Removing a main category removes its sub-categories.

Usage Examples:
$ tally category -add pets
$ tally category -add vet -parent pets
$ tally category -t income -add "rental income"
$ tally category -rename food -to groceries
$ tally category -rm movies
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Category type: income or expense")
	f.StringVar(&c.add, "add", "", "Add a category with this name.")
	f.StringVar(&c.parent, "parent", "", "Main category of the expense category to add.")
	f.StringVar(&c.rm, "rm", "", "Remove the category with this name.")
	f.StringVar(&c.rename, "rename", "", "Rename the category with this name, requires -to.")
	f.StringVar(&c.to, "to", "", "New name of the renamed category.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actions := 0
	for _, set := range []bool{c.add != "", c.rm != "", c.rename != ""} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		fmt.Fprintln(stderr, "Error: -add, -rm and -rename cannot be used together.")
		return subcommands.ExitUsageError
	}
	if c.rename != "" && c.to == "" {
		fmt.Fprintln(stderr, "Error: -rename requires -to.")
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

	if actions == 1 {
		switch {
		case c.add != "":
			err = categories.Add(kind, c.parent, c.add)
		case c.rm != "":
			err = categories.Remove(kind, c.rm)
		default:
			err = categories.Rename(kind, c.rename, c.to)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := EncodeCategories(categories); err != nil {
			fmt.Fprintln(stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Categories(categories))
	return subcommands.ExitSuccess
}
