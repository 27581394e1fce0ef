package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tally/expr"
	"github.com/google/subcommands"
)

type evalCmd struct{}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate arithmetic expressions exactly" }
func (*evalCmd) Usage() string {
	return `tally eval [--] [<expression>]

  Evaluates an arithmetic expression with + - * / and parentheses, using exact
  decimal arithmetic. Divisions are rounded to 10 decimal places.
  Without argument, evaluates each line read from stdin.
  An expression starting with '-' must follow '--', or it is read as a flag.

Usage Examples:
$ tally eval '3 + 5 * (2 - 1)'
8
`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {}

func (c *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		if !evaluate(strings.Join(f.Args(), " ")) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	status := subcommands.ExitSuccess
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !evaluate(line) {
			status = subcommands.ExitFailure
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

// evaluate prints the value of s, or the reason it cannot be computed.
func evaluate(s string) bool {
	v, err := expr.Evaluate(s)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v%s\n", err, hint(err))
		return false
	}
	fmt.Fprintln(stdout, v.String())
	return true
}

// hint returns an explanation for the common mistakes.
func hint(err error) string {
	switch {
	case errors.Is(err, expr.ErrMalformedExpression):
		return " (negative numbers are written as a subtraction, like '0 - 5')"
	case errors.Is(err, expr.ErrUnknownSymbol):
		return " (only numbers, + - * / and parentheses are allowed)"
	default:
		return ""
	}
}
