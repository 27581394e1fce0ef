// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, group(cmd.Name()))
	}
}

// Commands returns all the subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&listCmd{},
		&deleteCmd{},
		&exportCmd{},
		&evalCmd{},
		&remindCmd{},
		&categoryCmd{},
	}
}

func group(name string) string {
	switch name {
	case "add", "list", "delete", "export":
		return "ledger"
	case "remind", "category":
		return "settings"
	default:
		return "tools"
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "ledger.jsonl"), "Path to the ledger file (JSONL format)")
var remindersFile = flag.String("reminders-file", envOr(EnvRemindersFile, "reminders.jsonl"), "Path to the reminders file (JSONL format)")
var categoriesFile = flag.String("categories-file", envOr(EnvCategoriesFile, "categories.jsonl"), "Path to the categories file (JSONL format)")
var currency = flag.String("currency", envOr(EnvCurrency, "TWD"), "Currency of new entries")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal")

// stdin, stdout and stderr are variables to be replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// DecodeLedger reads the ledger file. A missing file is an empty ledger.
func DecodeLedger() (*tally.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, starting with an empty ledger", *ledgerFile)
		return tally.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	l, err := tally.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", *ledgerFile, err)
	}
	return l, nil
}

// EncodeLedger rewrites the whole ledger file.
func EncodeLedger(l *tally.Ledger) error {
	var buf bytes.Buffer
	if err := tally.EncodeLedger(&buf, l); err != nil {
		return err
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write ledger %q: %w", *ledgerFile, err)
	}
	return nil
}

// appendEntry appends a single entry to the ledger file.
func appendEntry(e tally.Entry) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tally.EncodeEntry(f, e); err != nil {
		fmt.Fprintf(stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// DecodeReminders reads the reminders file.
// When it does not exist or is empty, it is created with the default reminders.
func DecodeReminders() ([]tally.Reminder, error) {
	f, err := os.Open(*remindersFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, reminders %q do not exist, creating the default reminders", *remindersFile)
		list := tally.DefaultReminders()
		return list, EncodeReminders(list)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open reminders %q: %w", *remindersFile, err)
	}
	defer f.Close()
	list, err := tally.DecodeReminders(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode reminders %q: %w", *remindersFile, err)
	}
	if len(list) == 0 {
		log.Printf("warning, reminders %q are empty, creating the default reminders", *remindersFile)
		list = tally.DefaultReminders()
		return list, EncodeReminders(list)
	}
	return list, nil
}

// EncodeReminders rewrites the reminders file.
func EncodeReminders(list []tally.Reminder) error {
	var buf bytes.Buffer
	if err := tally.EncodeReminders(&buf, list); err != nil {
		return err
	}
	if err := os.WriteFile(*remindersFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write reminders %q: %w", *remindersFile, err)
	}
	return nil
}

// DecodeCategories reads the categories file.
// When it does not exist, it is created with the default categories.
func DecodeCategories() (*tally.Categories, error) {
	f, err := os.Open(*categoriesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, categories %q do not exist, creating the default categories", *categoriesFile)
		c := tally.DefaultCategories()
		return c, EncodeCategories(c)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open categories %q: %w", *categoriesFile, err)
	}
	defer f.Close()
	c, err := tally.DecodeCategories(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode categories %q: %w", *categoriesFile, err)
	}
	return c, nil
}

// EncodeCategories rewrites the categories file.
func EncodeCategories(c *tally.Categories) error {
	var buf bytes.Buffer
	if err := tally.EncodeCategories(&buf, c); err != nil {
		return err
	}
	if err := os.WriteFile(*categoriesFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write categories %q: %w", *categoriesFile, err)
	}
	return nil
}

// printMarkdown renders md for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// prompt prints question and reads a line of input. ok is false when the input is exhausted.
func prompt(in *bufio.Scanner, question string) (line string, ok bool) {
	fmt.Fprint(stdout, question)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
