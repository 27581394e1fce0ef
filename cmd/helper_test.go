package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// setup points the global flags to temporary files, and captures stdout and stderr.
// It returns the captured stdout, see errorOutput for stderr.
func setup(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()

	oldLedger, oldReminders, oldCategories := *ledgerFile, *remindersFile, *categoriesFile
	oldCurrency, oldRaw := *currency, *raw
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	t.Cleanup(func() {
		*ledgerFile, *remindersFile, *categoriesFile = oldLedger, oldReminders, oldCategories
		*currency, *raw = oldCurrency, oldRaw
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})

	*ledgerFile = filepath.Join(dir, "ledger.jsonl")
	*remindersFile = filepath.Join(dir, "reminders.jsonl")
	*categoriesFile = filepath.Join(dir, "categories.jsonl")
	*currency = "TWD"
	*raw = true
	out := &bytes.Buffer{}
	stdin, stdout, stderr = strings.NewReader(input), out, &bytes.Buffer{}
	return out
}

// errorOutput returns what was written to stderr since setup.
func errorOutput() string { return stderr.(*bytes.Buffer).String() }

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %q: %v", name, err)
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", name, err)
	}
	return string(content)
}

const sampleLedger = `{"date":"2025-01-05","type":"expense","amount":120,"currency":"TWD","category":"food","remark":"lunch with Bob"}
{"date":"2025-01-31","type":"income","amount":52000,"currency":"TWD","category":"salary"}
{"date":"2025-02-01","type":"expense","amount":15000,"currency":"TWD","category":"rent","remark":"february"}
{"date":"2024-12-24","type":"expense","amount":3000,"currency":"TWD","category":"gift","remark":"christmas"}
`
