package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestDeleteListsNumberedEntries(t *testing.T) {
	out := setup(t, "")
	writeFile(t, *ledgerFile, sampleLedger)

	if status := run(t, &deleteCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got := out.String()
	for _, w := range []string{"| 1 | 2025-01-05 |", "| 4 | 2024-12-24 |"} {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
	if got := readFile(t, *ledgerFile); got != sampleLedger {
		t.Errorf("ledger was modified:\n%s", got)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	out := setup(t, "y\n")
	writeFile(t, *ledgerFile, sampleLedger)

	if status := run(t, &deleteCmd{}, "3"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out.String(), "(y/n)") {
		t.Errorf("no confirmation was asked:\n%s", out.String())
	}
	got := readFile(t, *ledgerFile)
	if strings.Contains(got, "february") {
		t.Errorf("entry #3 was not deleted:\n%s", got)
	}
	if n := strings.Count(got, "\n"); n != 3 {
		t.Errorf("ledger has %d lines, want 3", n)
	}
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	out := setup(t, "")
	writeFile(t, *ledgerFile, sampleLedger)

	if status := run(t, &deleteCmd{}, "-y", "1"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if strings.Contains(out.String(), "(y/n)") {
		t.Errorf("confirmation was asked despite -y:\n%s", out.String())
	}
	if got := readFile(t, *ledgerFile); strings.Contains(got, "lunch with Bob") {
		t.Errorf("entry #1 was not deleted:\n%s", got)
	}
}

func TestDeleteCanceled(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", ""} {
		out := setup(t, answer)
		writeFile(t, *ledgerFile, sampleLedger)

		if status := run(t, &deleteCmd{}, "2"); status != subcommands.ExitSuccess {
			t.Fatalf("answer %q: Expected ExitSuccess, got %v", answer, status)
		}
		if !strings.Contains(out.String(), "Canceled.") {
			t.Errorf("answer %q: unexpected output:\n%s", answer, out.String())
		}
		if got := readFile(t, *ledgerFile); got != sampleLedger {
			t.Errorf("answer %q: ledger was modified:\n%s", answer, got)
		}
	}
}

func TestDeleteInvalidNumber(t *testing.T) {
	tests := []struct {
		arg  string
		want subcommands.ExitStatus
	}{
		{"0", subcommands.ExitFailure},
		{"5", subcommands.ExitFailure},
		{"-1", subcommands.ExitFailure},
		{"two", subcommands.ExitUsageError},
	}
	for _, tt := range tests {
		setup(t, "y\n")
		writeFile(t, *ledgerFile, sampleLedger)
		if status := run(t, &deleteCmd{}, "--", tt.arg); status != tt.want {
			t.Errorf("delete %q: got %v, want %v", tt.arg, status, tt.want)
		}
		if got := readFile(t, *ledgerFile); got != sampleLedger {
			t.Errorf("delete %q: ledger was modified:\n%s", tt.arg, got)
		}
	}
}
