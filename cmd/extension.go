package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// Environment variables passed to extensions. They also provide the default
// values of the global flags.
const (
	EnvLedgerFile     = "TALLY_LEDGER_FILE"
	EnvRemindersFile  = "TALLY_REMINDERS_FILE"
	EnvCategoriesFile = "TALLY_CATEGORIES_FILE"
	EnvCurrency       = "TALLY_CURRENCY"
)

// envOr returns the value of the environment variable key, or def if it is empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// IsCommand reports whether name is one of the built-in subcommands.
func IsCommand(name string) bool {
	for _, c := range Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external tally-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "tally-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvRemindersFile+"="+*remindersFile,
		EnvCategoriesFile+"="+*categoriesFile,
		EnvCurrency+"="+*currency,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
