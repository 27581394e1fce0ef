package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestRemindCreatesDefaults(t *testing.T) {
	out := setup(t, "")

	if status := run(t, &remindCmd{}, "-d", "2025-03-10"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := `{"name":"rent","day":15}
{"name":"phone bill","day":15}
{"name":"utilities","day":15}
`
	if got := readFile(t, *remindersFile); got != want {
		t.Errorf("reminders file =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(out.String(), "1. rent due in 5 days (2025-03-15, every month on day 15)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRemindDueToday(t *testing.T) {
	out := setup(t, "")
	writeFile(t, *remindersFile, `{"name":"rent","day":15}`+"\n")

	if status := run(t, &remindCmd{}, "-d", "2025-03-15"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out.String(), "**Today: pay rent!**") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRemindEdit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "add",
			args: []string{"-add", "gym", "-day", "5"},
			want: `{"name":"rent","day":15}
{"name":"phone bill","day":20}
{"name":"gym","day":5}
`,
		},
		{
			name: "remove",
			args: []string{"-rm", "1"},
			want: `{"name":"phone bill","day":20}
`,
		},
		{
			name: "set",
			args: []string{"-set", "2", "-day", "31"},
			want: `{"name":"rent","day":15}
{"name":"phone bill","day":31}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t, "")
			writeFile(t, *remindersFile, `{"name":"rent","day":15}
{"name":"phone bill","day":20}
`)
			args := append([]string{"-d", "2025-03-10"}, tt.args...)
			if status := run(t, &remindCmd{}, args...); status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if got := readFile(t, *remindersFile); got != tt.want {
				t.Errorf("reminders file =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRemindEditErrors(t *testing.T) {
	const reminders = `{"name":"rent","day":15}` + "\n"
	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"add without day", []string{"-add", "gym"}, subcommands.ExitFailure},
		{"set day out of range", []string{"-set", "1", "-day", "32"}, subcommands.ExitFailure},
		{"remove missing", []string{"-rm", "2"}, subcommands.ExitFailure},
		{"two actions", []string{"-rm", "1", "-add", "gym", "-day", "3"}, subcommands.ExitUsageError},
		{"bad date", []string{"-d", "tomorrow"}, subcommands.ExitUsageError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t, "")
			writeFile(t, *remindersFile, reminders)
			if status := run(t, &remindCmd{}, tt.args...); status != tt.want {
				t.Errorf("got %v, want %v", status, tt.want)
			}
			if got := readFile(t, *remindersFile); got != reminders {
				t.Errorf("reminders file was modified:\n%s", got)
			}
		})
	}
}

func TestRemindRecreatesDefaultsWhenEmpty(t *testing.T) {
	out := setup(t, "")
	writeFile(t, *remindersFile, `{"name":"rent","day":15}`+"\n")

	// removing the last reminder leaves an empty list.
	if status := run(t, &remindCmd{}, "-d", "2025-03-10", "-rm", "1"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := readFile(t, *remindersFile); got != "" {
		t.Errorf("reminders file = %q, want empty", got)
	}
	if !strings.Contains(out.String(), "No reminders.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	// the next time, the default reminders are back.
	if status := run(t, &remindCmd{}, "-d", "2025-03-10"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := readFile(t, *remindersFile); strings.Count(got, "\n") != 3 || !strings.Contains(got, `"name":"utilities"`) {
		t.Errorf("default reminders were not recreated:\n%s", got)
	}
}
