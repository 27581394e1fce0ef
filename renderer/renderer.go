// Package renderer renders ledger entries, balances and reminders as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"add":   func(a, b int) int { return a + b },
	"money": func(m tally.Money) string { return m.String() },
	"join":  strings.Join,
	// subs returns the sub-categories of g, except the one named after g.
	"subs": func(g tally.Group) []string {
		var subs []string
		for _, s := range g.Subs {
			if s != g.Name {
				subs = append(subs, s)
			}
		}
		return subs
	},
	// cell escapes text for a markdown table cell.
	"cell": func(s string) string {
		s = strings.ReplaceAll(s, "|", `\|`)
		return strings.ReplaceAll(s, "\n", " ")
	},
}

// Table is a page of entries.
type Table struct {
	Title   string
	Entries []tally.Entry
	First   int // number displayed for the first entry, 0 hides the numbers
	Page    int // 1-based
	Pages   int
}

// Entries renders a page of entries as a markdown table.
func Entries(t Table) string {
	return renderTemplate("templates/entries.md", t)
}

// Summary renders income, expense and net totals per currency.
func Summary(title string, sums []tally.Summary) string {
	return renderTemplate("templates/summary.md", struct {
		Title     string
		Summaries []tally.Summary
	}{title, sums})
}

type reminderView struct {
	tally.Reminder
	Due  date.Date
	Days int
}

// Reminders renders the reminders with the number of days left until they are due.
func Reminders(list []tally.Reminder, today date.Date) string {
	views := make([]reminderView, 0, len(list))
	for _, r := range list {
		views = append(views, reminderView{Reminder: r, Due: r.Due(today), Days: r.DaysRemaining(today)})
	}
	return renderTemplate("templates/reminders.md", struct{ Reminders []reminderView }{views})
}

// Categories renders the income categories and the expense category tree.
func Categories(c *tally.Categories) string {
	return renderTemplate("templates/categories.md", c)
}

// renderTemplate renders an embedded template file.
func renderTemplate(file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	b.WriteString("\n")
	return b.String()
}
