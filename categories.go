package tally

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Group is a main expense category and its sub-categories.
type Group struct {
	Name string
	Subs []string
}

// Categories is the tree of categories entries can be recorded in.
//
// Income categories are a flat list. Expense categories have two levels: main
// categories grouping sub-categories. An expense can be recorded either in a
// main category or in a sub-category.
type Categories struct {
	Income  []string
	Expense []Group
}

// DefaultCategories returns the categories created on first use.
func DefaultCategories() *Categories {
	return &Categories{
		Income: []string{"salary", "bonus", "investment income", "other income"},
		Expense: []Group{
			{"daily life", []string{"food", "transport", "clothing", "phone & internet", "household"}},
			{"housing", []string{"rent", "utilities", "furnishing"}},
			{"health", []string{"medical", "insurance"}},
			{"leisure", []string{"travel", "movies", "subscriptions"}},
			{"social", []string{"gift", "festivities"}},
			{"investment", []string{"stocks", "funds", "crypto"}},
			{"other", []string{"other"}},
		},
	}
}

// Names returns every category valid for kind, in order. Expense main
// categories are followed by their sub-categories.
func (c *Categories) Names(kind Kind) []string {
	if kind == Income {
		return slices.Clone(c.Income)
	}
	var names []string
	for _, g := range c.Expense {
		names = append(names, g.Name)
		for _, s := range g.Subs {
			if s != g.Name {
				names = append(names, s)
			}
		}
	}
	return names
}

// Valid reports whether name is a category of kind.
func (c *Categories) Valid(kind Kind, name string) bool {
	return slices.Contains(c.Names(kind), name)
}

// Check returns an error if e's category is not valid for its kind.
func (c *Categories) Check(e Entry) error {
	if !c.Valid(e.Kind, e.Category) {
		return fmt.Errorf("%q is not an %s category", e.Category, e.Kind)
	}
	return nil
}

// group returns the index of the expense main category name, or -1.
func (c *Categories) group(name string) int {
	return slices.IndexFunc(c.Expense, func(g Group) bool { return g.Name == name })
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("missing category name")
	}
	return nil
}

// Add adds a category of kind.
//
// For expenses, an empty parent adds a main category, with a sub-category of
// the same name, otherwise name is added as a sub-category of parent.
func (c *Categories) Add(kind Kind, parent, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if c.Valid(kind, name) {
		return fmt.Errorf("%s category %q already exists", kind, name)
	}
	switch {
	case kind == Income:
		if parent != "" {
			return errors.New("income categories have no sub-categories")
		}
		c.Income = append(c.Income, name)
	case parent == "":
		c.Expense = append(c.Expense, Group{Name: name, Subs: []string{name}})
	default:
		i := c.group(parent)
		if i < 0 {
			return fmt.Errorf("no expense main category %q", parent)
		}
		c.Expense[i].Subs = append(c.Expense[i].Subs, name)
	}
	return nil
}

// Remove removes a category of kind. Removing an expense main category
// removes its sub-categories too.
func (c *Categories) Remove(kind Kind, name string) error {
	if kind == Income {
		i := slices.Index(c.Income, name)
		if i < 0 {
			return fmt.Errorf("no income category %q", name)
		}
		c.Income = slices.Delete(c.Income, i, i+1)
		return nil
	}
	if i := c.group(name); i >= 0 {
		c.Expense = slices.Delete(c.Expense, i, i+1)
		return nil
	}
	for i, g := range c.Expense {
		if j := slices.Index(g.Subs, name); j >= 0 {
			c.Expense[i].Subs = slices.Delete(g.Subs, j, j+1)
			return nil
		}
	}
	return fmt.Errorf("no expense category %q", name)
}

// Rename renames a category of kind, keeping its position.
func (c *Categories) Rename(kind Kind, old, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !c.Valid(kind, old) {
		return fmt.Errorf("no %s category %q", kind, old)
	}
	if c.Valid(kind, name) {
		return fmt.Errorf("%s category %q already exists", kind, name)
	}
	rename := func(list []string) {
		if i := slices.Index(list, old); i >= 0 {
			list[i] = name
		}
	}
	if kind == Income {
		rename(c.Income)
		return nil
	}
	for i := range c.Expense {
		if c.Expense[i].Name == old {
			c.Expense[i].Name = name
		}
		rename(c.Expense[i].Subs)
	}
	return nil
}

// jcategory is a line of the categories file.
type jcategory struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

// EncodeCategories writes c in JSONL format, one category per line. An
// expense sub-category line names its parent, and follows it.
func EncodeCategories(w io.Writer, c *Categories) error {
	line := func(kind Kind, name, parent string) error {
		var o jsonObjectWriter
		o.Append("type", kind.String())
		o.Append("name", name)
		o.Optional("parent", parent)
		return encodeLine(w, &o)
	}
	for _, name := range c.Income {
		if err := line(Income, name, ""); err != nil {
			return err
		}
	}
	for _, g := range c.Expense {
		if err := line(Expense, g.Name, ""); err != nil {
			return err
		}
		for _, s := range g.Subs {
			if err := line(Expense, s, g.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeCategories reads categories in JSONL format.
func DecodeCategories(r io.Reader) (*Categories, error) {
	c := &Categories{}
	err := decodeLines(r, func(i int, line []byte) error {
		var j jcategory
		if err := json.Unmarshal(line, &j); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
		kind, err := ParseKind(j.Type)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if err := checkName(j.Name); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		switch {
		case kind == Income:
			c.Income = append(c.Income, j.Name)
		case j.Parent == "":
			c.Expense = append(c.Expense, Group{Name: j.Name})
		default:
			g := c.group(j.Parent)
			if g < 0 {
				return fmt.Errorf("line %d: sub-category %q before its main category %q", i, j.Name, j.Parent)
			}
			c.Expense[g].Subs = append(c.Expense[g].Subs, j.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
