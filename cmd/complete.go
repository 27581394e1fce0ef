package cmd

import (
	"flag"
	"os"

	"github.com/etnz/tally"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	sortOrders        = predict.Set{"date-desc", "date-asc", "amount-desc", "amount-asc"}
	kinds             = predict.Set{"income", "expense"}
	categoryPredictor = complete.PredictFunc(categoryNames)
	mainPredictor     = complete.PredictFunc(mainCategoryNames)
)

// predictors overrides the default prediction of some flags, by command name then flag name.
var predictors = map[string]map[string]complete.Predictor{
	"add":      {"t": kinds, "c": categoryPredictor},
	"list":     {"sort": sortOrders},
	"export":   {"sort": sortOrders, "o": predict.Files("*.csv")},
	"category": {"t": kinds, "rm": categoryPredictor, "rename": categoryPredictor, "parent": mainPredictor},
}

// completionCategories reads the categories file without creating it.
func completionCategories() *tally.Categories {
	f, err := os.Open(*categoriesFile)
	if err != nil {
		return tally.DefaultCategories()
	}
	defer f.Close()
	c, err := tally.DecodeCategories(f)
	if err != nil {
		return tally.DefaultCategories()
	}
	return c
}

// categoryNames predicts the income and expense categories.
func categoryNames(string) []string {
	c := completionCategories()
	return append(c.Names(tally.Income), c.Names(tally.Expense)...)
}

// mainCategoryNames predicts the expense main categories.
func mainCategoryNames(string) []string {
	var names []string
	for _, g := range completionCategories().Expense {
		names = append(names, g.Name)
	}
	return names
}

// Completion returns the shell completion for the application, built from
// the global flags and each command's flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global, map[string]complete.Predictor{
			"ledger-file":     predict.Files("*.jsonl"),
			"reminders-file":  predict.Files("*.jsonl"),
			"categories-file": predict.Files("*.jsonl"),
		}),
	}
	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs, predictors[c.Name()])}
	}
	return root
}

// flagPredictors predicts every flag in fs: booleans take no value, others take something.
func flagPredictors(fs *flag.FlagSet, overrides map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := overrides[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
