// Package tally provides the types and functions of a small personal ledger.
//
// The core functionalities include:
//   - Entries: incomes and expenses, dated, categorized and annotated, with
//     exact decimal amounts. Amounts can be typed as arithmetic expressions
//     ("3 * 45 + 12.5"), see ParseAmount and the expr package.
//   - Ledger queries: by month, by year, by remark keyword, sorted by date or
//     amount, paginated, and totaled per currency.
//   - Reminders: bills due every month on a given day.
//   - Data Persistence: JSONL files that stay human-readable and
//     version-controllable, and a CSV export.
//
// This package serves as the foundational logic for the `tally` command-line
// tool.
package tally
