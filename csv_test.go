package tally

import (
	"bytes"
	"testing"
)

func TestExportCSV(t *testing.T) {
	entries := []Entry{
		expense("2025-08-01", TWD("12.30"), "food", `lunch, "bento"`),
		income("2025-08-02", TWD("52000"), "salary", ""),
	}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, entries); err != nil {
		t.Fatalf("ExportCSV() unexpected error: %v", err)
	}
	want := `date,type,amount,currency,category,remark
2025-08-01,expense,12.3,TWD,food,"lunch, ""bento"""
2025-08-02,income,52000,TWD,salary,
`
	if buf.String() != want {
		t.Errorf("ExportCSV() =\n%s\nwant\n%s", buf.String(), want)
	}
}
