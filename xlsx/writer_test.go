package xlsx

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ODET-hub/HBA-PDF-to-EXCEL/structure"
)

func sampleDocument() *structure.Document {
	return structure.Convert([]structure.Page{{
		Number: 1,
		Text: "ACCOUNT LEDGER\n" +
			"\n" +
			"Date    Description    Amount\n" +
			"2024-01-05  Coffee Shop   -4.50\n" +
			"2024-01-06  Paycheck   1500.00\n" +
			"\n" +
			"- review January\n" +
			"- file receipts\n" +
			"\n" +
			"All amounts are reported in dollars.",
	}})
}

func TestWorkbookSheets(t *testing.T) {
	writer := NewWriter()

	f, err := writer.Workbook(sampleDocument())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	expected := []string{"Summary", "Tables_1", "Lists_1", "Headers_1", "Content_1"}
	got := f.GetSheetList()
	if len(got) != len(expected) {
		t.Fatalf("sheets = %v, want %v", got, expected)
	}
	for _, name := range expected {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("missing sheet %q", name)
		}
	}
}

func TestWorkbookSummaryCounts(t *testing.T) {
	writer := NewWriterWithConfig(WriterConfig{
		SummarySheet: "Summary",
		Timestamp:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	f, err := writer.Workbook(sampleDocument())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell     string
		expected string
	}{
		{"A3", "Content Type"},
		{"B3", "Count"},
		{"A4", "Tables"},
		{"B4", "1"},
		{"B5", "1"}, // Lists
		{"B6", "1"}, // Headers
		{"B7", "1"}, // Paragraphs
		{"B8", "4"}, // Total
		{"B10", "2024-03-01 12:00:00"},
	}

	for _, tt := range tests {
		got, err := f.GetCellValue("Summary", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("Summary!%s = %q, want %q", tt.cell, got, tt.expected)
		}
	}
}

func TestWorkbookTableCells(t *testing.T) {
	writer := NewWriter()

	f, err := writer.Workbook(sampleDocument())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Date"},
		{"C1", "Amount"},
		{"A2", "2024-01-05"},
		{"B2", "Coffee Shop"},
		{"C3", "1500.00"},
	}

	for _, tt := range tests {
		got, err := f.GetCellValue("Tables_1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("Tables_1!%s = %q, want %q", tt.cell, got, tt.expected)
		}
	}
}

func TestWorkbookListAndContent(t *testing.T) {
	writer := NewWriter()

	f, err := writer.Workbook(sampleDocument())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Lists_1", "B1"); got != "review January" {
		t.Errorf("Lists_1!B1 = %q", got)
	}
	if got, _ := f.GetCellValue("Lists_1", "A2"); got != "-" {
		t.Errorf("Lists_1!A2 = %q, want the bullet marker", got)
	}
	if got, _ := f.GetCellValue("Headers_1", "A1"); got != "ACCOUNT LEDGER" {
		t.Errorf("Headers_1!A1 = %q", got)
	}
	if got, _ := f.GetCellValue("Content_1", "A1"); got != "All amounts are reported in dollars." {
		t.Errorf("Content_1!A1 = %q", got)
	}
}

func TestWorkbookEmptyDocument(t *testing.T) {
	writer := NewWriter()

	f, err := writer.Workbook(structure.Convert(nil))
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Summary" {
		t.Errorf("empty document sheets = %v, want [Summary]", sheets)
	}
	if got, _ := f.GetCellValue("Summary", "B8"); got != "0" {
		t.Errorf("total blocks = %q, want 0", got)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	writer := NewWriter()
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := writer.Write(sampleDocument(), path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// The saved workbook must be readable and keep its layout
	reopened, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got, _ := reopened.GetCellValue("Tables_1", "A1"); got != "Date" {
		t.Errorf("reopened Tables_1!A1 = %q, want Date", got)
	}
}
