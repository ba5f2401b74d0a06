// Package xlsx renders a structured document into an Excel workbook.
//
// The workbook layout is one sheet per content block category plus a
// summary sheet, and is fully determined by the document: converting the
// same document twice produces the same sheet layout.
package xlsx

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ODET-hub/HBA-PDF-to-EXCEL/structure"
)

// WriterConfig holds configuration for workbook generation
type WriterConfig struct {
	// SummarySheet is the name of the summary sheet
	// Default: "Summary"
	SummarySheet string

	// StyleHeaders applies bold styling to table header rows and the
	// summary heading
	// Default: true
	StyleHeaders bool

	// Timestamp is written to the summary sheet. The zero value means
	// the current time at write.
	Timestamp time.Time
}

// DefaultWriterConfig returns sensible default configuration
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		SummarySheet: "Summary",
		StyleHeaders: true,
	}
}

// Writer converts a structure.Document into an Excel workbook
type Writer struct {
	config WriterConfig
}

// NewWriter creates a writer with default configuration
func NewWriter() *Writer {
	return NewWriterWithConfig(DefaultWriterConfig())
}

// NewWriterWithConfig creates a writer with custom configuration
func NewWriterWithConfig(config WriterConfig) *Writer {
	if config.SummarySheet == "" {
		config.SummarySheet = "Summary"
	}
	return &Writer{config: config}
}

// Write renders the document into a workbook and saves it at path
func (w *Writer) Write(doc *structure.Document, path string) error {
	f, err := w.Workbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Workbook renders the document into an in-memory workbook with one sheet
// per category: Summary, Tables_n (one per table), Lists_n (one per list),
// Headers_1, and Content_1. Categories without blocks get no sheet.
func (w *Writer) Workbook(doc *structure.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", w.config.SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	if err := w.writeSummary(f, doc); err != nil {
		return nil, err
	}

	for i, table := range doc.Tables() {
		name := fmt.Sprintf("Tables_%d", i+1)
		if err := w.writeTable(f, name, table); err != nil {
			return nil, err
		}
	}

	for i, list := range doc.Lists() {
		name := fmt.Sprintf("Lists_%d", i+1)
		if err := w.writeList(f, name, list); err != nil {
			return nil, err
		}
	}

	if headers := doc.Headers(); len(headers) > 0 {
		if err := w.writeHeaders(f, "Headers_1", headers); err != nil {
			return nil, err
		}
	}

	if paragraphs := doc.Paragraphs(); len(paragraphs) > 0 {
		if err := w.writeParagraphs(f, "Content_1", paragraphs); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// writeSummary fills the summary sheet with per-category counts
func (w *Writer) writeSummary(f *excelize.File, doc *structure.Document) error {
	sheet := w.config.SummarySheet
	summary := doc.Summary()

	timestamp := w.config.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"PDF to Excel Conversion Summary", nil},
		{"", nil},
		{"Content Type", "Count"},
		{"Tables", summary.Tables},
		{"Lists", summary.Lists},
		{"Headers", summary.Headers},
		{"Paragraphs", summary.Paragraphs},
		{"Total Blocks", summary.Total()},
		{"", nil},
		{"Conversion Date", timestamp.Format("2006-01-02 15:04:05")},
	}

	for i, row := range rows {
		if row.label == "" {
			continue
		}
		if err := f.SetCellValue(sheet, cellName(1, i+1), row.label); err != nil {
			return err
		}
		if row.value != nil {
			if err := f.SetCellValue(sheet, cellName(2, i+1), row.value); err != nil {
				return err
			}
		}
	}

	if w.config.StyleHeaders {
		if err := w.boldRange(f, sheet, "A1", "A1", 14); err != nil {
			return err
		}
		if err := w.boldRange(f, sheet, "A3", "B3", 0); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 32)
}

// writeTable fills one sheet with a table's rows
func (w *Writer) writeTable(f *excelize.File, sheet string, table *structure.TableBlock) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for r, row := range table.Rows {
		for c, cell := range row {
			if err := f.SetCellValue(sheet, cellName(c+1, r+1), cell); err != nil {
				return err
			}
		}
	}

	if table.HasHeader && w.config.StyleHeaders {
		return w.boldRange(f, sheet, "A1", cellName(table.ColumnCount, 1), 0)
	}
	return nil
}

// writeList fills one sheet with a list's items, one row per item with the
// marker in column A and depth-indented text in column B
func (w *Writer) writeList(f *excelize.File, sheet string, list *structure.ListBlock) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for i, item := range list.Items {
		indent := strings.Repeat("  ", item.Depth)
		if err := f.SetCellValue(sheet, cellName(1, i+1), item.Marker); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellName(2, i+1), indent+item.Text); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "B", "B", 60)
}

// writeHeaders fills one sheet with all heading blocks and their pages
func (w *Writer) writeHeaders(f *excelize.File, sheet string, headers []*structure.HeaderBlock) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for i, header := range headers {
		if err := f.SetCellValue(sheet, cellName(1, i+1), header.Text); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellName(2, i+1), header.Page); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 50)
}

// writeParagraphs fills one sheet with paragraph text, one row per block
func (w *Writer) writeParagraphs(f *excelize.File, sheet string, paragraphs []*structure.ParagraphBlock) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for i, paragraph := range paragraphs {
		if err := f.SetCellValue(sheet, cellName(1, i+1), paragraph.Text()); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 100)
}

// boldRange applies bold (and optional size) styling to a cell range
func (w *Writer) boldRange(f *excelize.File, sheet, from, to string, size float64) error {
	font := &excelize.Font{Bold: true}
	if size > 0 {
		font.Size = size
	}
	style, err := f.NewStyle(&excelize.Style{Font: font})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

// cellName converts 1-based column/row coordinates to an A1 reference
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
