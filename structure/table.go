package structure

import (
	"strconv"
	"strings"
)

// TableBlock is a finished table: an ordered sequence of rows with a
// uniform cell count and an optionally detected header row.
type TableBlock struct {
	// Rows are the table rows in source order, header (if any) first.
	// Every row has exactly ColumnCount cells.
	Rows [][]string

	// ColumnCount is the normalized cell count shared by all rows
	ColumnCount int

	// HasHeader indicates that Rows[0] was detected as a header row
	HasHeader bool

	// PageStart and PageEnd are the originating page range (1-based)
	PageStart int
	PageEnd   int
}

// RowCount returns the number of rows including the header row
func (t *TableBlock) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Header returns the header row, or nil if none was detected
func (t *TableBlock) Header() []string {
	if t == nil || !t.HasHeader || len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns the rows excluding the header row
func (t *TableBlock) DataRows() [][]string {
	if t == nil {
		return nil
	}
	if t.HasHeader && len(t.Rows) > 0 {
		return t.Rows[1:]
	}
	return t.Rows
}

// TableConfig holds configuration for table assembly
type TableConfig struct {
	// Splitter splits each row line into cells
	Splitter CellSplitter

	// MinRows is the minimum number of assembled rows for a valid table;
	// runs yielding fewer rows are demoted to paragraphs by the aggregator
	// Default: 2
	MinRows int

	// DetectHeader enables header-row inference
	// Default: true
	DetectHeader bool
}

// DefaultTableConfig returns sensible default configuration
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Splitter:     NewWhitespaceSplitter(),
		MinRows:      2,
		DetectHeader: true,
	}
}

// TableAssembler builds a TableBlock from a run of consecutive table-row
// lines, normalizing cell counts across the run.
type TableAssembler struct {
	config TableConfig
}

// NewTableAssembler creates a table assembler with default configuration
func NewTableAssembler() *TableAssembler {
	return NewTableAssemblerWithConfig(DefaultTableConfig())
}

// NewTableAssemblerWithConfig creates a table assembler with custom configuration
func NewTableAssemblerWithConfig(config TableConfig) *TableAssembler {
	if config.Splitter == nil {
		config.Splitter = NewWhitespaceSplitter()
	}
	return &TableAssembler{config: config}
}

// Assemble builds a TableBlock from a run of table-row lines. Lines that
// split into zero cells, such as an OCR-mangled rule line "| | |",
// contribute no row; they are returned as the second value so the caller
// can fold them into an adjacent paragraph instead of dropping them. The
// block is nil when the run is degenerate: no line yields a non-empty
// cell. Callers must fold the raw lines of a degenerate run into a
// paragraph block so no content is lost.
//
// Cell counts are normalized to the most common count in the run. Shorter
// rows are padded with empty cells; overflow cells are merged into the last
// column joined by a single space. The merge is lossy with respect to the
// original column boundaries but preserves all text.
func (a *TableAssembler) Assemble(run []Line) (*TableBlock, []Line) {
	if len(run) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(run))
	var skipped []Line
	for _, line := range run {
		cells := a.config.Splitter.Split(line.Text)
		if len(cells) == 0 {
			skipped = append(skipped, line)
			continue
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		// Degenerate: every cell empty after splitting
		return nil, skipped
	}

	columns := a.modalColumnCount(rows)
	for i, row := range rows {
		rows[i] = normalizeRow(row, columns)
	}

	block := &TableBlock{
		Rows:        rows,
		ColumnCount: columns,
		PageStart:   run[0].Page,
		PageEnd:     run[len(run)-1].Page,
	}

	if a.config.DetectHeader {
		block.HasHeader = a.detectHeader(rows)
	}

	return block, skipped
}

// modalColumnCount returns the most common cell count across the rows,
// preferring the larger count on ties
func (a *TableAssembler) modalColumnCount(rows [][]string) int {
	counts := make(map[int]int)
	for _, row := range rows {
		counts[len(row)]++
	}

	best := 0
	bestFreq := 0
	for count, freq := range counts {
		if freq > bestFreq || (freq == bestFreq && count > best) {
			best = count
			bestFreq = freq
		}
	}
	return best
}

// normalizeRow pads or merges a row to exactly columns cells
func normalizeRow(row []string, columns int) []string {
	if len(row) == columns {
		return row
	}

	if len(row) < columns {
		padded := make([]string, columns)
		copy(padded, row)
		return padded
	}

	merged := make([]string, columns)
	copy(merged, row[:columns-1])
	merged[columns-1] = strings.Join(row[columns-1:], " ")
	return merged
}

// detectHeader reports whether the first row is a header: it must contain
// no numeric cells while at least one later row has a numeric cell in a
// column position where the first row is non-numeric.
func (a *TableAssembler) detectHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}

	first := rows[0]
	for _, cell := range first {
		if isNumericCell(cell) {
			return false
		}
	}

	for _, row := range rows[1:] {
		for col, cell := range row {
			if col < len(first) && isNumericCell(cell) {
				return true
			}
		}
	}
	return false
}

// isNumericCell reports whether a cell holds a numeric value, tolerating
// common financial decoration ($, commas, parentheses, percent signs)
func isNumericCell(cell string) bool {
	s := strings.TrimSpace(cell)
	s = strings.Trim(s, "()")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
