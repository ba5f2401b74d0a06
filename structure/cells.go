package structure

import (
	"regexp"
	"strings"
)

// CellSplitter splits one line of text into an ordered sequence of cell
// strings. Implementations define what counts as a column separator, so
// alternate delimiter conventions can be swapped without touching the
// classifier or the table assembler.
type CellSplitter interface {
	// Split returns the cell values of a line, trimmed, with empty
	// leading/trailing cells removed
	Split(text string) []string

	// SeparatorCount returns the number of column-separator occurrences
	// in the line
	SeparatorCount(text string) int
}

// separatorPattern matches one column-separator signal: a run of two or
// more spaces, a tab, or a pipe character.
var separatorPattern = regexp.MustCompile(`\s{2,}|\t|\|`)

// WhitespaceSplitter is the default CellSplitter. It treats runs of two or
// more spaces, tab characters, and "|" delimiters as column boundaries,
// which matches the spacing Tesseract emits for tabular scans.
type WhitespaceSplitter struct{}

// NewWhitespaceSplitter creates the default cell splitter
func NewWhitespaceSplitter() WhitespaceSplitter {
	return WhitespaceSplitter{}
}

// Split splits the line on separator signals and trims each cell
func (s WhitespaceSplitter) Split(text string) []string {
	parts := separatorPattern.Split(strings.TrimSpace(text), -1)

	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}

// SeparatorCount counts separator occurrences in the trimmed line
func (s WhitespaceSplitter) SeparatorCount(text string) int {
	return len(separatorPattern.FindAllString(strings.TrimSpace(text), -1))
}

// DelimiterSplitter splits on a single fixed delimiter character, for
// sources that emit an explicit column character (e.g. CSV-like OCR layers).
type DelimiterSplitter struct {
	// Delimiter is the column separator, e.g. "|" or ";"
	Delimiter string
}

// Split splits the line on the fixed delimiter and trims each cell
func (s DelimiterSplitter) Split(text string) []string {
	parts := strings.Split(strings.TrimSpace(text), s.Delimiter)

	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}

// SeparatorCount counts delimiter occurrences in the trimmed line
func (s DelimiterSplitter) SeparatorCount(text string) int {
	return strings.Count(strings.TrimSpace(text), s.Delimiter)
}
