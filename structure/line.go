package structure

import (
	"strings"
)

// LineCategory represents the content category assigned to a single line
type LineCategory int

const (
	CategoryBlank     LineCategory = iota // Empty or whitespace-only
	CategoryTableRow                      // Part of a tabular region
	CategoryListItem                      // Bulleted or numbered list entry
	CategoryHeader                        // Short standalone heading
	CategoryParagraph                     // Running body text (default)
)

// String returns a string representation of the line category
func (c LineCategory) String() string {
	switch c {
	case CategoryBlank:
		return "blank"
	case CategoryTableRow:
		return "table-row"
	case CategoryListItem:
		return "list-item"
	case CategoryHeader:
		return "header"
	case CategoryParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Line is one line of OCR output. Lines are immutable once produced.
type Line struct {
	// Text is the raw line content, unmodified
	Text string

	// Page is the source page number (1-based)
	Page int

	// Index is the line's position within its page (0-based)
	Index int
}

// IsBlank returns true if the line is empty or whitespace-only
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Trimmed returns the line text with surrounding whitespace removed
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// Indent returns the width of the line's leading whitespace,
// counting a tab as four columns
func (l Line) Indent() int {
	width := 0
	for _, r := range l.Text {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// Page is one page of OCR output as delivered by the recognition step.
// Text is UTF-8 with "\n" line separators.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Text is the raw recognized page text
	Text string
}

// Lines splits the page text into Line values in source order
func (p Page) Lines() []Line {
	if p.Text == "" {
		return nil
	}

	raw := strings.Split(strings.ReplaceAll(p.Text, "\r\n", "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Page: p.Number, Index: i}
	}
	return lines
}
