package structure

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClassifierConfig holds configuration for line classification
type ClassifierConfig struct {
	// Splitter detects and splits column separators. It is shared with the
	// table assembler so classification and cell splitting always agree.
	Splitter CellSplitter

	// MinSeparators is the minimum number of column-separator occurrences
	// for a line to qualify as a table row
	// Default: 2
	MinSeparators int

	// HeaderMaxLength is the maximum trimmed length of a header line
	// Default: 80
	HeaderMaxLength int

	// BulletMarkers are characters recognized as list bullets
	BulletMarkers []rune

	// NumberedPattern matches numbered list prefixes ("1. " or "1) ")
	NumberedPattern *regexp.Regexp

	// FinancialPattern matches date-led rows with a trailing amount, the
	// shape of bank-statement lines where OCR collapsed column spacing
	FinancialPattern *regexp.Regexp
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Splitter:        NewWhitespaceSplitter(),
		MinSeparators:   2,
		HeaderMaxLength: 80,
		BulletMarkers:   []rune{'-', '*', '•', '‣', '◦', '·'},
		NumberedPattern: regexp.MustCompile(`^\d+[.)]\s+`),
		FinancialPattern: regexp.MustCompile(
			`^\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}\s+\S.*\s[-+(]?\$?\d[\d,]*(\.\d+)?\)?%?$`),
	}
}

// Classifier assigns a LineCategory to each line of OCR text. It is a pure
// function of the line text plus read-only access to the categories already
// assigned, used to detect table continuation.
type Classifier struct {
	config ClassifierConfig
	titler cases.Caser
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	if config.Splitter == nil {
		config.Splitter = NewWhitespaceSplitter()
	}
	return &Classifier{
		config: config,
		titler: cases.Title(language.English, cases.NoLower),
	}
}

// Classify assigns a category to one line. The history slice holds the
// categories of every line classified so far in document order, blanks
// included, most recent last; it may be nil. Only the most recent entry is
// consulted, to detect table continuation. Categories are checked in fixed
// priority order: Blank, TableRow, ListItem, Header, Paragraph.
func (c *Classifier) Classify(line Line, history []LineCategory) LineCategory {
	text := line.Trimmed()
	if text == "" {
		return CategoryBlank
	}

	if c.isTableRow(text, history) {
		return CategoryTableRow
	}

	if c.isListItem(text) {
		return CategoryListItem
	}

	if c.isHeader(text) {
		return CategoryHeader
	}

	return CategoryParagraph
}

// isTableRow checks the column-separator and financial-row signals
func (c *Classifier) isTableRow(text string, history []LineCategory) bool {
	if c.config.Splitter.SeparatorCount(text) >= c.config.MinSeparators {
		return true
	}

	if c.config.FinancialPattern.MatchString(text) {
		return true
	}

	// A line directly following table rows continues the table if it still
	// splits into multiple cells, even when OCR dropped a separator.
	if len(history) > 0 && history[len(history)-1] == CategoryTableRow {
		if len(c.config.Splitter.Split(text)) >= 2 {
			return true
		}
	}

	return false
}

// isListItem checks for a bullet marker or numbering prefix
func (c *Classifier) isListItem(text string) bool {
	runes := []rune(text)
	for _, marker := range c.config.BulletMarkers {
		if runes[0] == marker {
			// Marker must be followed by whitespace ("- item", not "-4.50")
			return len(runes) > 1 && unicode.IsSpace(runes[1])
		}
	}

	return c.config.NumberedPattern.MatchString(text)
}

// isHeader checks for a short line without terminal punctuation that is
// all-uppercase or title-cased
func (c *Classifier) isHeader(text string) bool {
	if len(text) > c.config.HeaderMaxLength {
		return false
	}

	last := text[len(text)-1]
	if strings.ContainsRune(".,;:!?", rune(last)) {
		return false
	}

	return c.isAllCaps(text) || c.isTitleCase(text)
}

// isAllCaps returns true if 90%+ of the letters are uppercase
func (c *Classifier) isAllCaps(text string) bool {
	upper := 0
	lower := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		} else if unicode.IsLower(r) {
			lower++
		}
	}

	if upper+lower < 2 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase returns true if every significant word is capitalized
func (c *Classifier) isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}

	for i, word := range words {
		// Short connectives ("of", "and") may stay lowercase mid-title
		if i > 0 && len([]rune(word)) < 4 {
			continue
		}
		if !unicode.IsLetter([]rune(word)[0]) {
			return false
		}
		if c.titler.String(word) != word {
			return false
		}
	}
	return true
}
