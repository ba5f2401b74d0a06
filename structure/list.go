package structure

import (
	"regexp"
	"strings"
	"unicode"
)

// ListStyle represents the marker style of a list
type ListStyle int

const (
	ListStyleUnknown  ListStyle = iota
	ListStyleBulleted           // Bullet markers (-, *, •)
	ListStyleNumbered           // Number markers (1., 2), ...)
)

// String returns a string representation of the list style
func (s ListStyle) String() string {
	switch s {
	case ListStyleBulleted:
		return "bulleted"
	case ListStyleNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// ListEntry is a single item in a ListBlock
type ListEntry struct {
	// Text is the item text without the marker prefix
	Text string

	// Marker is the bullet or number prefix as written ("-", "1.", "2)")
	Marker string

	// Style is the marker style of this item. Mixed styles within one
	// block are preserved per item; style is observed, not enforced.
	Style ListStyle

	// Depth is the nesting depth (0 = top level)
	Depth int
}

// ListBlock is a finished list: an ordered sequence of items with the
// block's marker style taken from its first item.
type ListBlock struct {
	// Items are the list entries in source order
	Items []ListEntry

	// Style is the marker style of the first item
	Style ListStyle

	// PageStart and PageEnd are the originating page range (1-based)
	PageStart int
	PageEnd   int
}

// ItemCount returns the number of items in the list
func (l *ListBlock) ItemCount() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// MaxDepth returns the deepest nesting level in the list
func (l *ListBlock) MaxDepth() int {
	if l == nil {
		return 0
	}
	max := 0
	for _, item := range l.Items {
		if item.Depth > max {
			max = item.Depth
		}
	}
	return max
}

// ListConfig holds configuration for list assembly
type ListConfig struct {
	// IndentUnit is the whitespace width of one nesting level
	// Default: 2
	IndentUnit int

	// MaxDepth clamps the nesting depth to bound pathological input
	// Default: 5
	MaxDepth int

	// NumberedPattern matches and captures numbered markers
	NumberedPattern *regexp.Regexp
}

// DefaultListConfig returns sensible default configuration
func DefaultListConfig() ListConfig {
	return ListConfig{
		IndentUnit:      2,
		MaxDepth:        5,
		NumberedPattern: regexp.MustCompile(`^(\d+[.)])\s+`),
	}
}

// ListAssembler builds a ListBlock from a run of consecutive list-item
// lines. Unlike tables, a single item is a valid list.
type ListAssembler struct {
	config ListConfig
}

// NewListAssembler creates a list assembler with default configuration
func NewListAssembler() *ListAssembler {
	return NewListAssemblerWithConfig(DefaultListConfig())
}

// NewListAssemblerWithConfig creates a list assembler with custom configuration
func NewListAssemblerWithConfig(config ListConfig) *ListAssembler {
	if config.IndentUnit <= 0 {
		config.IndentUnit = 2
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = 5
	}
	return &ListAssembler{config: config}
}

// Assemble builds a ListBlock from a run of list-item lines. Nesting depth
// is inferred from each item's indentation relative to the first item.
func (a *ListAssembler) Assemble(run []Line) *ListBlock {
	if len(run) == 0 {
		return nil
	}

	baseIndent := run[0].Indent()
	items := make([]ListEntry, 0, len(run))

	for _, line := range run {
		entry := a.parseItem(line.Trimmed())

		depth := (line.Indent() - baseIndent) / a.config.IndentUnit
		if depth < 0 {
			depth = 0
		}
		if depth > a.config.MaxDepth {
			depth = a.config.MaxDepth
		}
		entry.Depth = depth

		items = append(items, entry)
	}

	return &ListBlock{
		Items:     items,
		Style:     items[0].Style,
		PageStart: run[0].Page,
		PageEnd:   run[len(run)-1].Page,
	}
}

// parseItem separates the marker prefix from the item text
func (a *ListAssembler) parseItem(text string) ListEntry {
	if match := a.config.NumberedPattern.FindStringSubmatch(text); len(match) > 1 {
		return ListEntry{
			Text:   strings.TrimSpace(text[len(match[0]):]),
			Marker: match[1],
			Style:  ListStyleNumbered,
		}
	}

	runes := []rune(text)
	if len(runes) > 1 && unicode.IsSpace(runes[1]) {
		return ListEntry{
			Text:   strings.TrimSpace(string(runes[1:])),
			Marker: string(runes[0]),
			Style:  ListStyleBulleted,
		}
	}

	// Fallback for marker-less text; keeps the line rather than dropping it
	return ListEntry{Text: text, Style: ListStyleBulleted}
}
