package structure

import "strings"

// BlockKind identifies the content type of a Block
type BlockKind int

const (
	BlockKindUnknown   BlockKind = iota
	BlockKindTable               // Tabular data
	BlockKindList                // Bulleted or numbered list
	BlockKindHeader              // Single-line heading
	BlockKindParagraph           // Running text
)

// String returns a string representation of the block kind
func (k BlockKind) String() string {
	switch k {
	case BlockKindTable:
		return "table"
	case BlockKindList:
		return "list"
	case BlockKindHeader:
		return "header"
	case BlockKindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// HeaderBlock is a single-line heading
type HeaderBlock struct {
	// Text is the heading text
	Text string

	// Page is the originating page number (1-based)
	Page int

	// LineIndex is the originating line index within the page (0-based)
	LineIndex int
}

// ParagraphBlock is a run of body-text lines merged into one unit
type ParagraphBlock struct {
	// Lines are the trimmed source lines in order
	Lines []string

	// PageStart and PageEnd are the originating page range (1-based)
	PageStart int
	PageEnd   int
}

// Text returns the paragraph lines joined with single spaces
func (p *ParagraphBlock) Text() string {
	if p == nil {
		return ""
	}
	return strings.Join(p.Lines, " ")
}

// Block is one finished unit of the document: exactly one of the typed
// pointers is set, matching Kind.
type Block struct {
	// Kind is the block's content type
	Kind BlockKind

	// Index is the block's stable position in output order (0-based)
	Index int

	// Table contains table data (if Kind == BlockKindTable)
	Table *TableBlock

	// List contains list data (if Kind == BlockKindList)
	List *ListBlock

	// Header contains heading data (if Kind == BlockKindHeader)
	Header *HeaderBlock

	// Paragraph contains paragraph data (if Kind == BlockKindParagraph)
	Paragraph *ParagraphBlock
}

// AggregatorConfig holds configuration for the block aggregator and its
// classification components
type AggregatorConfig struct {
	// Classifier configuration
	ClassifierConfig ClassifierConfig

	// Table assembly configuration
	TableConfig TableConfig

	// List assembly configuration
	ListConfig ListConfig
}

// DefaultAggregatorConfig returns a configuration with sensible defaults,
// sharing one cell splitter between classification and table assembly
func DefaultAggregatorConfig() AggregatorConfig {
	splitter := NewWhitespaceSplitter()

	classifierConfig := DefaultClassifierConfig()
	classifierConfig.Splitter = splitter

	tableConfig := DefaultTableConfig()
	tableConfig.Splitter = splitter

	return AggregatorConfig{
		ClassifierConfig: classifierConfig,
		TableConfig:      tableConfig,
		ListConfig:       DefaultListConfig(),
	}
}

// runState is the aggregator's current position in the line stream
type runState int

const (
	stateIdle runState = iota
	stateInTable
	stateInList
	stateInParagraph
)

// Aggregator consumes the classified line stream of a document and groups
// runs of lines into typed blocks. One Aggregator serves one conversion
// job; instances are not safe for concurrent use, but independent jobs with
// independent aggregators are.
type Aggregator struct {
	config     AggregatorConfig
	classifier *Classifier
	tables     *TableAssembler
	lists      *ListAssembler

	state   runState
	run     []Line
	history []LineCategory
	blocks  []Block
}

// NewAggregator creates an aggregator with default configuration
func NewAggregator() *Aggregator {
	return NewAggregatorWithConfig(DefaultAggregatorConfig())
}

// NewAggregatorWithConfig creates an aggregator with custom configuration
func NewAggregatorWithConfig(config AggregatorConfig) *Aggregator {
	return &Aggregator{
		config:     config,
		classifier: NewClassifierWithConfig(config.ClassifierConfig),
		tables:     NewTableAssemblerWithConfig(config.TableConfig),
		lists:      NewListAssemblerWithConfig(config.ListConfig),
	}
}

// Aggregate processes the pages in order and returns the finished document.
// Empty input yields an empty document with zero blocks; this is the
// recoverable "no extractable content" condition, not an error.
//
// Paragraph and list runs continue across a page boundary when the next
// page opens with a line of the same category. Table runs always close at
// a page boundary: a table starting on a new page is a new table.
func (a *Aggregator) Aggregate(pages []Page) *Document {
	a.state = stateIdle
	a.run = nil
	a.history = nil
	a.blocks = nil

	for _, page := range pages {
		if a.state == stateInTable {
			a.closeRun()
		}

		for _, line := range page.Lines() {
			a.consume(line)
		}
	}
	a.closeRun()

	return newDocument(a.blocks)
}

// consume advances the state machine by one line
func (a *Aggregator) consume(line Line) {
	category := a.classifier.Classify(line, a.history)
	a.history = append(a.history, category)

	switch category {
	case CategoryBlank:
		// Closes any open run; consecutive blanks are a no-op
		a.closeRun()

	case CategoryHeader:
		a.closeRun()
		a.emit(Block{
			Kind: BlockKindHeader,
			Header: &HeaderBlock{
				Text:      line.Trimmed(),
				Page:      line.Page,
				LineIndex: line.Index,
			},
		})

	case CategoryTableRow:
		a.extend(stateInTable, line)

	case CategoryListItem:
		a.extend(stateInList, line)

	default:
		a.extend(stateInParagraph, line)
	}
}

// extend grows the current run, closing it first on a category change
func (a *Aggregator) extend(target runState, line Line) {
	if a.state != target {
		a.closeRun()
		a.state = target
	}
	a.run = append(a.run, line)
}

// closeRun flushes the open run into a finished block, if any
func (a *Aggregator) closeRun() {
	run := a.run
	state := a.state
	a.run = nil
	a.state = stateIdle

	if len(run) == 0 {
		return
	}

	switch state {
	case stateInTable:
		a.closeTable(run)

	case stateInList:
		if block := a.lists.Assemble(run); block != nil {
			a.emit(Block{Kind: BlockKindList, List: block})
		}

	case stateInParagraph:
		a.emitParagraph(run)
	}
}

// closeTable assembles a table run so that no non-blank line is dropped.
// Degenerate runs and runs yielding fewer than MinRows rows are demoted
// whole to a paragraph block; separator-only lines inside a kept table
// are folded into a paragraph of their own.
func (a *Aggregator) closeTable(run []Line) {
	block, skipped := a.tables.Assemble(run)
	if block == nil || block.RowCount() < a.tables.config.MinRows {
		a.emitParagraph(run)
		return
	}

	a.emit(Block{Kind: BlockKindTable, Table: block})
	if len(skipped) > 0 {
		a.emitParagraph(skipped)
	}
}

// emitParagraph emits the run's non-blank lines as one paragraph block
func (a *Aggregator) emitParagraph(run []Line) {
	lines := make([]string, 0, len(run))
	for _, line := range run {
		if text := line.Trimmed(); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return
	}

	a.emit(Block{
		Kind: BlockKindParagraph,
		Paragraph: &ParagraphBlock{
			Lines:     lines,
			PageStart: run[0].Page,
			PageEnd:   run[len(run)-1].Page,
		},
	})
}

// emit appends a finished block with its sequence index
func (a *Aggregator) emit(block Block) {
	block.Index = len(a.blocks)
	a.blocks = append(a.blocks, block)
}

// Convert classifies and aggregates the given pages with default
// configuration. It is the package-level entry point for callers that
// bring their own OCR text.
func Convert(pages []Page) *Document {
	return NewAggregator().Aggregate(pages)
}
