package structure

// Summary holds per-category block counts for a document
type Summary struct {
	Tables     int
	Lists      int
	Headers    int
	Paragraphs int
}

// Total returns the total number of blocks
func (s Summary) Total() int {
	return s.Tables + s.Lists + s.Headers + s.Paragraphs
}

// Document is the finished in-memory structure of one conversion job: an
// ordered sequence of typed content blocks plus summary statistics. It is
// read-only after construction and owned exclusively by its job; it is
// never shared across concurrent jobs.
type Document struct {
	blocks  []Block
	summary Summary
}

// newDocument builds a document from finished blocks in output order
func newDocument(blocks []Block) *Document {
	doc := &Document{blocks: blocks}
	for _, block := range blocks {
		switch block.Kind {
		case BlockKindTable:
			doc.summary.Tables++
		case BlockKindList:
			doc.summary.Lists++
		case BlockKindHeader:
			doc.summary.Headers++
		case BlockKindParagraph:
			doc.summary.Paragraphs++
		}
	}
	return doc
}

// Blocks returns all blocks in source reading order
func (d *Document) Blocks() []Block {
	if d == nil {
		return nil
	}
	return d.blocks
}

// BlockCount returns the number of blocks
func (d *Document) BlockCount() int {
	if d == nil {
		return 0
	}
	return len(d.blocks)
}

// BlockAt returns the block with the given sequence index, or nil if the
// index is out of range
func (d *Document) BlockAt(index int) *Block {
	if d == nil || index < 0 || index >= len(d.blocks) {
		return nil
	}
	return &d.blocks[index]
}

// Summary returns the per-category block counts
func (d *Document) Summary() Summary {
	if d == nil {
		return Summary{}
	}
	return d.summary
}

// BlocksOfKind returns all blocks of the given kind in order
func (d *Document) BlocksOfKind(kind BlockKind) []Block {
	if d == nil {
		return nil
	}

	var result []Block
	for _, block := range d.blocks {
		if block.Kind == kind {
			result = append(result, block)
		}
	}
	return result
}

// Tables returns all table blocks in order
func (d *Document) Tables() []*TableBlock {
	var result []*TableBlock
	for _, block := range d.BlocksOfKind(BlockKindTable) {
		result = append(result, block.Table)
	}
	return result
}

// Lists returns all list blocks in order
func (d *Document) Lists() []*ListBlock {
	var result []*ListBlock
	for _, block := range d.BlocksOfKind(BlockKindList) {
		result = append(result, block.List)
	}
	return result
}

// Headers returns all header blocks in order
func (d *Document) Headers() []*HeaderBlock {
	var result []*HeaderBlock
	for _, block := range d.BlocksOfKind(BlockKindHeader) {
		result = append(result, block.Header)
	}
	return result
}

// Paragraphs returns all paragraph blocks in order
func (d *Document) Paragraphs() []*ParagraphBlock {
	var result []*ParagraphBlock
	for _, block := range d.BlocksOfKind(BlockKindParagraph) {
		result = append(result, block.Paragraph)
	}
	return result
}

// IsEmpty reports the "no extractable content" condition: an input with
// zero non-blank lines
func (d *Document) IsEmpty() bool {
	return d.BlockCount() == 0
}
