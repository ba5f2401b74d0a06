package structure

import (
	"reflect"
	"testing"
)

func TestAggregateEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		pages []Page
	}{
		{"no pages", nil},
		{"empty page", []Page{{Number: 1, Text: ""}}},
		{"all-blank pages", []Page{{Number: 1, Text: "\n  \n\t\n"}, {Number: 2, Text: "   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Convert(tt.pages)
			if doc == nil {
				t.Fatal("Convert returned nil")
			}
			if !doc.IsEmpty() {
				t.Errorf("IsEmpty = false, want true")
			}
			if doc.BlockCount() != 0 {
				t.Errorf("BlockCount = %d, want 0", doc.BlockCount())
			}
			if s := doc.Summary(); s.Total() != 0 {
				t.Errorf("Summary total = %d, want 0", s.Total())
			}
		})
	}
}

func TestAggregateMixedPage(t *testing.T) {
	doc := Convert([]Page{{
		Number: 1,
		Text:   "TOTAL BALANCE\n\n- Item one\n- Item two\n\nThis is a closing paragraph.",
	}})

	if doc.BlockCount() != 3 {
		t.Fatalf("BlockCount = %d, want 3", doc.BlockCount())
	}

	header := doc.BlockAt(0)
	if header.Kind != BlockKindHeader || header.Header.Text != "TOTAL BALANCE" {
		t.Errorf("block 0 = %v %+v, want header TOTAL BALANCE", header.Kind, header.Header)
	}

	list := doc.BlockAt(1)
	if list.Kind != BlockKindList {
		t.Fatalf("block 1 kind = %v, want list", list.Kind)
	}
	if list.List.ItemCount() != 2 {
		t.Errorf("list items = %d, want 2", list.List.ItemCount())
	}

	para := doc.BlockAt(2)
	if para.Kind != BlockKindParagraph {
		t.Fatalf("block 2 kind = %v, want paragraph", para.Kind)
	}
	if para.Paragraph.Text() != "This is a closing paragraph." {
		t.Errorf("paragraph text = %q", para.Paragraph.Text())
	}

	summary := doc.Summary()
	if summary.Headers != 1 || summary.Lists != 1 || summary.Paragraphs != 1 || summary.Tables != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAggregateFinancialTable(t *testing.T) {
	doc := Convert([]Page{{
		Number: 1,
		Text: "2024-01-05  Coffee Shop   -4.50\n" +
			"2024-01-06  Paycheck   1500.00\n" +
			"2024-01-07  Rent   -1200.00",
	}})

	if doc.BlockCount() != 1 {
		t.Fatalf("BlockCount = %d, want 1", doc.BlockCount())
	}
	block := doc.BlockAt(0)
	if block.Kind != BlockKindTable {
		t.Fatalf("kind = %v, want table", block.Kind)
	}
	if block.Table.RowCount() != 3 {
		t.Errorf("rows = %d, want 3", block.Table.RowCount())
	}
	if block.Table.HasHeader {
		t.Error("HasHeader = true, want false")
	}
}

func TestAggregateListContinuesAcrossPages(t *testing.T) {
	doc := Convert([]Page{
		{Number: 1, Text: "Some intro text that ends the page here.\n1. First"},
		{Number: 2, Text: "2. Second\n\nAfter the list."},
	})

	lists := doc.Lists()
	if len(lists) != 1 {
		t.Fatalf("got %d list blocks, want 1 merged across the page boundary", len(lists))
	}
	if lists[0].ItemCount() != 2 {
		t.Errorf("merged list items = %d, want 2", lists[0].ItemCount())
	}
	if lists[0].PageStart != 1 || lists[0].PageEnd != 2 {
		t.Errorf("list page range = %d-%d, want 1-2", lists[0].PageStart, lists[0].PageEnd)
	}
}

func TestAggregateTableClosesAtPageBoundary(t *testing.T) {
	doc := Convert([]Page{
		{Number: 1, Text: "a  b  c\nd  e  f"},
		{Number: 2, Text: "g  h  i\nj  k  l"},
	})

	tables := doc.Tables()
	if len(tables) != 2 {
		t.Fatalf("got %d table blocks, want 2: tables never continue across pages", len(tables))
	}
	if tables[0].PageEnd != 1 || tables[1].PageStart != 2 {
		t.Errorf("table pages = %d and %d, want 1 and 2", tables[0].PageEnd, tables[1].PageStart)
	}
}

func TestAggregateParagraphContinuesAcrossPages(t *testing.T) {
	doc := Convert([]Page{
		{Number: 1, Text: "first half of a sentence that"},
		{Number: 2, Text: "continues on the following page"},
	})

	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	want := "first half of a sentence that continues on the following page"
	if paragraphs[0].Text() != want {
		t.Errorf("paragraph text = %q, want %q", paragraphs[0].Text(), want)
	}
}

func TestAggregateIsolatedTableRowDemoted(t *testing.T) {
	doc := Convert([]Page{{Number: 1, Text: "lone  row  here\n\nand a paragraph follows on."}})

	if len(doc.Tables()) != 0 {
		t.Fatal("a single table row must not form a table")
	}
	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paragraphs))
	}
	if paragraphs[0].Text() != "lone  row  here" {
		t.Errorf("demoted paragraph = %q", paragraphs[0].Text())
	}
}

// A non-blank separator-only line inside a table run carries no cells but
// must still land in some block: it is kept as a paragraph next to the
// table it interrupted.
func TestAggregateSeparatorOnlyLineKept(t *testing.T) {
	doc := Convert([]Page{{Number: 1, Text: "a  b  c\n| | |\nd  e  f"}})

	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].RowCount() != 2 {
		t.Errorf("rows = %d, want 2", tables[0].RowCount())
	}

	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1 holding the rule line", len(paragraphs))
	}
	if paragraphs[0].Text() != "| | |" {
		t.Errorf("paragraph = %q, want the rule line text", paragraphs[0].Text())
	}
}

func TestAggregateRuleLineDoesNotPadShortTable(t *testing.T) {
	doc := Convert([]Page{{Number: 1, Text: "a  b  c\n| | |"}})

	if len(doc.Tables()) != 0 {
		t.Fatal("one real row plus a rule line must not form a table")
	}
	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	if paragraphs[0].Text() != "a  b  c | | |" {
		t.Errorf("paragraph = %q", paragraphs[0].Text())
	}
}

func TestAggregateBlankClosesRuns(t *testing.T) {
	doc := Convert([]Page{{
		Number: 1,
		Text:   "- one\n- two\n\n\n- three",
	}})

	lists := doc.Lists()
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2: blank line closes the run, double blank is a no-op", len(lists))
	}
	if lists[0].ItemCount() != 2 || lists[1].ItemCount() != 1 {
		t.Errorf("list sizes = %d and %d, want 2 and 1", lists[0].ItemCount(), lists[1].ItemCount())
	}
}

func TestAggregateBlockOrderAndIndexes(t *testing.T) {
	doc := Convert([]Page{
		{Number: 1, Text: "SECTION ONE\n\nbody text here comes first.\n\na  b  c\nd  e  f"},
		{Number: 2, Text: "SECTION TWO"},
	})

	kinds := make([]BlockKind, 0, doc.BlockCount())
	for i, block := range doc.Blocks() {
		if block.Index != i {
			t.Errorf("block %d has Index %d", i, block.Index)
		}
		kinds = append(kinds, block.Kind)
	}

	expected := []BlockKind{BlockKindHeader, BlockKindParagraph, BlockKindTable, BlockKindHeader}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("block kinds = %v, want %v", kinds, expected)
	}
}

// Re-running the conversion on the same input must yield a structurally
// identical document.
func TestAggregateIdempotent(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "LEDGER\n\n2024-01-05  Coffee Shop   -4.50\n2024-01-06  Paycheck   1500.00\n\n- note one\n- note two"},
		{Number: 2, Text: "closing remarks span this\nand this line too."},
	}

	first := Convert(pages)
	second := Convert(pages)

	if !reflect.DeepEqual(first.Blocks(), second.Blocks()) {
		t.Error("repeated Convert produced structurally different documents")
	}
	if first.Summary() != second.Summary() {
		t.Errorf("summaries differ: %+v vs %+v", first.Summary(), second.Summary())
	}
}

func TestDocumentBlockAtBounds(t *testing.T) {
	doc := Convert([]Page{{Number: 1, Text: "HELLO"}})

	if doc.BlockAt(-1) != nil {
		t.Error("BlockAt(-1) should be nil")
	}
	if doc.BlockAt(doc.BlockCount()) != nil {
		t.Error("BlockAt(len) should be nil")
	}
	if doc.BlockAt(0) == nil {
		t.Error("BlockAt(0) should not be nil")
	}
}
