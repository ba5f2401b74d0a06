// Package structure turns raw per-page OCR text into a structured document
// model ready for spreadsheet export.
//
// The package analyzes line-delimited page text to detect content structure:
// table rows, list items, headers, and paragraph text.
//
// # Pipeline
//
// The [Aggregator] orchestrates the classification components:
//
//	agg := structure.NewAggregator()
//	doc := agg.Aggregate(pages)
//
// Each line is categorized by the [Classifier], consecutive runs of the same
// category are grouped, and finished runs are handed to the matching
// assembler ([TableAssembler], [ListAssembler]) to produce typed blocks.
//
// # Results
//
// The [Document] contains:
//
//   - Blocks - all content blocks in source reading order
//   - Summary - per-category block counts
//
// # Components
//
//   - [Classifier] - assigns a LineCategory to each line
//   - [CellSplitter] - splits a table row into cell strings
//   - [TableAssembler] - builds tables from table-row runs
//   - [ListAssembler] - builds lists from list-item runs
//   - [Aggregator] - the state machine grouping runs into blocks
//
// # Configuration
//
// Each component can be configured independently:
//
//	config := structure.DefaultAggregatorConfig()
//	config.ClassifierConfig.HeaderMaxLength = 60
//	agg := structure.NewAggregatorWithConfig(config)
//
// The package performs no I/O and holds no shared state; one Aggregator
// serves one conversion job and concurrent jobs are fully independent.
package structure
