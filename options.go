package hbapdf

import (
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/raster"
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/structure"
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/xlsx"
)

// ConvertOptions holds job-scoped configuration for one conversion. Each
// job carries its own copy, so concurrent conversions never share state.
type ConvertOptions struct {
	// OCR language(s), "+"-separated (e.g. "eng+fra")
	language string

	// Page image extraction and scaling
	rasterOptions raster.Options

	// Classification and aggregation
	aggregatorConfig structure.AggregatorConfig

	// Workbook generation
	writerConfig xlsx.WriterConfig
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		language:         "eng",
		rasterOptions:    raster.DefaultOptions(),
		aggregatorConfig: structure.DefaultAggregatorConfig(),
		writerConfig:     xlsx.DefaultWriterConfig(),
	}
}

// clone creates a copy of ConvertOptions for a new job.
func (o ConvertOptions) clone() ConvertOptions {
	// All fields are value types or job-private configs; a shallow copy
	// is a full copy.
	return o
}
