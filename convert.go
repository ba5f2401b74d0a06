// Package hbapdf converts scanned PDF documents into structured Excel
// workbooks.
//
// Each page is OCR'd, the recognized text is classified line by line into
// tables, lists, headers, and paragraphs, and the resulting structure is
// written as one workbook sheet per category.
//
// Basic usage:
//
//	doc, err := hbapdf.Open("statement.pdf").Convert("statement.xlsx")
//	if err != nil {
//	    // handle error
//	}
//	if doc.IsEmpty() {
//	    // scanned pages held no recognizable text
//	}
//
// With options:
//
//	doc, err := hbapdf.Open("rechnung.pdf").
//	    Language("deu").
//	    Convert("rechnung.xlsx")
//
// Callers that already have per-page text (for example from a different
// OCR engine) can run the structuring core directly:
//
//	doc := hbapdf.ConvertPages(pages)
//
// OCR requires the "ocr" build tag and an installed Tesseract; without it,
// Convert fails in the ocr stage while ConvertPages remains fully usable.
package hbapdf

import (
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/ocr"
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/raster"
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/structure"
	"github.com/ODET-hub/HBA-PDF-to-EXCEL/xlsx"
)

// Converter runs one conversion job. It is created by Open, configured
// with fluent options, and finished with Convert or Document. A Converter
// is single-use and job-private; create one per document.
type Converter struct {
	filename string
	options  ConvertOptions
}

// Open prepares a conversion job for the PDF at filename.
//
// Example:
//
//	doc, err := hbapdf.Open("scan.pdf").Convert("scan.xlsx")
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Language sets the OCR language(s), "+"-separated (default "eng")
func (c *Converter) Language(lang string) *Converter {
	c.options.language = lang
	return c
}

// RasterOptions overrides page image extraction and scaling settings
func (c *Converter) RasterOptions(opts raster.Options) *Converter {
	c.options.rasterOptions = opts
	return c
}

// AggregatorConfig overrides classification and aggregation settings
func (c *Converter) AggregatorConfig(config structure.AggregatorConfig) *Converter {
	c.options.aggregatorConfig = config
	return c
}

// WriterConfig overrides workbook generation settings
func (c *Converter) WriterConfig(config xlsx.WriterConfig) *Converter {
	c.options.writerConfig = config
	return c
}

// Options returns a copy of the job's options, for use as a template when
// spawning further jobs
func (c *Converter) Options() ConvertOptions {
	return c.options.clone()
}

// Document runs rasterization, OCR, and structuring, returning the
// structured document without writing a workbook. A document with no
// recognizable text is returned empty, not as an error.
func (c *Converter) Document() (*structure.Document, error) {
	images, err := raster.PageImages(c.filename, c.options.rasterOptions)
	if err != nil {
		return nil, newConvertError("raster", c.filename, err)
	}

	pages, err := c.recognize(images)
	if err != nil {
		return nil, newConvertError("ocr", c.filename, err)
	}

	agg := structure.NewAggregatorWithConfig(c.options.aggregatorConfig)
	return agg.Aggregate(pages), nil
}

// Convert runs the full pipeline and writes the workbook to outPath. The
// workbook is written even for an empty document, with an all-zero
// summary.
func (c *Converter) Convert(outPath string) (*structure.Document, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}

	writer := xlsx.NewWriterWithConfig(c.options.writerConfig)
	if err := writer.Write(doc, outPath); err != nil {
		return nil, newConvertError("write", c.filename, err)
	}
	return doc, nil
}

// recognize OCRs the extracted page images into page text
func (c *Converter) recognize(images []raster.PageImage) ([]structure.Page, error) {
	if len(images) == 0 {
		return nil, nil
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if c.options.language != "" {
		if err := client.SetLanguage(c.options.language); err != nil {
			return nil, err
		}
	}

	data := make([][]byte, len(images))
	for i, img := range images {
		data[i] = img.Data
	}

	texts := client.RecognizePages(data)
	pages := make([]structure.Page, len(images))
	for i, img := range images {
		pages[i] = structure.Page{Number: img.Page, Text: texts[i]}
	}
	return pages, nil
}

// ConvertPages runs the structuring core over already-recognized page
// text. It never fails: any valid UTF-8 input yields a best-effort
// document.
func ConvertPages(pages []structure.Page) *structure.Document {
	return structure.Convert(pages)
}
