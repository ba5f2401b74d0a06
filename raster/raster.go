// Package raster pulls page images out of scanned PDF files and prepares
// them for OCR.
//
// Scanned documents embed one full-page image per page. This package
// extracts those images with pdfcpu and rescales undersized scans so
// Tesseract sees enough pixels to segment columns reliably. Vector-only
// pages contribute no image and therefore no OCR input; the conversion
// reports such documents as having no extractable content.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sort"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// PageImage is one extracted page scan
type PageImage struct {
	// Page is the 1-based source page number
	Page int

	// Data is the encoded image payload
	Data []byte

	// Format is the image file type as reported by pdfcpu (png, jpg, tiff)
	Format string
}

// Options holds extraction and scaling configuration
type Options struct {
	// MinWidth is the pixel width below which a scan is upscaled
	// Default: 1200
	MinWidth int

	// TargetWidth is the pixel width undersized scans are upscaled to,
	// roughly a 200 DPI letter page
	// Default: 1700
	TargetWidth int
}

// DefaultOptions returns sensible default configuration
func DefaultOptions() Options {
	return Options{
		MinWidth:    1200,
		TargetWidth: 1700,
	}
}

// PageImages extracts one image per page from the PDF at path, in page
// order. Pages that embed several images keep only the largest payload,
// which for scans is the page raster itself. Pages without images are
// omitted from the result.
func PageImages(path string, opts Options) ([]PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	extracted, err := api.ExtractImagesRaw(f, nil, conf)
	if err != nil {
		return nil, fmt.Errorf("image extraction failed: %w", err)
	}

	var all []PageImage
	for _, pageImages := range extracted {
		for _, img := range pageImages {
			data, err := io.ReadAll(img)
			if err != nil {
				continue
			}
			all = append(all, PageImage{
				Page:   img.PageNr,
				Data:   data,
				Format: img.FileType,
			})
		}
	}

	pages := largestPerPage(all)

	for i := range pages {
		scaled, err := upscale(pages[i].Data, opts)
		if err != nil {
			// Keep the original payload; Tesseract may still cope
			continue
		}
		if scaled != nil {
			pages[i].Data = scaled
			pages[i].Format = "png"
		}
	}

	return pages, nil
}

// largestPerPage keeps the biggest image payload of each page, ordered by
// page number
func largestPerPage(images []PageImage) []PageImage {
	byPage := make(map[int]PageImage)
	for _, img := range images {
		if best, ok := byPage[img.Page]; !ok || len(img.Data) > len(best.Data) {
			byPage[img.Page] = img
		}
	}

	pages := make([]PageImage, 0, len(byPage))
	for _, img := range byPage {
		pages = append(pages, img)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Page < pages[j].Page })
	return pages
}

// upscale re-encodes an undersized scan at the target width. It returns
// nil with no error when the image is already wide enough.
func upscale(data []byte, opts Options) ([]byte, error) {
	if opts.MinWidth <= 0 || opts.TargetWidth <= 0 {
		return nil, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode scan: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() >= opts.MinWidth {
		return nil, nil
	}

	scale := float64(opts.TargetWidth) / float64(bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, opts.TargetWidth, int(float64(bounds.Dy())*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode scaled scan: %w", err)
	}
	return buf.Bytes(), nil
}
