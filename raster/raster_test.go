package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a flat gray image of the given size
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestLargestPerPage(t *testing.T) {
	images := []PageImage{
		{Page: 2, Data: []byte("small")},
		{Page: 1, Data: []byte("page one scan payload")},
		{Page: 2, Data: []byte("the much larger page two payload")},
	}

	pages := largestPerPage(images)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Page != 1 || pages[1].Page != 2 {
		t.Errorf("pages out of order: %d, %d", pages[0].Page, pages[1].Page)
	}
	if string(pages[1].Data) != "the much larger page two payload" {
		t.Errorf("page 2 kept %q, want the larger payload", pages[1].Data)
	}
}

func TestLargestPerPageEmpty(t *testing.T) {
	if pages := largestPerPage(nil); len(pages) != 0 {
		t.Errorf("got %d pages from empty input, want 0", len(pages))
	}
}

func TestUpscaleSmallImage(t *testing.T) {
	opts := DefaultOptions()
	data := encodePNG(t, 400, 600)

	scaled, err := upscale(data, opts)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if scaled == nil {
		t.Fatal("undersized image was not upscaled")
	}

	img, _, err := image.Decode(bytes.NewReader(scaled))
	if err != nil {
		t.Fatalf("decode scaled: %v", err)
	}
	if got := img.Bounds().Dx(); got != opts.TargetWidth {
		t.Errorf("scaled width = %d, want %d", got, opts.TargetWidth)
	}
	// Aspect ratio preserved: 600/400 * 1700 = 2550
	if got := img.Bounds().Dy(); got != 2550 {
		t.Errorf("scaled height = %d, want 2550", got)
	}
}

func TestUpscaleLargeImageUntouched(t *testing.T) {
	data := encodePNG(t, 2000, 100)

	scaled, err := upscale(data, DefaultOptions())
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if scaled != nil {
		t.Error("image at full width should not be re-encoded")
	}
}

func TestUpscaleInvalidData(t *testing.T) {
	if _, err := upscale([]byte("not an image"), DefaultOptions()); err == nil {
		t.Error("expected decode error for junk data")
	}
}

func TestPageImagesMissingFile(t *testing.T) {
	if _, err := PageImages("no-such-file.pdf", DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}
