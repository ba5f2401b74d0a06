//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubNew(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Error("New() should return nil client")
	}
}

func TestStubClientMethods(t *testing.T) {
	var client *Client

	if err := client.Close(); err != nil {
		t.Errorf("Close() on nil client = %v, want nil", err)
	}

	if _, err := client.RecognizeImage([]byte("png")); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetPageSegMode(PSM_SINGLE_BLOCK); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStubRecognizePages(t *testing.T) {
	var client *Client

	texts := client.RecognizePages([][]byte{{1}, {2}, {3}})
	if len(texts) != 3 {
		t.Fatalf("RecognizePages returned %d entries, want 3", len(texts))
	}
	for i, text := range texts {
		if text != "" {
			t.Errorf("page %d text = %q, want empty", i, text)
		}
	}
}
