package hbapdf

import (
	"fmt"
)

// ConvertError reports a failure in one stage of the conversion pipeline.
// The "no extractable content" condition is not an error: it yields an
// empty document, reported by Document.IsEmpty.
type ConvertError struct {
	// Stage is the pipeline stage that failed: "raster", "ocr" or "write"
	Stage string

	// Path is the input file being converted
	Path string

	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("conversion of %q failed in %s stage: %v", e.Path, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// newConvertError wraps a stage failure.
func newConvertError(stage, path string, err error) *ConvertError {
	return &ConvertError{Stage: stage, Path: path, Err: err}
}
