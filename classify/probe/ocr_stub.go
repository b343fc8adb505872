//go:build !ocr

package probe

import (
	"context"
	"errors"
)

// ErrOCRNotEnabled is returned when the OCR probe runs without OCR
// support compiled in. Rebuild with -tags ocr to enable it; this
// requires Tesseract to be installed.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// TextInRaster is the stub OCR probe used when the "ocr" build tag is
// not set. It always reports itself unavailable, which the classifier
// treats like any other missing tool.
type TextInRaster struct {
	// DPI matches the OCR-enabled implementation.
	DPI float64
}

// Name implements Probe.
func (TextInRaster) Name() string { return "text-in-raster" }

// Inspect implements Probe.
func (TextInRaster) Inspect(ctx context.Context, path string) (Signal, error) {
	return Signal{}, ErrOCRNotEnabled
}
