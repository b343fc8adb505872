//go:build ocr

package probe

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// TextInRaster renders the first page and runs OCR over it. It never
// changes the classification verdict: recognized text in an otherwise
// raster-only document only yields an advisory, because the customer
// may want to re-export with live text instead of vectorizing a scan.
//
// Requires Tesseract and the "ocr" build tag:
//
//	go build -tags ocr
type TextInRaster struct {
	// DPI for the rendered page; 150 when zero.
	DPI float64
}

// Name implements Probe.
func (TextInRaster) Name() string { return "text-in-raster" }

// Inspect implements Probe.
func (p TextInRaster) Inspect(ctx context.Context, path string) (Signal, error) {
	if err := ctx.Err(); err != nil {
		return Signal{}, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return Signal{}, fmt.Errorf("opening document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return Signal{}, fmt.Errorf("document has no pages")
	}

	dpi := p.DPI
	if dpi == 0 {
		dpi = 150
	}
	img, err := doc.ImageDPI(0, dpi)
	if err != nil {
		return Signal{}, fmt.Errorf("rendering first page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Signal{}, fmt.Errorf("encoding rendered page: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Signal{}, fmt.Errorf("setting OCR image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return Signal{}, fmt.Errorf("recognizing text: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return Signal{}, nil
	}
	return Signal{
		Advisory: "rasterized text detected; re-exporting with live text will improve print quality",
	}, nil
}
