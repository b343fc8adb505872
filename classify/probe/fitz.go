package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/text/unicode/norm"

	"github.com/printforge/preflight/markup"
	"github.com/printforge/preflight/model"
)

// MarkupConversion converts the first page to vector markup and
// classifies what the conversion produced. Drawing operators survive
// conversion as vector primitives and embedded bitmaps as image
// references, so the converted page answers both content questions at
// once.
type MarkupConversion struct{}

// Name implements Probe.
func (MarkupConversion) Name() string { return "markup-conversion" }

// Inspect implements Probe.
func (MarkupConversion) Inspect(ctx context.Context, path string) (Signal, error) {
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

	svg, err := doc.SVG(0)
	if err != nil {
		return Signal{}, fmt.Errorf("converting first page: %w", err)
	}

	parsed, err := markup.Parse(svg)
	if err != nil {
		return Signal{}, fmt.Errorf("parsing converted markup: %w", err)
	}

	inv := parsed.Inventory()
	return Signal{
		HasRaster:     inv.HasRaster(),
		HasVector:     inv.SubstantiveVector(),
		RasterCount:   inv.Images.Count,
		RasterFormats: inv.Images.Formats,
		VectorCount:   inv.Vector.Count,
		VectorTypes:   inv.Vector.Types,
		Markup:        svg,
	}, nil
}

// PageFrame reports the first page's media box in points. It is not a
// probe: classification does not need it, but dimension work on page
// documents does, and this package already owns the document access.
func PageFrame(path string) (model.Frame, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return model.Frame{}, fmt.Errorf("opening document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return model.Frame{}, fmt.Errorf("document has no pages")
	}

	rect, err := doc.Bound(0)
	if err != nil {
		return model.Frame{}, fmt.Errorf("reading page bounds: %w", err)
	}
	return model.Frame{Width: float64(rect.Dx()), Height: float64(rect.Dy())}, nil
}

// TextExtraction extracts literal text from every page. Non-empty text
// asserts vector content: outlined or embedded text is vector by
// construction.
type TextExtraction struct{}

// Name implements Probe.
func (TextExtraction) Name() string { return "text-extraction" }

// Inspect implements Probe.
func (TextExtraction) Inspect(ctx context.Context, path string) (Signal, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return Signal{}, fmt.Errorf("opening document: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return Signal{}, err
		}
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	text := strings.TrimSpace(norm.NFC.String(sb.String()))
	if text == "" {
		return Signal{}, nil
	}
	return Signal{
		HasVector:   true,
		VectorCount: 1,
		VectorTypes: []string{"text"},
	}, nil
}
