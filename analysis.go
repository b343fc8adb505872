package preflight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/printforge/preflight/bounds"
	"github.com/printforge/preflight/classify"
	"github.com/printforge/preflight/classify/probe"
	"github.com/printforge/preflight/colors"
	"github.com/printforge/preflight/dimension"
	"github.com/printforge/preflight/format"
	"github.com/printforge/preflight/geometry"
	"github.com/printforge/preflight/markup"
	"github.com/printforge/preflight/model"
	"github.com/printforge/preflight/raster"
)

// Report is the complete preflight outcome for one artwork file. The
// embedded PreflightReport is what order-readiness logic consumes;
// Dimensions feeds placement and PDF assembly, Content feeds the
// upload-response handler, and Workflow tells color handling how to
// treat the artwork downstream.
type Report struct {
	model.PreflightReport

	Kind       format.Kind
	Content    model.ContentAnalysis
	Dimensions model.DimensionResult
	Workflow   colors.WorkflowOptions
}

// Analysis holds fluent configuration for one artwork file. Chain
// methods return the same Analysis; call a terminal operation
// (Report, Classify, Dimensions) to run the pipeline.
type Analysis struct {
	path    string
	text    string
	hasText bool
	kind    format.Kind
	kindSet bool

	cfg    Config
	probes []probe.Probe

	hint    *model.GeometryBounds
	cropped bool
	trace   bool
}

// WithConfig replaces the default calibration and reference tables.
func (a *Analysis) WithConfig(cfg Config) *Analysis {
	a.cfg = cfg
	return a
}

// WithMarkup supplies vector markup text alongside the file path, so
// markup analysis needs no extra read. It does not change the detected
// media kind.
func (a *Analysis) WithMarkup(text string) *Analysis {
	a.text = text
	a.hasText = true
	return a
}

// WithHint supplies caller-measured content bounds used when geometry
// computation finds nothing.
func (a *Analysis) WithHint(hint *model.GeometryBounds) *Analysis {
	a.hint = hint
	return a
}

// AlreadyCropped marks the artwork as cropped to its content, making
// the declared frame authoritative. Markup carrying a
// data-cropped="true" root attribute is picked up without this call.
func (a *Analysis) AlreadyCropped() *Analysis {
	a.cropped = true
	return a
}

// TraceSource marks artwork produced by an automatic raster-to-vector
// step. Trace output declares padded frames, so measured geometry is
// preferred over the declared frame.
func (a *Analysis) TraceSource() *Analysis {
	a.trace = true
	return a
}

// Kind overrides media-kind detection.
func (a *Analysis) Kind(kind format.Kind) *Analysis {
	a.kind = kind
	a.kindSet = true
	return a
}

// WithProbes replaces the default page-document probe set. Mainly for
// tests and for deployments missing an external tool.
func (a *Analysis) WithProbes(probes ...probe.Probe) *Analysis {
	a.probes = probes
	return a
}

// Report runs the full pipeline and returns the merged report. The
// returned warnings duplicate report.Warnings in typed form. An error
// means the file could not be read at all; findings about the artwork
// itself are warnings, never errors.
func (a *Analysis) Report(ctx context.Context) (Report, []Warning, error) {
	kind, err := a.detectKind()
	if err != nil {
		return Report{}, nil, err
	}

	switch kind {
	case format.VectorMarkup:
		return a.reportMarkup()
	case format.PageDocument:
		return a.reportPage(ctx)
	case format.RasterImage:
		return a.reportRaster()
	default:
		return a.reportUnknown()
	}
}

// Classify runs the pipeline and returns just the content verdict.
func (a *Analysis) Classify(ctx context.Context) (model.ContentAnalysis, []Warning, error) {
	rep, warns, err := a.Report(ctx)
	return rep.Content, warns, err
}

// Dimensions runs the pipeline and returns just the physical
// dimensions.
func (a *Analysis) Dimensions(ctx context.Context) (model.DimensionResult, []Warning, error) {
	rep, warns, err := a.Report(ctx)
	return rep.Dimensions, warns, err
}

// detectKind settles the media kind: explicit override, then filename
// extension, then magic bytes.
func (a *Analysis) detectKind() (format.Kind, error) {
	if a.kindSet {
		return a.kind, nil
	}
	if kind := format.Detect(a.path); kind != format.Unknown {
		return kind, nil
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		return format.Unknown, fmt.Errorf("reading artwork: %w", err)
	}
	return format.DetectFromMagic(data), nil
}

func (a *Analysis) markupText() (string, error) {
	if a.hasText {
		return a.text, nil
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		return "", fmt.Errorf("reading artwork: %w", err)
	}
	return string(data), nil
}

// reportMarkup analyzes vector markup: classify the inventory, measure
// geometry, resolve bounds, normalize dimensions, tally colors.
func (a *Analysis) reportMarkup() (Report, []Warning, error) {
	text, err := a.markupText()
	if err != nil {
		return Report{}, nil, err
	}

	content := classify.New().Markup(text)

	var frame model.Frame
	var geom *model.GeometryBounds
	cropped := a.cropped
	if doc, perr := markup.Parse(text); perr == nil {
		frame = doc.Frame()
		if !cropped && strings.EqualFold(doc.Root().Attr("data-cropped"), "true") {
			cropped = true
		}
		parser := geometry.NewParser(a.cfg.Geometry)
		geom, _ = parser.Bounds(text, frame, a.cfg.Geometry.IsLargeFormat(frame))
	} else {
		slog.Debug("preflight: markup unparseable, no geometry", "error", perr)
	}

	res := bounds.NewResolver().Resolve(bounds.Input{
		AlreadyCropped: cropped,
		DeclaredFrame:  frame,
		Geometry:       geom,
		TraceSource:    a.trace,
		Hint:           a.hint,
	})

	rep, warns := a.assemble(format.VectorMarkup, content, res, colors.Scan(text), nil)
	return rep, warns, nil
}

// reportPage analyzes a page-description document. The probes classify
// it; when one of them produced converted first-page markup, geometry
// and colors reuse that markup. Converted markup is machine output, so
// its measured bounds are preferred over the page box the same way
// trace-source artwork's are.
func (a *Analysis) reportPage(ctx context.Context) (Report, []Warning, error) {
	result := classify.New(a.probes...).Page(ctx, a.path)

	frame, ferr := probe.PageFrame(a.path)
	if ferr != nil {
		slog.Debug("preflight: page frame unavailable", "error", ferr)
	}

	var geom *model.GeometryBounds
	var tally colors.Tally
	if result.Markup != "" {
		if doc, perr := markup.Parse(result.Markup); perr == nil {
			mframe := doc.Frame()
			parser := geometry.NewParser(a.cfg.Geometry)
			geom, _ = parser.Bounds(result.Markup, mframe, a.cfg.Geometry.IsLargeFormat(mframe))
		}
		tally = colors.Scan(result.Markup)
	}

	res := bounds.NewResolver().Resolve(bounds.Input{
		AlreadyCropped: a.cropped,
		DeclaredFrame:  frame,
		Geometry:       geom,
		TraceSource:    true,
		Hint:           a.hint,
	})

	var extra []Warning
	for _, adv := range result.Advisories {
		extra = append(extra, Warning(adv))
	}

	rep, warns := a.assemble(format.PageDocument, result.Analysis, res, tally, extra)
	return rep, warns, nil
}

// reportRaster analyzes a bitmap upload: the pixel size is the content
// extent, and the verdict is raster by construction.
func (a *Analysis) reportRaster() (Report, []Warning, error) {
	content := model.ContentAnalysis{
		HasRasterContent: true,
		RasterImages:     model.RasterInventory{Count: 1},
		Recommendation:   model.RecommendRaster,
	}
	if f := bitmapFormat(a.path); f != "" {
		content.RasterImages.Formats = []string{f}
	}

	var frame model.Frame
	size, err := raster.PixelSize(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, nil, fmt.Errorf("reading artwork: %w", err)
		}
		slog.Debug("preflight: bitmap size unavailable", "error", err)
	} else {
		frame = model.Frame{Width: float64(size.WidthPx), Height: float64(size.HeightPx)}
		if size.Format != "" {
			content.RasterImages.Formats = []string{size.Format}
		}
	}

	// A decoded pixel size is the exact content extent, so it resolves
	// like an already-cropped frame rather than a nominal one.
	res := bounds.NewResolver().Resolve(bounds.Input{
		AlreadyCropped: a.cropped || !frame.IsZero(),
		DeclaredFrame:  frame,
		Hint:           a.hint,
	})

	// Bitmaps carry no color definitions to tally; production treats
	// them as RGB until converted.
	tally := colors.Tally{RGB: 1}
	rep, warns := a.assemble(format.RasterImage, content, res, tally, nil)
	return rep, warns, nil
}

// reportUnknown handles files of no recognizable kind with the
// conservative default: raster verdict, fallback bounds.
func (a *Analysis) reportUnknown() (Report, []Warning, error) {
	content := model.ContentAnalysis{
		HasRasterContent: true,
		Recommendation:   model.RecommendRaster,
	}
	res := bounds.NewResolver().Resolve(bounds.Input{Hint: a.hint})
	rep, warns := a.assemble(format.Unknown, content, res, colors.Tally{}, nil)
	return rep, warns, nil
}

// assemble merges the classification verdict, resolved bounds, and
// color tally into the final report. Vectorization is required only
// for pure-raster verdicts; mixed content never forces it.
func (a *Analysis) assemble(kind format.Kind, content model.ContentAnalysis, res bounds.Resolution, tally colors.Tally, extra []Warning) (Report, []Warning) {
	dim := dimension.NewNormalizer(a.cfg.Dimension).
		Normalize(res.Bounds.Width, res.Bounds.Height, res.Source)

	pureRaster := content.HasRasterContent && !content.HasVectorContent

	var warns []Warning
	switch {
	case content.IsMixedContent:
		warns = append(warns, WarnMixedContent)
	case pureRaster:
		warns = append(warns, WarnRasterContent)
	}
	if res.Source == model.SourceFallback {
		warns = append(warns, WarnNoBounds)
	}
	warns = append(warns, extra...)

	contentBounds := res.Bounds
	rep := Report{
		PreflightReport: model.PreflightReport{
			ColorSpaceDetected:    string(tally.Space()),
			ContentBounds:         &contentBounds,
			ColorsDetected:        a.namedLiterals(tally.Literals),
			RequiresVectorization: pureRaster,
			Warnings:              warningStrings(warns),
		},
		Kind:       kind,
		Content:    content,
		Dimensions: dim,
		Workflow:   colors.WorkflowFor(content.Recommendation, tally.CMYK > 0),
	}
	return rep, warns
}

// namedLiterals annotates hex literals with the nearest reference ink,
// so the order-readiness UI can show "#ff6600 (Hi-Viz Orange)".
func (a *Analysis) namedLiterals(literals []string) []string {
	if len(literals) == 0 {
		return nil
	}
	out := make([]string, len(literals))
	for i, lit := range literals {
		out[i] = lit
		if strings.HasPrefix(lit, "#") {
			if ref, ok := colors.NearestReference(a.cfg.Colors, lit); ok {
				out[i] = lit + " (" + ref.Name + ")"
			}
		}
	}
	return out
}

func bitmapFormat(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpg" {
		return "jpeg"
	}
	return ext
}
