// Package classify determines whether artwork is raster, vector, or
// mixed, and which production workflow it should follow.
//
// Vector markup is classified directly from its element inventory.
// Page-description documents are opaque, so classification OR-combines
// independent best-effort probes; contradictory signals resolve in
// favor of "content present", and no signal at all resolves to raster,
// the conservative choice - it triggers a quality-improvement prompt
// rather than silently shipping low quality.
package classify

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/printforge/preflight/classify/probe"
	"github.com/printforge/preflight/markup"
	"github.com/printforge/preflight/model"
)

// Result is a page-document classification with its byproducts.
type Result struct {
	Analysis model.ContentAnalysis

	// Markup is converted first-page vector markup when a probe
	// produced one; geometry can reuse it for bounds extraction.
	Markup string

	// Advisories are probe notes that should surface as warnings.
	Advisories []string

	// NoSignal records that every probe came back empty and the
	// verdict was defaulted to raster.
	NoSignal bool
}

// Classifier runs content classification. It is immutable after
// construction and safe for concurrent use; each analysis runs its
// probes independently.
type Classifier struct {
	probes []probe.Probe
}

// DefaultProbes returns the standard probe set. The OCR probe is a
// stub unless built with the ocr tag; as a stub it reports itself
// unavailable and contributes nothing.
func DefaultProbes() []probe.Probe {
	return []probe.Probe{
		probe.MarkupConversion{},
		probe.TextExtraction{},
		probe.ImageLister{},
		probe.StreamScan{},
		probe.TextInRaster{},
	}
}

// New builds a classifier over the given probes. With no probes the
// classifier still works: page documents then always default to
// raster.
func New(probes ...probe.Probe) *Classifier {
	return &Classifier{probes: probes}
}

// Markup classifies vector markup text. Unreadable markup yields the
// conservative raster verdict.
func (c *Classifier) Markup(text string) model.ContentAnalysis {
	doc, err := markup.Parse(text)
	if err != nil {
		slog.Debug("classify: markup unreadable, defaulting to raster", "error", err)
		return withRecommendation(model.ContentAnalysis{HasRasterContent: true})
	}

	inv := doc.Inventory()
	analysis := model.ContentAnalysis{
		HasRasterContent: inv.HasRaster(),
		HasVectorContent: inv.SubstantiveVector(),
		RasterImages:     inv.Images,
		VectorElements:   inv.Vector,
	}
	if !analysis.HasRasterContent && !analysis.HasVectorContent {
		// Nothing drawable either way: conservative default.
		analysis.HasRasterContent = true
	}
	return withRecommendation(analysis)
}

// Page classifies a page-description document by running every probe
// concurrently and OR-combining their signals. Probe failures are
// logged and dropped; they never fail the classification.
func (c *Classifier) Page(ctx context.Context, path string) Result {
	signals := make([]probe.Signal, len(c.probes))

	var g errgroup.Group
	for i, p := range c.probes {
		g.Go(func() error {
			sig, err := p.Inspect(ctx, path)
			if err != nil {
				slog.Debug("classify: probe contributed no signal",
					"probe", p.Name(), "error", err)
				return nil
			}
			signals[i] = sig
			return nil
		})
	}
	// Goroutines swallow their own errors; Wait only synchronizes.
	_ = g.Wait()

	return combine(signals)
}

// combine merges probe signals with OR semantics. Counts take the
// maximum across probes rather than the sum: independent probes
// measure the same document, and summing would double count.
func combine(signals []probe.Signal) Result {
	var res Result
	analysis := model.ContentAnalysis{}
	rasterFormats := map[string]bool{}
	vectorTypes := map[string]bool{}
	empty := true

	for _, sig := range signals {
		if !sig.Empty() {
			empty = false
		}
		if sig.HasRaster {
			analysis.HasRasterContent = true
		}
		if sig.HasVector {
			analysis.HasVectorContent = true
		}
		if sig.RasterCount > analysis.RasterImages.Count {
			analysis.RasterImages.Count = sig.RasterCount
		}
		if sig.VectorCount > analysis.VectorElements.Count {
			analysis.VectorElements.Count = sig.VectorCount
		}
		for _, f := range sig.RasterFormats {
			if !rasterFormats[f] {
				rasterFormats[f] = true
				analysis.RasterImages.Formats = append(analysis.RasterImages.Formats, f)
			}
		}
		for _, tname := range sig.VectorTypes {
			if !vectorTypes[tname] {
				vectorTypes[tname] = true
				analysis.VectorElements.Types = append(analysis.VectorElements.Types, tname)
			}
		}
		if res.Markup == "" && sig.Markup != "" {
			res.Markup = sig.Markup
		}
		if sig.Advisory != "" {
			res.Advisories = append(res.Advisories, sig.Advisory)
		}
	}

	if empty {
		res.NoSignal = true
		analysis.HasRasterContent = true
		slog.Debug("classify: no probe signal, defaulting to raster")
	}

	res.Analysis = withRecommendation(analysis)
	return res
}

// withRecommendation finalizes the mixed flag and workflow
// recommendation for an analysis.
func withRecommendation(a model.ContentAnalysis) model.ContentAnalysis {
	a.IsMixedContent = a.HasRasterContent && a.HasVectorContent
	switch {
	case a.IsMixedContent:
		a.Recommendation = model.RecommendMixed
	case a.HasVectorContent:
		a.Recommendation = model.RecommendVector
	default:
		a.Recommendation = model.RecommendRaster
	}
	return a
}
