// Package bounds chooses the authoritative content bounds for an
// artwork from several candidate sources.
//
// The candidates are consulted in a fixed order that reflects an
// empirical fact of trace-pipeline output: the nominal document frame
// is not a trustworthy proxy for where the ink is. Each strategy
// either declines or produces a resolution tagged with the
// model.Source used later for accuracy grading.
package bounds

import (
	"log/slog"

	"github.com/printforge/preflight/model"
)

// Input gathers everything the resolver may consult.
type Input struct {
	// AlreadyCropped is the explicit prior "already cropped" marker.
	// When set, the declared frame is authoritative and nothing is
	// recomputed.
	AlreadyCropped bool

	// DeclaredFrame is the document's nominal frame, zero when the
	// document declares none.
	DeclaredFrame model.Frame

	// Geometry is the computed content bounds, nil when geometry
	// computation failed or found nothing.
	Geometry *model.GeometryBounds

	// TraceSource marks artwork produced by an automatic
	// raster-to-vector step. Such sources' declared frames are known
	// to over-state the true extent with padding.
	TraceSource bool

	// Hint is a caller-supplied bounds fallback.
	Hint *model.GeometryBounds
}

// Resolution is the chosen bounds with its provenance.
type Resolution struct {
	Bounds model.GeometryBounds
	Source model.Source
}

// strategy is one link in the resolution chain.
type strategy struct {
	name    string
	resolve func(Input) *Resolution
}

// Resolver picks authoritative bounds from an Input. The zero value is
// not usable; construct with NewResolver.
type Resolver struct {
	chain []strategy
	// fixed conservative fallback used when nothing else is available
	fallback model.Frame
}

// DefaultFallbackFrame is the conservative box substituted when no
// candidate source yields bounds.
var DefaultFallbackFrame = model.Frame{Width: 300, Height: 300}

// NewResolver builds a resolver with the standard strategy chain.
func NewResolver() *Resolver {
	r := &Resolver{fallback: DefaultFallbackFrame}
	r.chain = []strategy{
		{"crop-marker", r.cropMarker},
		{"trace-bounds", r.traceBounds},
		{"caller-hint", r.callerHint},
		{"declared-frame", r.declaredFrame},
		{"fixed-default", r.fixedDefault},
	}
	return r
}

// Resolve walks the chain until a strategy produces a resolution. The
// fixed-default strategy always succeeds, so Resolve never fails.
func (r *Resolver) Resolve(in Input) Resolution {
	for _, s := range r.chain {
		if res := s.resolve(in); res != nil {
			slog.Debug("bounds: resolved", "strategy", s.name, "source", res.Source,
				"width", res.Bounds.Width, "height", res.Bounds.Height)
			return *res
		}
	}
	// Unreachable: fixed-default always resolves.
	return Resolution{Source: model.SourceFallback}
}

// cropMarker trusts the declared frame of documents explicitly marked
// as already cropped.
func (r *Resolver) cropMarker(in Input) *Resolution {
	if !in.AlreadyCropped || in.DeclaredFrame.IsZero() {
		return nil
	}
	b := model.NewGeometryBounds(0, 0, in.DeclaredFrame.Width, in.DeclaredFrame.Height)
	if b == nil {
		return nil
	}
	return &Resolution{Bounds: *b, Source: model.SourceExactMatch}
}

// traceBounds uses computed geometry for trace-source artwork, whose
// declared frames pad beyond the real artwork extent.
func (r *Resolver) traceBounds(in Input) *Resolution {
	if !in.TraceSource || in.Geometry == nil {
		return nil
	}
	return &Resolution{Bounds: *in.Geometry, Source: model.SourceContentBounds}
}

// callerHint falls back to caller-measured bounds when geometry
// computation failed.
func (r *Resolver) callerHint(in Input) *Resolution {
	if in.Geometry != nil || in.Hint == nil {
		return nil
	}
	return &Resolution{Bounds: *in.Hint, Source: model.SourceContentBounds}
}

// declaredFrame is the last resort before the fixed default; its
// resolutions grade lower downstream.
func (r *Resolver) declaredFrame(in Input) *Resolution {
	if in.DeclaredFrame.IsZero() {
		return nil
	}
	b := model.NewGeometryBounds(0, 0, in.DeclaredFrame.Width, in.DeclaredFrame.Height)
	if b == nil {
		return nil
	}
	return &Resolution{Bounds: *b, Source: model.SourceViewbox}
}

// fixedDefault substitutes the conservative fallback box.
func (r *Resolver) fixedDefault(Input) *Resolution {
	b := model.NewGeometryBounds(0, 0, r.fallback.Width, r.fallback.Height)
	return &Resolution{Bounds: *b, Source: model.SourceFallback}
}
