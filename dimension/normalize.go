// Package dimension converts pixel bounds to physical print units.
//
// Conversion is calibrated rather than derived: a small table of known
// reference objects maps rounded pixel sizes to trusted physical
// sizes, and everything else goes through fixed px-to-mm factors. The
// general factor and the page-point factor are calibrated
// independently and disagree at intermediate sizes; both are kept
// visible in the Config rather than papering over the mismatch.
package dimension

import (
	"math"

	"github.com/printforge/preflight/model"
)

// KnownDimension maps a rounded pixel size to a trusted physical size.
// The table is read-only reference data: used only for snapping, never
// mutated at runtime.
type KnownDimension struct {
	WidthPx  int     `yaml:"width_px"`
	HeightPx int     `yaml:"height_px"`
	WidthMm  float64 `yaml:"width_mm"`
	HeightMm float64 `yaml:"height_mm"`
	Name     string  `yaml:"name"`
}

// Config holds the calibration constants and reference tables.
type Config struct {
	// PxToMm is the general calibrated pixel-to-millimeter factor.
	PxToMm float64 `yaml:"px_to_mm"`

	// PtToMm converts page-point documents (PDF user space, 72 per
	// inch). Applied instead of PxToMm when the rounded pixel pair is
	// a recognized page point size.
	PtToMm float64 `yaml:"pt_to_mm"`

	// SnapTolerancePx is the near-miss distance, per axis, within
	// which a pixel pair snaps to a known-dimension entry.
	SnapTolerancePx float64 `yaml:"snap_tolerance_px"`

	// MaxWidthMm and MaxHeightMm bound the working size. Larger
	// results are uniformly downscaled before final conversion, except
	// for recognized page point sizes, which are never auto-scaled.
	MaxWidthMm  float64 `yaml:"max_width_mm"`
	MaxHeightMm float64 `yaml:"max_height_mm"`

	// Known is the reference table of trusted physical sizes.
	Known []KnownDimension `yaml:"known"`

	// PagePointSizes lists standard paper sizes in points. Matching is
	// orientation-insensitive.
	PagePointSizes []PagePointSize `yaml:"page_point_sizes"`
}

// PagePointSize is a standard paper size expressed in points.
type PagePointSize struct {
	Name     string `yaml:"name"`
	WidthPt  int    `yaml:"width_pt"`
	HeightPt int    `yaml:"height_pt"`
}

// DefaultConfig returns the production calibration.
func DefaultConfig() Config {
	return Config{
		PxToMm:          0.35,
		PtToMm:          25.4 / 72.0,
		SnapTolerancePx: 2,
		MaxWidthMm:      420,
		MaxHeightMm:     594,
		Known: []KnownDimension{
			{WidthPx: 600, HeightPx: 595, WidthMm: 210, HeightMm: 208.249, Name: "A4 template canvas"},
			{WidthPx: 420, HeightPx: 595, WidthMm: 148, HeightMm: 208.249, Name: "A5 template canvas"},
			{WidthPx: 848, HeightPx: 1191, WidthMm: 297, HeightMm: 420, Name: "A3 sheet"},
		},
		PagePointSizes: []PagePointSize{
			{Name: "A4", WidthPt: 595, HeightPt: 842},
			{Name: "A3", WidthPt: 842, HeightPt: 1191},
		},
	}
}

type pxKey struct {
	w, h int
}

// Normalizer converts pixel bounds to millimeters with accuracy
// grading. It is immutable after construction and safe for concurrent
// use.
type Normalizer struct {
	cfg   Config
	known map[pxKey]KnownDimension
}

// NewNormalizer builds a normalizer from the given calibration.
func NewNormalizer(cfg Config) *Normalizer {
	known := make(map[pxKey]KnownDimension, len(cfg.Known))
	for _, k := range cfg.Known {
		known[pxKey{k.WidthPx, k.HeightPx}] = k
	}
	return &Normalizer{cfg: cfg, known: known}
}

// Normalize converts pixel bounds to physical units. The source tag
// from bounds resolution determines the accuracy grade when no known
// reference matches.
func (n *Normalizer) Normalize(widthPx, heightPx float64, source model.Source) model.DimensionResult {
	// Absorb floating-point noise from upstream geometry.
	rw := int(math.Round(widthPx))
	rh := int(math.Round(heightPx))

	// An exact table hit overrides numeric conversion entirely.
	if k, ok := n.known[pxKey{rw, rh}]; ok {
		return n.fromKnown(k, model.AccuracyPerfect, source)
	}

	// A near miss snaps to the entry's own pixel values.
	if k, ok := n.nearMiss(rw, rh); ok {
		return n.fromKnown(k, model.AccuracyHigh, source)
	}

	factor := n.cfg.PxToMm
	pageSize, isPage := n.pagePointSize(rw, rh)
	if isPage {
		factor = n.cfg.PtToMm
	}

	w := float64(rw)
	h := float64(rh)
	wMm := w * factor
	hMm := h * factor

	// Oversize artwork is brought into the working area; fixed page
	// sizes are already physical realities and are never auto-scaled.
	if !isPage && (wMm > n.cfg.MaxWidthMm || hMm > n.cfg.MaxHeightMm) {
		scale := math.Min(n.cfg.MaxWidthMm/wMm, n.cfg.MaxHeightMm/hMm)
		w *= scale
		h *= scale
		wMm = w * factor
		hMm = h * factor
	}

	res := model.DimensionResult{
		WidthPx:          w,
		HeightPx:         h,
		WidthMm:          wMm,
		HeightMm:         hMm,
		ConversionFactor: factor,
		Source:           source,
		Accuracy:         gradeBySource(source),
	}
	if isPage {
		res.MatchedReference = pageSize.Name
	}
	return res
}

func (n *Normalizer) fromKnown(k KnownDimension, acc model.Accuracy, source model.Source) model.DimensionResult {
	return model.DimensionResult{
		WidthPx:          float64(k.WidthPx),
		HeightPx:         float64(k.HeightPx),
		WidthMm:          k.WidthMm,
		HeightMm:         k.HeightMm,
		ConversionFactor: k.WidthMm / float64(k.WidthPx),
		Source:           source,
		Accuracy:         acc,
		MatchedReference: k.Name,
	}
}

func (n *Normalizer) nearMiss(rw, rh int) (KnownDimension, bool) {
	tol := n.cfg.SnapTolerancePx
	for _, k := range n.cfg.Known {
		if math.Abs(float64(rw-k.WidthPx)) <= tol && math.Abs(float64(rh-k.HeightPx)) <= tol {
			return k, true
		}
	}
	return KnownDimension{}, false
}

func (n *Normalizer) pagePointSize(rw, rh int) (PagePointSize, bool) {
	for _, p := range n.cfg.PagePointSizes {
		if (rw == p.WidthPt && rh == p.HeightPt) || (rw == p.HeightPt && rh == p.WidthPt) {
			return p, true
		}
	}
	return PagePointSize{}, false
}

// gradeBySource maps a bounds source to an accuracy grade when no
// known reference matched. Frame-derived sources grade low because
// the declared frame may pad beyond the ink.
func gradeBySource(source model.Source) model.Accuracy {
	switch source {
	case model.SourceExactMatch:
		return model.AccuracyHigh
	case model.SourceContentBounds:
		return model.AccuracyMedium
	default:
		return model.AccuracyLow
	}
}
