package model

// Source identifies where an authoritative bounds value came from.
// The tag drives accuracy grading: the nominal document frame is not a
// trustworthy proxy for where the ink is, so frame-derived sources
// grade lower than measured ones.
type Source string

const (
	// SourceExactMatch means the document carried an explicit
	// already-cropped marker, so its declared frame is authoritative.
	SourceExactMatch Source = "exact_match"
	// SourceContentBounds means the bounds were measured from actual
	// geometry (or supplied by a caller that measured them).
	SourceContentBounds Source = "content_bounds"
	// SourceViewbox means the declared frame was used as a last-resort
	// proxy for content extent.
	SourceViewbox Source = "viewbox"
	// SourceFallback means nothing usable was available and a fixed
	// conservative default was substituted.
	SourceFallback Source = "fallback"
)

// Accuracy is a coarse confidence label attached to a computed
// physical dimension.
type Accuracy string

const (
	AccuracyPerfect Accuracy = "perfect"
	AccuracyHigh    Accuracy = "high"
	AccuracyMedium  Accuracy = "medium"
	AccuracyLow     Accuracy = "low"
)

// DimensionResult carries an artwork's physical dimensions together
// with how they were derived and how much to trust them.
type DimensionResult struct {
	WidthPx          float64
	HeightPx         float64
	WidthMm          float64
	HeightMm         float64
	ConversionFactor float64
	Source           Source
	Accuracy         Accuracy
	// MatchedReference names the known-dimension table entry the pixel
	// size matched or snapped to, empty otherwise.
	MatchedReference string
}

// Recommendation is the workflow a classified artwork should follow.
type Recommendation string

const (
	// RecommendVector preserves vector content end to end.
	RecommendVector Recommendation = "vector-workflow"
	// RecommendRaster routes through vectorization before print.
	RecommendRaster Recommendation = "raster-workflow"
	// RecommendMixed preserves vector parts as-is without forcing a
	// uniform color conversion across the whole document.
	RecommendMixed Recommendation = "mixed-workflow"
)

// RasterInventory summarizes embedded bitmap content.
type RasterInventory struct {
	Count   int
	Formats []string
}

// VectorInventory summarizes substantive vector primitives.
type VectorInventory struct {
	Count int
	Types []string
}

// ContentAnalysis is the raster/vector/mixed verdict for an artwork
// file, with the inventories that produced it.
type ContentAnalysis struct {
	HasRasterContent bool
	HasVectorContent bool
	IsMixedContent   bool
	RasterImages     RasterInventory
	VectorElements   VectorInventory
	Recommendation   Recommendation
}

// PreflightReport merges classification, color-space detection, and
// dimensions into the report consumed by order-readiness logic.
// Problems surface as warning strings, never as errors.
type PreflightReport struct {
	ColorSpaceDetected    string
	ContentBounds         *GeometryBounds
	ColorsDetected        []string
	RequiresVectorization bool
	Warnings              []string
}
