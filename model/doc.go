// Package model provides the shared value types produced by artwork
// analysis.
//
// Every analysis operation ultimately produces these types, making them
// the primary API for consuming results. All values are computed fresh
// per analysis call and passed by value between components; nothing in
// this package persists beyond the caller's use of the result.
//
// # Geometry
//
//   - [GeometryBounds] - the tightest axis-aligned box enclosing visible
//     drawable geometry, distinct from a document's declared frame
//   - [Frame] - the nominal coordinate frame a vector document declares
//
// # Results
//
//   - [DimensionResult] - physical dimensions with a [Source] tag and an
//     [Accuracy] grade
//   - [ContentAnalysis] - raster/vector/mixed composition with a
//     workflow [Recommendation]
//   - [PreflightReport] - the merged report consumed by placement and
//     order-readiness logic
package model
