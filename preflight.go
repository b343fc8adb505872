// Package preflight provides a fluent API for checking artwork files
// before print production: content classification (raster, vector,
// mixed), authoritative content bounds, physical dimensions with a
// confidence grade, and a color-space tally, merged into one report.
//
// Basic usage:
//
//	report, warnings, err := preflight.Open("artwork.svg").Report(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", preflight.FormatWarnings(warnings))
//	}
//
// With options:
//
//	report, _, err := preflight.Open("trace.svg").
//	    TraceSource().
//	    WithHint(measured).
//	    Report(ctx)
//
// Problems found in the artwork surface as warnings beside a complete
// report; an error means the file itself could not be read. For
// advanced use cases the lower-level geometry, bounds, dimension, and
// classify packages are also available.
package preflight

import (
	"github.com/printforge/preflight/classify"
	"github.com/printforge/preflight/format"
)

// Open prepares an analysis of the artwork file at path. The media
// kind is detected from the filename and, failing that, from magic
// bytes; Kind overrides detection.
//
// Example:
//
//	report, warnings, err := preflight.Open("artwork.pdf").Report(ctx)
func Open(path string) *Analysis {
	return &Analysis{
		path:   path,
		cfg:    DefaultConfig(),
		probes: classify.DefaultProbes(),
	}
}

// FromMarkup prepares an analysis of vector markup already held in
// memory, as upload handlers commonly have it.
//
// Example:
//
//	report, warnings, err := preflight.FromMarkup(svgText).Report(ctx)
func FromMarkup(text string) *Analysis {
	return &Analysis{
		text:    text,
		hasText: true,
		kind:    format.VectorMarkup,
		kindSet: true,
		cfg:     DefaultConfig(),
	}
}

// Must wraps a call returning (T, error) and panics on error. Intended
// for scripts and tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := preflight.Must(preflight.LoadConfig("preflight.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustReport wraps a terminal operation returning (T, []Warning, error)
// and panics on error, discarding warnings.
//
// Example:
//
//	report := preflight.MustReport(preflight.Open("artwork.svg").Report(ctx))
func MustReport[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
