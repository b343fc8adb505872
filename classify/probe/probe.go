// Package probe defines the capability interface for page-document
// introspection tools.
//
// Each probe wraps one external tool and reports a typed partial
// signal. Probes are best-effort: a missing or failing tool simply
// contributes no signal, and the classifier OR-combines whatever
// signals remain. No probe failure is ever fatal to an analysis.
package probe

import "context"

// Signal is one probe's partial view of a document's content.
// The zero Signal means the probe saw nothing either way.
type Signal struct {
	HasRaster bool
	HasVector bool

	RasterCount   int
	RasterFormats []string

	VectorCount int
	VectorTypes []string

	// Markup carries converted first-page vector markup when the probe
	// produced one, so downstream geometry can reuse it.
	Markup string

	// Advisory is a human-readable note that should surface as a
	// warning without affecting classification.
	Advisory string
}

// Empty reports whether the signal asserts nothing about content.
func (s Signal) Empty() bool {
	return !s.HasRaster && !s.HasVector
}

// Probe inspects a page-description document with one tool.
type Probe interface {
	// Name identifies the probe in logs.
	Name() string
	// Inspect examines the document at path. An error means the tool
	// was unavailable or failed; the caller drops the signal and moves
	// on.
	Inspect(ctx context.Context, path string) (Signal, error)
}
