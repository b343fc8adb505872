package preflight

import "strings"

// Warning is a non-fatal finding surfaced beside a result. Warnings
// tell the caller what to prompt the user about; they never abort an
// analysis.
type Warning string

const (
	// WarnRasterContent marks pure-raster artwork that must be
	// vectorized before production.
	WarnRasterContent Warning = "raster content detected; vectorization required"

	// WarnMixedContent marks artwork combining bitmap and vector
	// content. Mixed artwork proceeds without forced vectorization
	// but deserves a human look.
	WarnMixedContent Warning = "mixed raster and vector content detected"

	// WarnNoBounds marks artwork whose content bounds could not be
	// computed; a conservative fallback frame was substituted.
	WarnNoBounds Warning = "content bounds could not be determined"
)

// FormatWarnings joins warnings into a single display string.
//
// Example:
//
//	log.Println("Warnings:", preflight.FormatWarnings(warnings))
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = string(w)
	}
	return strings.Join(parts, "; ")
}

func warningStrings(warnings []Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = string(w)
	}
	return out
}
