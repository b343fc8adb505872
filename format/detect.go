// Package format provides media-kind detection for uploaded artwork.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind is the coarse media family of an uploaded artwork file. It
// decides which analysis pipeline the file enters: vector markup is
// parsed directly, page documents are probed with external tools, and
// raster images are only measured.
type Kind int

const (
	// Unknown indicates an unrecognized media kind.
	Unknown Kind = iota
	// VectorMarkup indicates an SVG document.
	VectorMarkup
	// PageDocument indicates a page-description document (PDF, or the
	// PDF-compatible AI/EPS families).
	PageDocument
	// RasterImage indicates a bitmap image.
	RasterImage
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case VectorMarkup:
		return "vector-markup"
	case PageDocument:
		return "page-document"
	case RasterImage:
		return "raster-image"
	default:
		return "unknown"
	}
}

// Detect determines the media kind from the filename extension.
func Detect(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		return VectorMarkup
	case ".pdf", ".ai", ".eps":
		return PageDocument
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return RasterImage
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading file bytes to determine the media
// kind. This is more reliable than extension-based detection and is
// preferred when both are available.
func DetectFromMagic(data []byte) Kind {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PageDocument
	}

	// EPS magic: %!PS
	if bytes.HasPrefix(data, []byte("%!PS")) {
		return PageDocument
	}

	// PNG magic
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		return RasterImage
	}

	// JPEG magic
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return RasterImage
	}

	// GIF magic
	if bytes.HasPrefix(data, []byte("GIF8")) {
		return RasterImage
	}

	if detectMarkupMagic(data) {
		return VectorMarkup
	}

	return Unknown
}

// detectMarkupMagic checks whether the data looks like an SVG document.
func detectMarkupMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<SVG") {
		return true
	}
	// XML declaration or doctype followed by an svg root
	if strings.HasPrefix(upper, "<?XML") || strings.HasPrefix(upper, "<!DOCTYPE") {
		return strings.Contains(upper, "<SVG")
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
