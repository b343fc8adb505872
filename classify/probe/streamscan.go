package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// StreamScan inspects the raw document bytes for image objects. It
// catches what higher-level listers miss in damaged files: image
// XObject dictionaries and inline images survive even when the
// cross-reference structure does not.
type StreamScan struct{}

// Name implements Probe.
func (StreamScan) Name() string { return "stream-scan" }

// imageMarkers are the dictionary spellings of an image XObject.
var imageMarkers = [][]byte{
	[]byte("/Subtype /Image"),
	[]byte("/Subtype/Image"),
}

// Inspect implements Probe.
func (StreamScan) Inspect(ctx context.Context, path string) (Signal, error) {
	if err := ctx.Err(); err != nil {
		return Signal{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Signal{}, fmt.Errorf("reading document: %w", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return Signal{}, fmt.Errorf("not a page-description document")
	}

	count := 0
	for _, marker := range imageMarkers {
		count += bytes.Count(data, marker)
	}
	count += countInlineImages(data)

	if count == 0 {
		return Signal{}, nil
	}
	return Signal{HasRaster: true, RasterCount: count}, nil
}

// countInlineImages counts BI...ID inline image operators in content
// streams. BI must stand alone as a token, not as part of a name or a
// longer operator.
func countInlineImages(data []byte) int {
	count := 0
	for i := 0; i+1 < len(data); i++ {
		if data[i] != 'B' || data[i+1] != 'I' {
			continue
		}
		if i > 0 && !isDelim(data[i-1]) {
			continue
		}
		if i+2 < len(data) && !isDelim(data[i+2]) {
			continue
		}
		// Require the matching ID operator within a sane distance.
		window := data[i:min(i+512, len(data))]
		if bytes.Contains(window, []byte(" ID")) || bytes.Contains(window, []byte("\nID")) {
			count++
		}
	}
	return count
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
