package probe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ImageLister runs the poppler pdfimages tool to list embedded images.
// The tool is asynchronous per analysis: a missing binary or a failed
// run drops the signal without affecting other probes.
type ImageLister struct {
	// Binary overrides the executable name, for tests.
	Binary string
}

// Name implements Probe.
func (p ImageLister) Name() string { return "image-lister" }

// Inspect implements Probe.
func (p ImageLister) Inspect(ctx context.Context, path string) (Signal, error) {
	binary := p.Binary
	if binary == "" {
		binary = "pdfimages"
	}

	cmd := exec.CommandContext(ctx, binary, "-list", path)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return Signal{}, fmt.Errorf("running %s: %w", binary, err)
	}

	return parseImageList(out.String()), nil
}

// parseImageList parses pdfimages -list output: two header lines, then
// one row per image with the object type in the third column and the
// encoding in the ninth.
func parseImageList(out string) Signal {
	var sig Signal
	seen := map[string]bool{}

	scanner := bufio.NewScanner(strings.NewReader(out))
	line := 0
	for scanner.Scan() {
		line++
		if line <= 2 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 9 || fields[2] != "image" {
			continue
		}
		sig.HasRaster = true
		sig.RasterCount++
		if enc := fields[8]; !seen[enc] {
			seen[enc] = true
			sig.RasterFormats = append(sig.RasterFormats, enc)
		}
	}
	return sig
}
