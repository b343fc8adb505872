package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestPixelSizeReader(t *testing.T) {
	got, err := PixelSizeReader(bytes.NewReader(pngBytes(t, 640, 480)))
	if err != nil {
		t.Fatalf("PixelSizeReader error: %v", err)
	}
	want := Size{WidthPx: 640, HeightPx: 480, Format: "png"}
	if got != want {
		t.Errorf("PixelSizeReader = %+v, want %+v", got, want)
	}
}

func TestPixelSizeReader_NotAnImage(t *testing.T) {
	if _, err := PixelSizeReader(strings.NewReader("definitely not pixels")); err == nil {
		t.Error("PixelSizeReader should fail on non-image data")
	}
}

func TestPixelSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art.png")
	if err := os.WriteFile(path, pngBytes(t, 32, 16), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	got, err := PixelSize(path)
	if err != nil {
		t.Fatalf("PixelSize error: %v", err)
	}
	if got.WidthPx != 32 || got.HeightPx != 16 {
		t.Errorf("PixelSize = %+v, want 32x16", got)
	}

	if _, err := PixelSize(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("PixelSize should fail for a missing file")
	}
}
