// Package raster measures bitmap artwork without decoding pixel data.
package raster

import (
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for the bitmap formats customers upload.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is a bitmap's pixel dimensions and decoded format name.
type Size struct {
	WidthPx  int
	HeightPx int
	Format   string
}

// PixelSize reads just enough of the file to determine its pixel
// dimensions.
func PixelSize(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("opening raster file: %w", err)
	}
	defer f.Close()
	return PixelSizeReader(f)
}

// PixelSizeReader determines pixel dimensions from a reader.
func PixelSizeReader(r io.Reader) (Size, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return Size{}, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Size{}, fmt.Errorf("image reports degenerate size %dx%d", cfg.Width, cfg.Height)
	}
	return Size{WidthPx: cfg.Width, HeightPx: cfg.Height, Format: name}, nil
}
