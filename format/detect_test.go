package format

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{VectorMarkup, "vector-markup"},
		{PageDocument, "page-document"},
		{RasterImage, "raster-image"},
		{Unknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"logo.svg", VectorMarkup},
		{"logo.SVG", VectorMarkup},
		{"artwork.pdf", PageDocument},
		{"artwork.ai", PageDocument},
		{"artwork.eps", PageDocument},
		{"photo.png", RasterImage},
		{"photo.jpg", RasterImage},
		{"photo.JPEG", RasterImage},
		{"scan.tiff", RasterImage},
		{"readme.txt", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"pdf", []byte("%PDF-1.7\n"), PageDocument},
		{"eps", []byte("%!PS-Adobe-3.0 EPSF-3.0\n"), PageDocument},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, RasterImage},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, RasterImage},
		{"gif", []byte("GIF89a"), RasterImage},
		{"bare svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), VectorMarkup},
		{"svg with xml decl", []byte(`<?xml version="1.0"?><svg></svg>`), VectorMarkup},
		{"svg with leading whitespace", []byte("\n\t <svg></svg>"), VectorMarkup},
		{"xml that is not svg", []byte(`<?xml version="1.0"?><root/>`), Unknown},
		{"short", []byte("ab"), Unknown},
		{"plain text", []byte("hello world, this is not artwork"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
