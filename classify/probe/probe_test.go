package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignalEmpty(t *testing.T) {
	tests := []struct {
		name string
		sig  Signal
		want bool
	}{
		{"zero", Signal{}, true},
		{"raster", Signal{HasRaster: true}, false},
		{"vector", Signal{HasVector: true}, false},
		{"advisory only", Signal{Advisory: "note"}, true},
	}
	for _, tt := range tests {
		if got := tt.sig.Empty(); got != tt.want {
			t.Errorf("%s: Empty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseImageList(t *testing.T) {
	const out = `page   num  type   width height color comp bpc  enc interp  object ID x-ppi y-ppi size ratio
--------------------------------------------------------------------------------------------
   1     0 image     640   480  rgb     3   8  jpeg   no         8  0   150   150  12K 1.3%
   1     1 image     320   240  gray    1   8  image  no         9  0    72    72  8K  11%
   1     2 smask     320   240  gray    1   8  image  no        10  0    72    72  8K  11%
   2     3 image     100   100  rgb     3   8  jpeg   no        11  0    96    96  2K  6.8%
`
	got := parseImageList(out)
	if !got.HasRaster {
		t.Error("HasRaster = false, want true")
	}
	if got.RasterCount != 3 {
		t.Errorf("RasterCount = %d, want 3 (smask rows excluded)", got.RasterCount)
	}
	if diff := cmp.Diff([]string{"jpeg", "image"}, got.RasterFormats); diff != "" {
		t.Errorf("RasterFormats mismatch (-want +got):\n%s", diff)
	}
}

func TestParseImageList_NoImages(t *testing.T) {
	const out = `page   num  type   width height color comp bpc  enc interp  object ID x-ppi y-ppi size ratio
--------------------------------------------------------------------------------------------
`
	got := parseImageList(out)
	if !got.Empty() {
		t.Errorf("signal = %+v, want empty", got)
	}
}

func TestStreamScan(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	withImage := write("image.pdf", []byte("%PDF-1.4\n1 0 obj\n<< /Type /XObject /Subtype /Image /Width 10 >>\nstream\nendstream\nendobj\n"))
	compact := write("compact.pdf", []byte("%PDF-1.4\n<</Subtype/Image/Width 5>>\n"))
	inline := write("inline.pdf", []byte("%PDF-1.4\nstream\nq BI /W 4 /H 4 ID \x00\x01 EI Q\nendstream\n"))
	clean := write("clean.pdf", []byte("%PDF-1.4\n1 0 obj\n<< /Type /Page >>\nendobj\n"))
	notPDF := write("not.pdf", []byte("hello"))

	ctx := context.Background()
	var scan StreamScan

	sig, err := scan.Inspect(ctx, withImage)
	if err != nil || !sig.HasRaster || sig.RasterCount != 1 {
		t.Errorf("image xobject: sig=%+v err=%v", sig, err)
	}

	sig, err = scan.Inspect(ctx, compact)
	if err != nil || !sig.HasRaster {
		t.Errorf("compact spelling: sig=%+v err=%v", sig, err)
	}

	sig, err = scan.Inspect(ctx, inline)
	if err != nil || !sig.HasRaster {
		t.Errorf("inline image: sig=%+v err=%v", sig, err)
	}

	sig, err = scan.Inspect(ctx, clean)
	if err != nil || !sig.Empty() {
		t.Errorf("clean document: sig=%+v err=%v", sig, err)
	}

	if _, err = scan.Inspect(ctx, notPDF); err == nil {
		t.Error("non-PDF input should error")
	}
	if _, err = scan.Inspect(ctx, filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("missing file should error")
	}
}

func TestImageLister_MissingBinary(t *testing.T) {
	lister := ImageLister{Binary: "definitely-not-installed-anywhere"}
	if _, err := lister.Inspect(context.Background(), "whatever.pdf"); err == nil {
		t.Error("missing binary should error, not panic or block")
	}
}
