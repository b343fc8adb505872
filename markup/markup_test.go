package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/printforge/preflight/model"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
  <defs>
    <clipPath id="crop"><rect x="0" y="0" width="200" height="100"/></clipPath>
  </defs>
  <rect x="10" y="10" width="50" height="40" fill="#ff0000"/>
  <circle cx="100" cy="50" r="20" fill="rgb(0,0,255)"/>
  <path d="M 0 0 L 10 10" clip-rule="evenodd" fill="black"/>
  <rect x="150" y="60" width="10" height="10" fill="none" stroke="none"/>
  <image href="photo.jpg" x="0" y="0" width="64" height="64"/>
</svg>`

func TestParse(t *testing.T) {
	doc, err := Parse(sampleSVG)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	frame := doc.Frame()
	if frame.Width != 200 || frame.Height != 100 {
		t.Errorf("Frame() = %+v, want 200x100", frame)
	}

	minX, minY, w, h, ok := doc.ViewBox()
	if !ok || minX != 0 || minY != 0 || w != 200 || h != 100 {
		t.Errorf("ViewBox() = (%v,%v,%v,%v,%v), want (0,0,200,100,true)", minX, minY, w, h, ok)
	}
}

func TestParse_NoRoot(t *testing.T) {
	if _, err := Parse("<div>not artwork</div>"); err == nil {
		t.Error("Parse() on non-svg markup should fail")
	}
}

func TestParse_FrameFromViewBox(t *testing.T) {
	doc, err := Parse(`<svg viewBox="0 0 300 150"><rect width="10" height="10"/></svg>`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Frame(); got != (model.Frame{Width: 300, Height: 150}) {
		t.Errorf("Frame() = %+v, want 300x150", got)
	}
}

func TestParse_UnitsOnLengths(t *testing.T) {
	doc, err := Parse(`<svg width="210mm" height="297mm"></svg>`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Frame(); got != (model.Frame{Width: 210, Height: 297}) {
		t.Errorf("Frame() = %+v, want 210x297", got)
	}
}

func TestElementHidden(t *testing.T) {
	tests := []struct {
		name   string
		svg    string
		hidden bool
	}{
		{"filled rect", `<svg><rect fill="red"/></svg>`, false},
		{"default fill", `<svg><rect x="1"/></svg>`, false},
		{"no fill no stroke", `<svg><rect fill="none" stroke="none"/></svg>`, true},
		{"no fill, stroke absent", `<svg><rect fill="none"/></svg>`, true},
		{"no fill but stroked", `<svg><rect fill="none" stroke="black"/></svg>`, false},
		{"zero opacity", `<svg><rect fill="red" opacity="0"/></svg>`, true},
		{"display none", `<svg><rect fill="red" display="none"/></svg>`, true},
		{"style display none", `<svg><rect style="display:none"/></svg>`, true},
		{"style fill none", `<svg><rect style="fill:none; stroke:none"/></svg>`, true},
		{"visibility hidden", `<svg><rect visibility="hidden"/></svg>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.svg)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			rects := doc.Elements("rect")
			if len(rects) != 1 {
				t.Fatalf("got %d rects, want 1", len(rects))
			}
			if got := rects[0].Hidden(); got != tt.hidden {
				t.Errorf("Hidden() = %v, want %v", got, tt.hidden)
			}
		})
	}
}

func TestInventory(t *testing.T) {
	doc, err := Parse(sampleSVG)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	inv := doc.Inventory()

	if inv.Images.Count != 1 {
		t.Errorf("Images.Count = %d, want 1", inv.Images.Count)
	}
	if diff := cmp.Diff([]string{"jpeg"}, inv.Images.Formats); diff != "" {
		t.Errorf("Images.Formats mismatch (-want +got):\n%s", diff)
	}
	// clipPath child rect, the drawn rect, the invisible rect, the
	// circle, and the path all count as primitives; visibility is a
	// geometry concern, not an inventory one.
	if inv.Vector.Count != 5 {
		t.Errorf("Vector.Count = %d, want 5", inv.Vector.Count)
	}
	if inv.PathCount != 1 {
		t.Errorf("PathCount = %d, want 1", inv.PathCount)
	}
	if inv.ClipRuleCount != 1 {
		t.Errorf("ClipRuleCount = %d, want 1", inv.ClipRuleCount)
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"photo.jpg", "jpeg"},
		{"logo.PNG", "png"},
		{"data:image/png;base64,iVBOR", "png"},
		{"data:image/jpeg,raw", "jpeg"},
		{"", ""},
		{"no-extension", ""},
	}

	for _, tt := range tests {
		if got := imageFormat(tt.href); got != tt.want {
			t.Errorf("imageFormat(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestClipPaths(t *testing.T) {
	doc, err := Parse(sampleSVG)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	clips := doc.ClipPaths()
	if len(clips) != 1 {
		t.Fatalf("ClipPaths() returned %d, want 1", len(clips))
	}
	kids := clips[0].Children()
	if len(kids) != 1 || !kids[0].Is("rect") {
		t.Errorf("clipPath children = %v, want one rect", kids)
	}
}
