package bounds

import (
	"testing"

	"github.com/printforge/preflight/model"
)

func box(minX, minY, maxX, maxY float64) *model.GeometryBounds {
	return model.NewGeometryBounds(minX, minY, maxX, maxY)
}

func TestResolve_Ordering(t *testing.T) {
	geom := box(10, 10, 110, 60)
	hint := box(0, 0, 80, 40)

	tests := []struct {
		name       string
		in         Input
		wantSource model.Source
		wantWidth  float64
	}{
		{
			name: "crop marker wins over everything",
			in: Input{
				AlreadyCropped: true,
				DeclaredFrame:  model.Frame{Width: 200, Height: 100},
				Geometry:       geom,
				TraceSource:    true,
				Hint:           hint,
			},
			wantSource: model.SourceExactMatch,
			wantWidth:  200,
		},
		{
			name: "trace source uses computed geometry",
			in: Input{
				DeclaredFrame: model.Frame{Width: 500, Height: 500},
				Geometry:      geom,
				TraceSource:   true,
			},
			wantSource: model.SourceContentBounds,
			wantWidth:  100,
		},
		{
			name: "hint used when geometry failed",
			in: Input{
				DeclaredFrame: model.Frame{Width: 500, Height: 500},
				TraceSource:   true,
				Hint:          hint,
			},
			wantSource: model.SourceContentBounds,
			wantWidth:  80,
		},
		{
			name: "declared frame as last resort",
			in: Input{
				DeclaredFrame: model.Frame{Width: 320, Height: 240},
			},
			wantSource: model.SourceViewbox,
			wantWidth:  320,
		},
		{
			name: "non-trace geometry does not override declared frame",
			in: Input{
				DeclaredFrame: model.Frame{Width: 320, Height: 240},
				Geometry:      geom,
			},
			wantSource: model.SourceViewbox,
			wantWidth:  320,
		},
		{
			name:       "fixed default when nothing is available",
			in:         Input{},
			wantSource: model.SourceFallback,
			wantWidth:  DefaultFallbackFrame.Width,
		},
		{
			name: "crop marker without frame falls through",
			in: Input{
				AlreadyCropped: true,
				Geometry:       geom,
				TraceSource:    true,
			},
			wantSource: model.SourceContentBounds,
			wantWidth:  100,
		},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.in)
			if got.Source != tt.wantSource {
				t.Errorf("Source = %v, want %v", got.Source, tt.wantSource)
			}
			if got.Bounds.Width != tt.wantWidth {
				t.Errorf("Width = %v, want %v", got.Bounds.Width, tt.wantWidth)
			}
		})
	}
}

func TestResolve_AlwaysProducesValidBounds(t *testing.T) {
	r := NewResolver()
	inputs := []Input{
		{},
		{TraceSource: true},
		{AlreadyCropped: true},
		{DeclaredFrame: model.Frame{Width: -5, Height: 10}},
	}
	for _, in := range inputs {
		res := r.Resolve(in)
		if res.Bounds.Width <= 0 || res.Bounds.Height <= 0 {
			t.Errorf("Resolve(%+v) produced degenerate bounds %+v", in, res.Bounds)
		}
	}
}
