package model

import (
	"math"
	"testing"
)

func TestNewGeometryBounds(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float64
		want                   *GeometryBounds
	}{
		{
			name: "valid box",
			minX: 10, minY: 20, maxX: 110, maxY: 70,
			want: &GeometryBounds{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70, Width: 100, Height: 50},
		},
		{
			name: "zero width rejected",
			minX: 5, minY: 0, maxX: 5, maxY: 10,
			want: nil,
		},
		{
			name: "inverted extrema rejected",
			minX: 10, minY: 10, maxX: 0, maxY: 0,
			want: nil,
		},
		{
			name: "infinite extrema rejected",
			minX: math.Inf(1), minY: 0, maxX: math.Inf(-1), maxY: 10,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGeometryBounds(tt.minX, tt.minY, tt.maxX, tt.maxY)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("NewGeometryBounds() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("NewGeometryBounds() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestGeometryBoundsUnion(t *testing.T) {
	a := NewGeometryBounds(0, 0, 50, 50)
	b := NewGeometryBounds(100, 100, 120, 120)

	got := a.Union(b)
	if got == nil {
		t.Fatal("Union() returned nil")
	}
	if got.MinX != 0 || got.MinY != 0 || got.MaxX != 120 || got.MaxY != 120 {
		t.Errorf("Union() = %+v, want (0,0)-(120,120)", *got)
	}

	if got := a.Union(nil); got != a {
		t.Errorf("Union(nil) = %v, want receiver", got)
	}
	var none *GeometryBounds
	if got := none.Union(b); got != b {
		t.Errorf("nil.Union(b) = %v, want b", got)
	}
}

func TestFrameExceeds(t *testing.T) {
	tests := []struct {
		frame Frame
		limit float64
		want  bool
	}{
		{Frame{Width: 500, Height: 400}, 600, false},
		{Frame{Width: 700, Height: 400}, 600, true},
		{Frame{Width: 500, Height: 842}, 600, true},
		{Frame{}, 600, false},
	}

	for _, tt := range tests {
		if got := tt.frame.Exceeds(tt.limit); got != tt.want {
			t.Errorf("Frame%+v.Exceeds(%v) = %v, want %v", tt.frame, tt.limit, got, tt.want)
		}
	}
}
