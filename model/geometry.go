package model

import "math"

// GeometryBounds is the tightest axis-aligned box enclosing a set of
// coordinates. A valid bounds always has Width > 0 and Height > 0;
// "no content" is represented by a nil *GeometryBounds, never by a
// zero-sized sentinel box.
type GeometryBounds struct {
	MinX   float64
	MinY   float64
	MaxX   float64
	MaxY   float64
	Width  float64
	Height float64
}

// NewGeometryBounds builds bounds from coordinate extrema. It returns
// nil when the extrema do not describe a box with positive area.
func NewGeometryBounds(minX, minY, maxX, maxY float64) *GeometryBounds {
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return nil
	}
	if math.IsInf(w, 0) || math.IsNaN(w) || math.IsInf(h, 0) || math.IsNaN(h) {
		return nil
	}
	return &GeometryBounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  w,
		Height: h,
	}
}

// Union returns the smallest bounds containing both b and other.
// Either argument may be nil, in which case the other is returned.
func (b *GeometryBounds) Union(other *GeometryBounds) *GeometryBounds {
	if b == nil {
		return other
	}
	if other == nil {
		return b
	}
	return NewGeometryBounds(
		math.Min(b.MinX, other.MinX),
		math.Min(b.MinY, other.MinY),
		math.Max(b.MaxX, other.MaxX),
		math.Max(b.MaxY, other.MaxY),
	)
}

// Contains reports whether the point (x, y) lies inside the bounds.
func (b *GeometryBounds) Contains(x, y float64) bool {
	if b == nil {
		return false
	}
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Frame is the nominal coordinate frame a vector document declares,
// typically from width/height attributes or a viewBox. The declared
// frame may exceed the actual inked content.
type Frame struct {
	Width  float64
	Height float64
}

// IsZero reports whether no frame was declared.
func (f Frame) IsZero() bool {
	return f.Width == 0 && f.Height == 0
}

// Exceeds reports whether the frame is larger than the given size in
// either axis.
func (f Frame) Exceeds(limit float64) bool {
	return f.Width > limit || f.Height > limit
}
