package zoomplot

import "math"

// Rect represents an axis-aligned rectangle.
// Min holds the smallest coordinates and Max the largest, whatever the
// orientation of the space the rectangle lives in.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two corners.
// The corners are normalized so Min <= Max.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// RectFromBounds creates a rectangle from an origin and a size.
func RectFromBounds(x, y, w, h float64) Rect {
	return NewRect(x, y, x+w, y+h)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// Contains returns true if the point is inside the rectangle.
// Points on the boundary are inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and other share at least one point.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersect returns the overlap of r and other.
// The boolean is false when the overlap has no area.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	result := Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
	if result.IsEmpty() {
		return Rect{}, false
	}
	return result, true
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Expand returns r grown by dx on the left and right and dy on the top and
// bottom. Negative values shrink it.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - dx, Y: r.Min.Y - dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// Corners returns the four corners of r.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Transform returns the bounding box of r after applying m.
// For rotations and shears the result is larger than the mapped shape.
func (r Rect) Transform(m Matrix) Rect {
	corners := r.Corners()
	out := Rect{Min: m.TransformPoint(corners[0]), Max: m.TransformPoint(corners[0])}
	for _, c := range corners[1:] {
		out = expandBBox(out, m.TransformPoint(c))
	}
	return out
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}
