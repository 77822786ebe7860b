package render

import (
	"image"
	"io"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/text"
)

// Device exposes the read-only properties of an output surface.
type Device interface {
	// CanvasSize returns the surface size in device pixels.
	CanvasSize() (width, height float64)

	// TextExtents measures s set in f on this device.
	TextExtents(s string, f Font) (text.Extents, error)

	// PointsToPixels converts a length in points (1/72 in) to device pixels.
	PointsToPixels(pt float64) float64

	// ImageMagnification is the ratio between image pixels handed to
	// DrawImage and device pixels. Vector backends may report more than 1.
	ImageMagnification() float64

	// FlipY reports whether device y grows downward.
	FlipY() bool

	// TextPathTransform places a glyph outline built at the origin so that
	// its baseline starts at (x, y), rotated angleDeg counterclockwise.
	TextPathTransform(x, y float64, f Font, angleDeg float64) zoomplot.Matrix

	// DPI is the number of device pixels per inch.
	DPI() float64
}

// Renderer draws primitives onto a device.
//
// Coordinates passed to DrawImage and DrawText are device pixels. DrawPath
// and DrawGouraudTriangles take geometry plus the transform that maps it to
// device pixels.
type Renderer interface {
	Device

	// DrawPath strokes p with gc and, if fill is non-nil, fills it first.
	DrawPath(gc *GC, p *zoomplot.Path, tr zoomplot.Matrix, fill *zoomplot.RGBA) error

	// DrawGouraudTriangles fills triangles, interpolating vertex colors.
	DrawGouraudTriangles(gc *GC, tris []Triangle, tr zoomplot.Matrix) error

	// DrawImage composites img with its top-left corner at (x, y).
	DrawImage(gc *GC, x, y float64, img *image.RGBA) error

	// DrawText draws s with its baseline starting at (x, y).
	DrawText(gc *GC, x, y float64, s string, f Font, angleDeg float64) error
}

// Canvas is a Renderer backed by an encodable output.
type Canvas interface {
	Renderer

	// Encode writes the finished drawing in the backend's format.
	Encode(w io.Writer) error
}

// Triangle is a triangle with one color per vertex.
type Triangle struct {
	P [3]zoomplot.Point
	C [3]zoomplot.RGBA
}

// Transform returns t with its vertices mapped through m.
func (t Triangle) Transform(m zoomplot.Matrix) Triangle {
	for i := range t.P {
		t.P[i] = m.TransformPoint(t.P[i])
	}
	return t
}

// TrianglePoints returns every vertex of tris in order.
func TrianglePoints(tris []Triangle) []zoomplot.Point {
	pts := make([]zoomplot.Point, 0, 3*len(tris))
	for _, t := range tris {
		pts = append(pts, t.P[:]...)
	}
	return pts
}
