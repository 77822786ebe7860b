package render

import (
	"math"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/text"
)

// Font selects a face and size for text primitives.
type Font struct {
	Family string  // informational; all families use the embedded Go fonts
	Size   float64 // points
	Bold   bool
}

// Shaper returns the shaper for f.
func (f Font) Shaper() *text.Shaper {
	if f.Bold {
		return text.DefaultBold()
	}
	return text.Default()
}

// Scaled returns f with its size multiplied by k.
func (f Font) Scaled(k float64) Font {
	f.Size *= k
	return f
}

// TextPath returns the outline of s in f at sizePx pixels, baseline at the
// origin, y-down.
func TextPath(s string, f Font, sizePx float64) (*zoomplot.Path, error) {
	return f.Shaper().Path(s, sizePx)
}

// Base implements Device for a fixed-size y-down surface.
// Backends embed it and add the drawing methods.
type Base struct {
	Width, Height float64
	Resolution    float64 // DPI
	Magnification float64 // image magnification; zero means 1
}

// CanvasSize implements Device.
func (b *Base) CanvasSize() (float64, float64) {
	return b.Width, b.Height
}

// DPI implements Device.
func (b *Base) DPI() float64 {
	if b.Resolution <= 0 {
		return 72
	}
	return b.Resolution
}

// PointsToPixels implements Device.
func (b *Base) PointsToPixels(pt float64) float64 {
	return pt * b.DPI() / 72
}

// ImageMagnification implements Device.
func (b *Base) ImageMagnification() float64 {
	if b.Magnification <= 0 {
		return 1
	}
	return b.Magnification
}

// FlipY implements Device.
func (b *Base) FlipY() bool {
	return true
}

// TextExtents implements Device.
func (b *Base) TextExtents(s string, f Font) (text.Extents, error) {
	return f.Shaper().Extents(s, b.PointsToPixels(f.Size))
}

// TextPathTransform implements Device.
func (b *Base) TextPathTransform(x, y float64, _ Font, angleDeg float64) zoomplot.Matrix {
	// Counterclockwise on screen is a negative angle in y-down space.
	return zoomplot.Rotate(-angleDeg * math.Pi / 180).Then(zoomplot.Translate(x, y))
}
