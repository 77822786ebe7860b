package plot

import (
	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Pass carries per-draw parameters.
type Pass struct {
	// SizeScale multiplies point-based sizes (marker size, font size) raised
	// to the artifact's SizeExponent. The zero value means 1.
	SizeScale float64
}

// Scale returns SizeScale, treating zero or negative values as 1.
func (p Pass) Scale() float64 {
	if p.SizeScale <= 0 {
		return 1
	}
	return p.SizeScale
}

// Artist is anything an Axes can draw.
type Artist interface {
	Draw(r render.Renderer, pass Pass) error
	ZOrder() float64
	Visible() bool

	// Transform is the transform the artifact's stored geometry was issued
	// with, usually the owning Axes data transform.
	Transform() zoomplot.Matrix
}

// Scalable is implemented by artifacts with point-based sizes.
// SizeExponent tells how the size responds to a linear zoom: 1 for lengths
// such as marker diameter or font size, 2 for areas.
type Scalable interface {
	SizeExponent() float64
}

// Extenter is implemented by artifacts that know their data-space bounds.
type Extenter interface {
	DataExtent() (zoomplot.Rect, bool)
}

// ImageClipper is implemented by image artifacts that crop themselves before
// issuing pixels.
type ImageClipper interface {
	// ClipBox returns the explicit device clip box. When the boolean is
	// false the image clips to its Axes.
	ClipBox() (zoomplot.Rect, bool)
	SetClipBox(r zoomplot.Rect, explicit bool)

	// WindowExtent is the full device extent of the image, ignoring clips.
	WindowExtent() zoomplot.Rect
}

// Base holds the state shared by all built-in artifacts.
type Base struct {
	axes   *Axes
	zorder float64
	hidden bool
	noClip bool
	Label  string
}

// ZOrder returns the draw priority; higher draws later.
func (b *Base) ZOrder() float64 { return b.zorder }

// SetZOrder sets the draw priority.
func (b *Base) SetZOrder(z float64) { b.zorder = z }

// Visible reports whether the artifact draws.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible shows or hides the artifact.
func (b *Base) SetVisible(v bool) { b.hidden = !v }

// SetClipOn controls clipping to the Axes box. Clipping is on by default.
func (b *Base) SetClipOn(on bool) { b.noClip = !on }

// Axes returns the owning Axes, or nil before the artifact is added.
func (b *Base) Axes() *Axes { return b.axes }

// Transform returns the data transform of the owning Axes.
func (b *Base) Transform() zoomplot.Matrix {
	if b.axes == nil {
		return zoomplot.Identity()
	}
	return b.axes.DataTransform()
}

func (b *Base) attach(a *Axes) { b.axes = a }

// newGC returns a context clipped to the Axes box unless clipping is off.
func (b *Base) newGC() *render.GC {
	gc := render.NewGC()
	if !b.noClip && b.axes != nil {
		gc.SetClipRect(b.axes.DeviceBox())
	}
	return gc
}

// circles returns one closed circle per center, all in device pixels.
func circles(centers []zoomplot.Point, radius float64) *zoomplot.Path {
	p := zoomplot.NewPath()
	for _, c := range centers {
		p.Circle(c.X, c.Y, radius)
	}
	return p
}
