package plot

import (
	"fmt"
	"sort"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Default z-orders per category.
const (
	ZOrderImage      = 0
	ZOrderPatch      = 1
	ZOrderCollection = 1
	ZOrderLine       = 2
	ZOrderText       = 3
)

// unitBox is the axes-fraction space.
var unitBox = zoomplot.NewRect(0, 0, 1, 1)

// Axes is a rectangular view onto a data region.
//
// The device box is fixed or computed by a locator at every query, so an
// Axes positioned relative to another one follows it between draws.
type Axes struct {
	box     zoomplot.Rect
	locator func() zoomplot.Rect
	limits  zoomplot.Rect

	collections []*PathCollection
	patches     []*Patch
	lines       []*Line2D
	texts       []*Text
	artists     []Artist
	images      []*Image
	children    []Artist

	Background *zoomplot.RGBA
	Frame      bool
	FrameColor zoomplot.RGBA
	FrameWidth float64 // points

	zorder float64
	hidden bool
}

// NewAxes creates an Axes occupying box in device pixels with data limits
// equal to the unit square.
func NewAxes(box zoomplot.Rect) *Axes {
	return &Axes{
		box:        box,
		limits:     unitBox,
		Frame:      true,
		FrameColor: zoomplot.Black,
		FrameWidth: 1,
	}
}

// NewAxesFunc creates an Axes whose device box is computed by locator.
func NewAxesFunc(locator func() zoomplot.Rect) *Axes {
	a := NewAxes(zoomplot.Rect{})
	a.locator = locator
	return a
}

// DeviceBox returns the Axes rectangle in device pixels.
func (a *Axes) DeviceBox() zoomplot.Rect {
	if a.locator != nil {
		return a.locator()
	}
	return a.box
}

// SetDeviceBox fixes the device rectangle and drops any locator.
func (a *Axes) SetDeviceBox(r zoomplot.Rect) {
	a.box = r
	a.locator = nil
}

// Limits returns the visible data region.
func (a *Axes) Limits() zoomplot.Rect {
	return a.limits
}

// SetLimits sets the visible data region.
func (a *Axes) SetLimits(r zoomplot.Rect) error {
	if r.IsEmpty() {
		return fmt.Errorf("plot: set limits %+v: %w", r, zoomplot.ErrDegenerateBox)
	}
	a.limits = r
	return nil
}

// DataTransform maps data coordinates to device pixels, y flipped.
func (a *Axes) DataTransform() zoomplot.Matrix {
	return zoomplot.BoxToBox(a.limits, a.DeviceBox(), true)
}

// AxesTransform maps axes fractions (0..1, y up) to device pixels.
func (a *Axes) AxesTransform() zoomplot.Matrix {
	return zoomplot.BoxToBox(unitBox, a.DeviceBox(), true)
}

// Transform implements Artist.
func (a *Axes) Transform() zoomplot.Matrix { return a.DataTransform() }

// ZOrder implements Artist.
func (a *Axes) ZOrder() float64 { return a.zorder }

// SetZOrder sets the draw priority among sibling axes.
func (a *Axes) SetZOrder(z float64) { a.zorder = z }

// Visible implements Artist.
func (a *Axes) Visible() bool { return !a.hidden }

// SetVisible shows or hides the Axes.
func (a *Axes) SetVisible(v bool) { a.hidden = !v }

// Collections returns the point collections, in insertion order.
func (a *Axes) Collections() []*PathCollection { return a.collections }

// Patches returns the patches, in insertion order.
func (a *Axes) Patches() []*Patch { return a.patches }

// Lines returns the lines, in insertion order.
func (a *Axes) Lines() []*Line2D { return a.lines }

// Texts returns the texts, in insertion order.
func (a *Axes) Texts() []*Text { return a.texts }

// Artists returns the generic artists, in insertion order.
func (a *Axes) Artists() []Artist { return a.artists }

// Images returns the images, in insertion order.
func (a *Axes) Images() []*Image { return a.images }

// Children returns the layout children added with AddChild.
func (a *Axes) Children() []Artist { return a.children }

// Plot adds a polyline through pts.
func (a *Axes) Plot(pts []zoomplot.Point, opts ...LineOption) *Line2D {
	l := NewLine2D(pts, opts...)
	l.attach(a)
	a.lines = append(a.lines, l)
	return l
}

// Scatter adds a point collection; sizes are marker areas in points².
func (a *Axes) Scatter(offsets []zoomplot.Point, sizes []float64, colors []zoomplot.RGBA) *PathCollection {
	c := NewPathCollection(offsets, sizes, colors)
	c.attach(a)
	a.collections = append(a.collections, c)
	return c
}

// AddPatch adds a filled or stroked shape.
func (a *Axes) AddPatch(p *Patch) *Patch {
	p.attach(a)
	a.patches = append(a.patches, p)
	return p
}

// AddText adds a label anchored at a data position.
func (a *Axes) AddText(t *Text) *Text {
	t.attach(a)
	a.texts = append(a.texts, t)
	return t
}

// AddImage adds a raster image.
func (a *Axes) AddImage(img *Image) *Image {
	img.attach(a)
	a.images = append(a.images, img)
	return img
}

// AddArtist adds any other artifact.
func (a *Axes) AddArtist(art Artist) Artist {
	if t, ok := art.(interface{ attach(*Axes) }); ok {
		t.attach(a)
	}
	a.artists = append(a.artists, art)
	return art
}

// AddChild registers a dependent drawable, such as an inset, for layout.
// Children draw with the Axes but are never part of its artifact lists.
func (a *Axes) AddChild(child Artist) {
	a.children = append(a.children, child)
}

// RemoveChild unregisters a child added with AddChild.
func (a *Axes) RemoveChild(child Artist) {
	for i, c := range a.children {
		if c == child {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return
		}
	}
}

// Gather returns every artifact in category order: collections, patches,
// lines, texts, generic artists, images.
func (a *Axes) Gather() []Artist {
	out := make([]Artist, 0, len(a.collections)+len(a.patches)+len(a.lines)+
		len(a.texts)+len(a.artists)+len(a.images))
	for _, c := range a.collections {
		out = append(out, c)
	}
	for _, p := range a.patches {
		out = append(out, p)
	}
	for _, l := range a.lines {
		out = append(out, l)
	}
	for _, t := range a.texts {
		out = append(out, t)
	}
	out = append(out, a.artists...)
	for _, img := range a.images {
		out = append(out, img)
	}
	return out
}

// SortByZOrder stable-sorts artists by z-order, lowest first.
func SortByZOrder(arts []Artist) {
	sort.SliceStable(arts, func(i, j int) bool {
		return arts[i].ZOrder() < arts[j].ZOrder()
	})
}

// Draw implements Artist: background, artifacts and children by z-order,
// then the frame.
func (a *Axes) Draw(r render.Renderer, pass Pass) error {
	if !a.Visible() {
		return nil
	}
	if err := a.DrawContent(r, pass); err != nil {
		return err
	}
	return a.DrawFrame(r)
}

// DrawContent draws the background, every visible artifact and every child,
// sorted by z-order.
func (a *Axes) DrawContent(r render.Renderer, pass Pass) error {
	if err := a.DrawBackground(r); err != nil {
		return err
	}

	arts := append(a.Gather(), a.children...)
	SortByZOrder(arts)
	for _, art := range arts {
		if !art.Visible() {
			continue
		}
		if err := art.Draw(r, pass); err != nil {
			return err
		}
	}
	zoomplot.Logger().Debug("plot: axes drawn", "artifacts", len(arts), "box", a.DeviceBox())
	return nil
}

// DrawBackground fills the device box if a background color is set.
func (a *Axes) DrawBackground(r render.Renderer) error {
	if a.Background == nil {
		return nil
	}
	gc := render.NewGC()
	gc.LineWidth = 0
	bg := *a.Background
	return r.DrawPath(gc, boxPath(a.DeviceBox()), zoomplot.Identity(), &bg)
}

// DrawFrame strokes the device box if the frame is enabled.
func (a *Axes) DrawFrame(r render.Renderer) error {
	if !a.Frame || a.FrameWidth <= 0 {
		return nil
	}
	gc := render.NewGC()
	gc.Color = a.FrameColor
	gc.LineWidth = a.FrameWidth
	return r.DrawPath(gc, boxPath(a.DeviceBox()), zoomplot.Identity(), nil)
}

func boxPath(r zoomplot.Rect) *zoomplot.Path {
	p := zoomplot.NewPath()
	p.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	return p
}
