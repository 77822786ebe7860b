package zoom

import (
	"fmt"
	"math"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/plot"
	"github.com/zoomplot/zoomplot/render"
)

// Viewport is an inset showing a magnified region of its parent Axes.
//
// The viewport reads the parent's artifacts at draw time and never owns or
// modifies them. Its own Axes holds the background, the frame and any
// artifacts added to the inset directly.
type Viewport struct {
	parent *plot.Axes
	axes   *plot.Axes

	zoom      float64
	target    zoomplot.Rect
	placement zoomplot.Rect
	space     Space

	zorder     float64
	hidden     bool
	cull       bool
	cullMargin float64
}

var _ plot.Artist = (*Viewport)(nil)

// New creates an inset of parent showing target (parent data coordinates)
// magnified zoomRatio times, drawn at placement. The viewport registers
// itself as a child of parent.
func New(parent *plot.Axes, zoomRatio float64, target, placement zoomplot.Rect, opts ...Option) (*Viewport, error) {
	if parent == nil {
		return nil, ErrNoParent
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Viewport{
		parent:     parent,
		space:      o.space,
		zorder:     o.zorder,
		cull:       o.cull,
		cullMargin: o.cullMargin,
	}
	if err := v.SetZoomRatio(zoomRatio); err != nil {
		return nil, err
	}
	if err := v.SetPlacement(placement); err != nil {
		return nil, err
	}

	v.axes = plot.NewAxesFunc(v.DeviceBox)
	v.axes.Frame = o.frame
	v.axes.Background = o.background
	if err := v.SetTarget(target); err != nil {
		return nil, err
	}

	parent.AddChild(v)
	zoomplot.Logger().Debug("zoom: viewport created",
		"zoom", zoomRatio, "target", target, "placement", placement, "space", o.space)
	return v, nil
}

// Parent returns the Axes being mirrored.
func (v *Viewport) Parent() *plot.Axes { return v.parent }

// Axes returns the inset's own Axes. Artifacts added to it are drawn before
// the replayed content.
func (v *Viewport) Axes() *plot.Axes { return v.axes }

// ZoomRatio returns the magnification used for size compensation.
func (v *Viewport) ZoomRatio() float64 { return v.zoom }

// SetZoomRatio changes the magnification.
func (v *Viewport) SetZoomRatio(z float64) error {
	if !(z > 0) || math.IsInf(z, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, z)
	}
	v.zoom = z
	return nil
}

// Target returns the magnified region in parent data coordinates.
func (v *Viewport) Target() zoomplot.Rect { return v.target }

// SetTarget changes the magnified region.
func (v *Viewport) SetTarget(r zoomplot.Rect) error {
	if err := v.axes.SetLimits(r); err != nil {
		return fmt.Errorf("zoom: target: %w", err)
	}
	v.target = r
	return nil
}

// Placement returns the placement rectangle and its space.
func (v *Viewport) Placement() (zoomplot.Rect, Space) { return v.placement, v.space }

// SetPlacement moves the inset, keeping the placement space.
func (v *Viewport) SetPlacement(r zoomplot.Rect) error {
	if r.IsEmpty() {
		return fmt.Errorf("zoom: placement %+v: %w", r, ErrDegenerateBox)
	}
	v.placement = r
	return nil
}

// DeviceBox resolves the placement through the parent's current transforms.
func (v *Viewport) DeviceBox() zoomplot.Rect {
	switch v.space {
	case SpaceAxes:
		return v.placement.Transform(v.parent.AxesTransform())
	case SpaceDevice:
		return v.placement
	default:
		return v.placement.Transform(v.parent.DataTransform())
	}
}

// ZOrder implements plot.Artist.
func (v *Viewport) ZOrder() float64 { return v.zorder }

// SetZOrder sets the draw priority.
func (v *Viewport) SetZOrder(z float64) { v.zorder = z }

// Visible implements plot.Artist.
func (v *Viewport) Visible() bool { return !v.hidden }

// SetVisible shows or hides the inset.
func (v *Viewport) SetVisible(on bool) { v.hidden = !on }

// Transform implements plot.Artist.
func (v *Viewport) Transform() zoomplot.Matrix { return v.axes.DataTransform() }

// Remove unregisters the viewport from its parent.
func (v *Viewport) Remove() { v.parent.RemoveChild(v) }

// passFor returns the pass an artifact is replayed in.
func (v *Viewport) passFor(art plot.Artist, pass plot.Pass) plot.Pass {
	scale := pass.Scale()
	if s, ok := art.(plot.Scalable); ok {
		scale *= math.Pow(v.zoom, -s.SizeExponent())
	}
	return plot.Pass{SizeScale: scale}
}

// gather returns the parent's artifacts to replay, in category order.
func (v *Viewport) gather() []plot.Artist {
	all := v.parent.Gather()
	arts := all[:0]
	for _, a := range all {
		if a == plot.Artist(v) || !a.Visible() {
			continue
		}
		arts = append(arts, a)
	}
	if v.cull {
		window := v.target.Expand(v.cullMargin*v.target.Width(), v.cullMargin*v.target.Height())
		arts = cull(arts, window)
	}
	return arts
}

// widenImageClips lets images draw their full extent and returns the
// function restoring the previous clip boxes.
func widenImageClips(arts []plot.Artist) func() {
	type saved struct {
		img      plot.ImageClipper
		box      zoomplot.Rect
		explicit bool
	}
	var restore []saved
	for _, a := range arts {
		img, ok := a.(plot.ImageClipper)
		if !ok {
			continue
		}
		box, explicit := img.ClipBox()
		restore = append(restore, saved{img, box, explicit})
		img.SetClipBox(img.WindowExtent(), true)
	}
	return func() {
		for _, s := range restore {
			s.img.SetClipBox(s.box, s.explicit)
		}
	}
}

// Draw implements plot.Artist. It draws the inset background and own
// artifacts, replays the parent's artifacts through a ReplayRenderer, and
// draws the frame last.
func (v *Viewport) Draw(r render.Renderer, pass plot.Pass) error {
	if !v.Visible() {
		return nil
	}
	box := v.DeviceBox()
	if box.IsEmpty() {
		return fmt.Errorf("zoom: device box %+v: %w", box, ErrDegenerateBox)
	}

	if err := v.axes.DrawContent(r, pass); err != nil {
		return err
	}

	arts := v.gather()
	restore := widenImageClips(arts)
	defer restore()

	plot.SortByZOrder(arts)

	rr, err := NewReplayRenderer(r, v.parent.DataTransform(), v.axes.DataTransform(), v)
	if err != nil {
		return fmt.Errorf("zoom: parent transform: %w", err)
	}
	for _, art := range arts {
		if err := art.Draw(rr, v.passFor(art, pass)); err != nil {
			return err
		}
	}
	zoomplot.Logger().Debug("zoom: viewport replayed", "artifacts", len(arts), "zoom", v.zoom, "box", box)

	return v.axes.DrawFrame(r)
}
