package zoom

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/plot"
	"github.com/zoomplot/zoomplot/render"
	"github.com/zoomplot/zoomplot/text"
)

// Target supplies the device box replayed primitives are clipped to.
type Target interface {
	DeviceBox() zoomplot.Rect
}

// FixedTarget is a Target with a constant device box.
type FixedTarget zoomplot.Rect

// DeviceBox implements Target.
func (t FixedTarget) DeviceBox() zoomplot.Rect { return zoomplot.Rect(t) }

// ReplayRenderer wraps a renderer and moves every primitive through the
// transfer transform before delegating it, clipped to the target box.
// Primitives that miss the target are dropped. Device queries pass through
// unchanged.
type ReplayRenderer struct {
	base    render.Renderer
	mockInv zoomplot.Matrix
	core    zoomplot.Matrix
	target  Target
}

var _ render.Renderer = (*ReplayRenderer)(nil)

// NewReplayRenderer binds base to the space change mock → core.
// It fails with an error wrapping zoomplot.ErrSingularMatrix if mock cannot
// be inverted.
func NewReplayRenderer(base render.Renderer, mock, core zoomplot.Matrix, target Target) (*ReplayRenderer, error) {
	inv, err := mock.Invert()
	if err != nil {
		return nil, fmt.Errorf("zoom: invert mock transform %+v: %w", mock, err)
	}
	return &ReplayRenderer{base: base, mockInv: inv, core: core, target: target}, nil
}

// Transfer returns orig ∘ mock⁻¹ ∘ core: orig first, core last.
func (r *ReplayRenderer) Transfer(orig zoomplot.Matrix) zoomplot.Matrix {
	return orig.Then(r.mockInv).Then(r.core)
}

// DrawPath implements render.Renderer.
func (r *ReplayRenderer) DrawPath(gc *render.GC, p *zoomplot.Path, tr zoomplot.Matrix, fill *zoomplot.RGBA) error {
	if p.IsEmpty() {
		return nil
	}
	box := r.target.DeviceBox()
	tp := p.Transform(r.Transfer(tr))
	if !tp.IntersectsRect(box, fill != nil) {
		zoomplot.Logger().Debug("zoom: path outside target", "box", box)
		return nil
	}
	g := gc.Clone()
	g.SetClipRect(box)
	return r.base.DrawPath(g, tp, zoomplot.Identity(), fill)
}

// DrawGouraudTriangles implements render.Renderer.
func (r *ReplayRenderer) DrawGouraudTriangles(gc *render.GC, tris []render.Triangle, tr zoomplot.Matrix) error {
	if len(tris) == 0 {
		return nil
	}
	box := r.target.DeviceBox()
	transfer := r.Transfer(tr)
	moved := make([]render.Triangle, len(tris))
	hull := zoomplot.NewPath()
	for i, t := range tris {
		moved[i] = t.Transform(transfer)
		hull.Polygon(moved[i].P[:])
	}
	if !hull.IntersectsRect(box, true) {
		zoomplot.Logger().Debug("zoom: mesh outside target", "triangles", len(tris), "box", box)
		return nil
	}
	g := gc.Clone()
	g.SetClipRect(box)
	return r.base.DrawGouraudTriangles(g, moved, zoomplot.Identity())
}

// DrawText implements render.Renderer. The glyph run is converted to an
// outline at the device size and replayed as a filled path.
func (r *ReplayRenderer) DrawText(gc *render.GC, x, y float64, s string, f render.Font, angleDeg float64) error {
	if text.IsBlank(s) {
		return nil
	}
	sizePx := r.base.PointsToPixels(f.Size)
	if !(sizePx > 0) || math.IsInf(sizePx, 0) {
		zoomplot.Logger().Debug("zoom: text size not drawable", "text", s, "size", f.Size)
		return nil
	}
	p, err := render.TextPath(s, f, sizePx)
	if err != nil {
		return fmt.Errorf("zoom: text %q: %w", s, err)
	}
	g := gc.Clone()
	g.LineWidth = 0
	fill := gc.Color
	return r.DrawPath(g, p, r.base.TextPathTransform(x, y, f, angleDeg), &fill)
}

// imageLayout is where and how large a replayed image lands.
type imageLayout struct {
	clip          zoomplot.Rect   // device box of the output
	width, height int             // output pixels
	resample      zoomplot.Matrix // source pixel → output pixel
}

// layoutImage places an image issued at (x, y) with the given pixel size.
// The boolean is false when nothing of it reaches the target.
func (r *ReplayRenderer) layoutImage(x, y float64, w, h int) (imageLayout, bool) {
	mag := r.base.ImageMagnification()
	transfer := r.Transfer(zoomplot.Identity())

	placed := zoomplot.RectFromBounds(x, y, float64(w)/mag, float64(h)/mag)
	clip, ok := placed.Transform(transfer).Intersect(r.target.DeviceBox())
	if !ok {
		return imageLayout{}, false
	}
	ow := int(math.Ceil(clip.Width() * mag))
	oh := int(math.Ceil(clip.Height() * mag))
	if ow <= 0 || oh <= 0 {
		return imageLayout{}, false
	}

	resample := zoomplot.Scale(1/mag, 1/mag).
		Then(zoomplot.Translate(x, y)).
		Then(transfer).
		Then(zoomplot.Translate(-clip.Min.X, -clip.Min.Y)).
		Then(zoomplot.Scale(mag, mag))
	return imageLayout{clip: clip, width: ow, height: oh, resample: resample}, true
}

// DrawImage implements render.Renderer.
//
// The visible part of img is resampled with nearest-neighbour lookup into a
// new buffer. Color and alpha come from the same source pixel, so the result
// equals resampling each channel on its own.
func (r *ReplayRenderer) DrawImage(gc *render.GC, x, y float64, img *image.RGBA) error {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	l, ok := r.layoutImage(x, y, b.Dx(), b.Dy())
	if !ok {
		zoomplot.Logger().Debug("zoom: image outside target", "x", x, "y", y, "size", b.Size())
		return nil
	}

	out := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	s2d := zoomplot.Translate(float64(-b.Min.X), float64(-b.Min.Y)).Then(l.resample)
	xdraw.NearestNeighbor.Transform(out, plot.Aff3(s2d), img, b, xdraw.Src, nil)

	g := gc.Clone()
	g.SetClipRect(l.clip)
	return r.base.DrawImage(g, l.clip.Min.X, l.clip.Min.Y, out)
}

// CanvasSize implements render.Device.
func (r *ReplayRenderer) CanvasSize() (float64, float64) { return r.base.CanvasSize() }

// TextExtents implements render.Device.
func (r *ReplayRenderer) TextExtents(s string, f render.Font) (text.Extents, error) {
	return r.base.TextExtents(s, f)
}

// PointsToPixels implements render.Device.
func (r *ReplayRenderer) PointsToPixels(pt float64) float64 { return r.base.PointsToPixels(pt) }

// ImageMagnification implements render.Device.
func (r *ReplayRenderer) ImageMagnification() float64 { return r.base.ImageMagnification() }

// FlipY implements render.Device.
func (r *ReplayRenderer) FlipY() bool { return r.base.FlipY() }

// TextPathTransform implements render.Device.
func (r *ReplayRenderer) TextPathTransform(x, y float64, f render.Font, angleDeg float64) zoomplot.Matrix {
	return r.base.TextPathTransform(x, y, f, angleDeg)
}

// DPI implements render.Device.
func (r *ReplayRenderer) DPI() float64 { return r.base.DPI() }
