package plot

import (
	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Patch is a shape in data space.
type Patch struct {
	Base

	Path      *zoomplot.Path
	Fill      *zoomplot.RGBA // nil for no fill
	EdgeColor zoomplot.RGBA
	EdgeWidth float64 // points
}

// NewPolygon creates a filled polygon patch.
func NewPolygon(pts []zoomplot.Point, fill zoomplot.RGBA) *Patch {
	p := &Patch{Path: zoomplot.PolygonPath(pts), Fill: &fill, EdgeColor: zoomplot.Black}
	p.zorder = ZOrderPatch
	return p
}

// NewRectangle creates a filled rectangle patch.
func NewRectangle(r zoomplot.Rect, fill zoomplot.RGBA) *Patch {
	c := r.Corners()
	return NewPolygon(c[:], fill)
}

// DataExtent implements Extenter.
func (p *Patch) DataExtent() (zoomplot.Rect, bool) {
	return p.Path.ControlBounds()
}

// Draw implements Artist.
func (p *Patch) Draw(r render.Renderer, _ Pass) error {
	if p.Path.IsEmpty() {
		return nil
	}
	gc := p.newGC()
	gc.Color = p.EdgeColor
	gc.LineWidth = p.EdgeWidth
	var fill *zoomplot.RGBA
	if p.Fill != nil {
		f := *p.Fill
		fill = &f
	}
	return r.DrawPath(gc, p.Path, p.Transform(), fill)
}
