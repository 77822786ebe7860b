package plot

import (
	"math"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// PathCollection is a set of circular markers, one per offset.
// Sizes and colors are broadcast when they have a single element.
type PathCollection struct {
	Base

	Offsets   []zoomplot.Point // data space
	Sizes     []float64        // marker areas in points²
	Colors    []zoomplot.RGBA
	EdgeColor zoomplot.RGBA
	EdgeWidth float64 // points; zero disables edges
}

// NewPathCollection creates a collection with default size 36pt² and blue
// markers where sizes or colors are empty.
func NewPathCollection(offsets []zoomplot.Point, sizes []float64, colors []zoomplot.RGBA) *PathCollection {
	if len(sizes) == 0 {
		sizes = []float64{36}
	}
	if len(colors) == 0 {
		colors = []zoomplot.RGBA{zoomplot.Blue}
	}
	c := &PathCollection{Offsets: offsets, Sizes: sizes, Colors: colors, EdgeColor: zoomplot.Black}
	c.zorder = ZOrderCollection
	return c
}

// SizeExponent implements Scalable. Sizes are areas.
func (c *PathCollection) SizeExponent() float64 { return 2 }

// SizesAt returns the marker areas used when drawing in pass.
func (c *PathCollection) SizesAt(pass Pass) []float64 {
	out := make([]float64, len(c.Sizes))
	for i, s := range c.Sizes {
		out[i] = s * pass.Scale()
	}
	return out
}

// DataExtent implements Extenter.
func (c *PathCollection) DataExtent() (zoomplot.Rect, bool) {
	return pointsExtent(c.Offsets)
}

// Draw implements Artist.
func (c *PathCollection) Draw(r render.Renderer, pass Pass) error {
	if len(c.Offsets) == 0 || len(c.Sizes) == 0 || len(c.Colors) == 0 {
		return nil
	}
	centers := c.Transform().TransformPoints(c.Offsets)
	sizes := c.SizesAt(pass)

	gc := c.newGC()
	gc.Color = c.EdgeColor
	gc.LineWidth = c.EdgeWidth
	for i, center := range centers {
		area := sizes[i%len(sizes)]
		if area <= 0 {
			continue
		}
		radius := r.PointsToPixels(math.Sqrt(area)) / 2
		fill := c.Colors[i%len(c.Colors)]
		p := circles([]zoomplot.Point{center}, radius)
		if err := r.DrawPath(gc, p, zoomplot.Identity(), &fill); err != nil {
			return err
		}
	}
	return nil
}
