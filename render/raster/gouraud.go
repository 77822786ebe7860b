package raster

import (
	"image"
	"math"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// DrawGouraudTriangles implements render.Renderer.
// Colors are interpolated with barycentric weights at each pixel center.
func (c *Canvas) DrawGouraudTriangles(gc *render.GC, tris []render.Triangle, tr zoomplot.Matrix) error {
	clip := c.clipRect(gc)
	alpha := gc.EffectiveAlpha()
	for _, t := range tris {
		c.shadeTriangle(t.Transform(tr), clip, alpha)
	}
	return nil
}

func (c *Canvas) shadeTriangle(t render.Triangle, clip image.Rectangle, alpha float64) {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]
	area := p1.Sub(p0).Cross(p2.Sub(p0))
	if area == 0 || math.IsNaN(area) {
		return
	}

	bbox := image.Rect(
		int(math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X)))),
		int(math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y)))),
		int(math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X)))),
		int(math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y)))),
	).Intersect(clip)

	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			pt := zoomplot.Pt(float64(x)+0.5, float64(y)+0.5)
			w0 := p2.Sub(p1).Cross(pt.Sub(p1)) / area
			w1 := p0.Sub(p2).Cross(pt.Sub(p2)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			col := zoomplot.RGBA{
				R: w0*t.C[0].R + w1*t.C[1].R + w2*t.C[2].R,
				G: w0*t.C[0].G + w1*t.C[1].G + w2*t.C[2].G,
				B: w0*t.C[0].B + w1*t.C[1].B + w2*t.C[2].B,
				A: (w0*t.C[0].A + w1*t.C[1].A + w2*t.C[2].A) * alpha,
			}
			c.blend(x, y, col)
		}
	}
}

// blend composites a straight-alpha color over the pixel at (x, y).
func (c *Canvas) blend(x, y int, col zoomplot.RGBA) {
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]
	a := unit(col.A)
	inv := 1 - a
	pix[0] = uint8(math.Round(unit(col.R)*a*255 + float64(pix[0])*inv))
	pix[1] = uint8(math.Round(unit(col.G)*a*255 + float64(pix[1])*inv))
	pix[2] = uint8(math.Round(unit(col.B)*a*255 + float64(pix[2])*inv))
	pix[3] = uint8(math.Round(a*255 + float64(pix[3])*inv))
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
