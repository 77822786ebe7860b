package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

func init() {
	render.Register("png", func(w, h int, dpi float64) (render.Canvas, error) {
		return New(w, h, dpi)
	})
}

// miterLimit matches the usual PostScript default.
const miterLimit = 4

// Canvas renders into an RGBA image.
// The Canvas is not safe for concurrent use.
type Canvas struct {
	render.Base

	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
}

var _ render.Canvas = (*Canvas)(nil)

// New creates a transparent canvas of width x height pixels.
func New(width, height int, dpi float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		Base:    render.Base{Width: float64(width), Height: float64(height), Resolution: dpi},
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(width, height, scanner),
		dasher:  rasterx.NewDasher(width, height, scanner),
	}, nil
}

// Image returns the backing image. It is live: later draws modify it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Encode implements render.Canvas by writing a PNG.
func (c *Canvas) Encode(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// DrawPath implements render.Renderer.
func (c *Canvas) DrawPath(gc *render.GC, p *zoomplot.Path, tr zoomplot.Matrix, fill *zoomplot.RGBA) error {
	if p.IsEmpty() {
		return nil
	}
	dp := p.Transform(tr)
	c.scanner.SetClip(c.clipRect(gc))

	if fill != nil {
		c.filler.Clear()
		c.filler.SetWinding(true)
		addPath(c.filler, dp)
		c.scanner.SetColor(rasterx.ApplyOpacity(fill.Color(), gc.EffectiveAlpha()))
		c.filler.Draw()
	}

	if gc.LineWidth > 0 {
		width := c.PointsToPixels(gc.LineWidth)
		var dash []float64
		for _, d := range gc.Dash {
			dash = append(dash, c.PointsToPixels(d))
		}
		c.dasher.Clear()
		c.dasher.SetStroke(
			toFixed(width), toFixed(miterLimit),
			capFunc(gc.Cap), capFunc(gc.Cap), rasterx.FlatGap,
			joinMode(gc.Join), dash, 0,
		)
		addPath(c.dasher, dp)
		c.scanner.SetColor(rasterx.ApplyOpacity(gc.Color.Color(), gc.EffectiveAlpha()))
		c.dasher.Draw()
	}
	return nil
}

// DrawImage implements render.Renderer.
func (c *Canvas) DrawImage(gc *render.GC, x, y float64, img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	origin := image.Pt(int(math.Round(x)), int(math.Round(y)))
	r := img.Bounds().Sub(img.Bounds().Min).Add(origin).Intersect(c.clipRect(gc))
	if r.Empty() {
		return nil
	}
	sp := img.Bounds().Min.Add(r.Min.Sub(origin))

	if a := gc.EffectiveAlpha(); a < 1 {
		mask := image.NewUniform(color.Alpha{A: uint8(math.Round(a * 255))})
		xdraw.DrawMask(c.img, r, img, sp, mask, image.Point{}, xdraw.Over)
		return nil
	}
	xdraw.Draw(c.img, r, img, sp, xdraw.Over)
	return nil
}

// DrawText implements render.Renderer. Glyphs are filled as outlines.
func (c *Canvas) DrawText(gc *render.GC, x, y float64, s string, f render.Font, angleDeg float64) error {
	p, err := render.TextPath(s, f, c.PointsToPixels(f.Size))
	if err != nil {
		return fmt.Errorf("raster: text %q: %w", s, err)
	}
	g := gc.Clone()
	g.LineWidth = 0
	fill := gc.Color
	return c.DrawPath(g, p, c.TextPathTransform(x, y, f, angleDeg), &fill)
}

// clipRect returns the pixel rectangle drawing is restricted to.
func (c *Canvas) clipRect(gc *render.GC) image.Rectangle {
	bounds := c.img.Bounds()
	r, ok := gc.ClipRect()
	if !ok {
		return bounds
	}
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	).Intersect(bounds)
}

// addPath feeds p to a rasterx adder.
func addPath(a rasterx.Adder, p *zoomplot.Path) {
	var start zoomplot.Point
	open := false
	begin := func(pt zoomplot.Point) {
		if open {
			a.Stop(false)
		}
		a.Start(toFixedPoint(pt))
		start = pt
		open = true
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case zoomplot.MoveTo:
			begin(e.Point)
		case zoomplot.LineTo:
			if !open {
				begin(start)
			}
			a.Line(toFixedPoint(e.Point))
		case zoomplot.QuadTo:
			if !open {
				begin(start)
			}
			a.QuadBezier(toFixedPoint(e.Control), toFixedPoint(e.Point))
		case zoomplot.CubicTo:
			if !open {
				begin(start)
			}
			a.CubeBezier(toFixedPoint(e.Control1), toFixedPoint(e.Control2), toFixedPoint(e.Point))
		case zoomplot.Close:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func capFunc(c render.LineCap) rasterx.CapFunc {
	switch c {
	case render.LineCapRound:
		return rasterx.RoundCap
	case render.LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j render.LineJoin) rasterx.JoinMode {
	switch j {
	case render.LineJoinRound:
		return rasterx.Round
	case render.LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func toFixedPoint(p zoomplot.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}
