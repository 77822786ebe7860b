package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/jung-kurt/gofpdf"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

func init() {
	render.Register("pdf", func(w, h int, dpi float64) (render.Canvas, error) {
		return New(w, h, dpi)
	})
}

// Canvas writes drawing calls onto one PDF page.
// The Canvas is not safe for concurrent use.
type Canvas struct {
	render.Base

	pdf    *gofpdf.Fpdf
	k      float64 // points per device pixel
	images int

	warnOnce sync.Once
}

var _ render.Canvas = (*Canvas)(nil)

// New creates a blank single-page document of width x height device pixels.
func New(width, height int, dpi float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pdf: invalid size %dx%d", width, height)
	}
	c := &Canvas{Base: render.Base{Width: float64(width), Height: float64(height), Resolution: dpi}}
	c.k = 72 / c.DPI()

	c.pdf = gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width) * c.k, Ht: float64(height) * c.k},
	})
	c.pdf.SetMargins(0, 0, 0)
	c.pdf.SetAutoPageBreak(false, 0)
	c.pdf.AddPage()
	if err := c.pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: new document: %w", err)
	}
	return c, nil
}

// Encode implements render.Canvas.
func (c *Canvas) Encode(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

// DrawPath implements render.Renderer.
func (c *Canvas) DrawPath(gc *render.GC, p *zoomplot.Path, tr zoomplot.Matrix, fill *zoomplot.RGBA) error {
	if p.IsEmpty() {
		return nil
	}
	// Device pixels to page points.
	dp := p.Transform(tr.Then(zoomplot.Scale(c.k, c.k)))

	end := c.clip(gc)
	defer end()

	if fill != nil {
		col := gc.Apply(*fill).Color()
		c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		c.pdf.SetAlpha(float64(col.A)/255, "Normal")
		c.emit(dp)
		c.pdf.DrawPath("F")
	}
	if gc.LineWidth > 0 {
		col := gc.Apply(gc.Color).Color()
		c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
		c.pdf.SetAlpha(float64(col.A)/255, "Normal")
		c.pdf.SetLineWidth(gc.LineWidth)
		c.pdf.SetLineCapStyle(capStyle(gc.Cap))
		c.pdf.SetLineJoinStyle(joinStyle(gc.Join))
		dash := gc.Dash
		if dash == nil {
			dash = []float64{}
		}
		c.pdf.SetDashPattern(dash, 0)
		c.emit(dp)
		c.pdf.DrawPath("D")
	}
	return c.pdf.Error()
}

// DrawGouraudTriangles implements render.Renderer.
func (c *Canvas) DrawGouraudTriangles(gc *render.GC, tris []render.Triangle, tr zoomplot.Matrix) error {
	c.warnOnce.Do(func() {
		zoomplot.Logger().Warn("pdf: gouraud shading approximated by flat fills")
	})
	g := gc.Clone()
	g.LineWidth = 0
	for _, t := range tris {
		avg := t.C[0].Lerp(t.C[1], 0.5).Lerp(t.C[2], 1.0/3)
		p := zoomplot.PolygonPath(t.P[:])
		if err := c.DrawPath(g, p, tr, &avg); err != nil {
			return err
		}
	}
	return nil
}

// DrawImage implements render.Renderer.
func (c *Canvas) DrawImage(gc *render.GC, x, y float64, img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("pdf: encode image: %w", err)
	}
	c.images++
	name := fmt.Sprintf("img%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, &buf)

	end := c.clip(gc)
	defer end()

	c.pdf.SetAlpha(gc.EffectiveAlpha(), "Normal")
	mag := c.ImageMagnification()
	w := float64(img.Bounds().Dx()) / mag * c.k
	h := float64(img.Bounds().Dy()) / mag * c.k
	c.pdf.ImageOptions(name, x*c.k, y*c.k, w, h, false, opts, 0, "")
	return c.pdf.Error()
}

// DrawText implements render.Renderer. Text is written as filled outlines.
func (c *Canvas) DrawText(gc *render.GC, x, y float64, s string, f render.Font, angleDeg float64) error {
	p, err := render.TextPath(s, f, c.PointsToPixels(f.Size))
	if err != nil {
		return fmt.Errorf("pdf: text %q: %w", s, err)
	}
	g := gc.Clone()
	g.LineWidth = 0
	fill := gc.Color
	return c.DrawPath(g, p, c.TextPathTransform(x, y, f, angleDeg), &fill)
}

// clip applies the context clip, if any, and returns the function that
// removes it again.
func (c *Canvas) clip(gc *render.GC) func() {
	r, ok := gc.ClipRect()
	if !ok {
		return func() {}
	}
	c.pdf.ClipRect(r.Min.X*c.k, r.Min.Y*c.k, r.Width()*c.k, r.Height()*c.k, false)
	return c.pdf.ClipEnd
}

// emit writes p as the current PDF path.
func (c *Canvas) emit(p *zoomplot.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case zoomplot.MoveTo:
			c.pdf.MoveTo(e.Point.X, e.Point.Y)
		case zoomplot.LineTo:
			c.pdf.LineTo(e.Point.X, e.Point.Y)
		case zoomplot.QuadTo:
			c.pdf.CurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case zoomplot.CubicTo:
			c.pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case zoomplot.Close:
			c.pdf.ClosePath()
		}
	}
}

func capStyle(cp render.LineCap) string {
	switch cp {
	case render.LineCapRound:
		return "round"
	case render.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinStyle(j render.LineJoin) string {
	switch j {
	case render.LineJoinRound:
		return "round"
	case render.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
