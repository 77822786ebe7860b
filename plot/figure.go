package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Figure is the top-level container, sized in inches.
type Figure struct {
	Width, Height float64 // inches
	DPI           float64
	Background    zoomplot.RGBA

	axes []*Axes
}

// NewFigure creates a white figure.
func NewFigure(width, height, dpi float64) *Figure {
	return &Figure{Width: width, Height: height, DPI: dpi, Background: zoomplot.White}
}

// PixelSize returns the figure size in device pixels.
func (f *Figure) PixelSize() (int, int) {
	return int(math.Round(f.Width * f.DPI)), int(math.Round(f.Height * f.DPI))
}

// AddAxes adds an Axes at rect, given in figure fractions with y up.
// The Axes follows the figure if its size changes.
func (f *Figure) AddAxes(rect zoomplot.Rect) *Axes {
	a := NewAxesFunc(func() zoomplot.Rect {
		w, h := f.PixelSize()
		canvas := zoomplot.NewRect(0, 0, float64(w), float64(h))
		return rect.Transform(zoomplot.BoxToBox(unitBox, canvas, true))
	})
	f.axes = append(f.axes, a)
	return a
}

// Axes returns the figure's axes, in insertion order.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// Draw renders the background and every Axes by z-order.
func (f *Figure) Draw(r render.Renderer) error {
	w, h := r.CanvasSize()
	gc := render.NewGC()
	gc.LineWidth = 0
	bg := f.Background
	if err := r.DrawPath(gc, boxPath(zoomplot.NewRect(0, 0, w, h)), zoomplot.Identity(), &bg); err != nil {
		return fmt.Errorf("plot: figure background: %w", err)
	}

	arts := make([]Artist, len(f.axes))
	for i, a := range f.axes {
		arts[i] = a
	}
	SortByZOrder(arts)
	for _, a := range arts {
		if err := a.Draw(r, Pass{}); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the figure with the named backend and encodes it to w.
func (f *Figure) Render(backend string, w io.Writer) error {
	pw, ph := f.PixelSize()
	c, err := render.New(backend, pw, ph, f.DPI)
	if err != nil {
		return err
	}
	if err := f.Draw(c); err != nil {
		return err
	}
	zoomplot.Logger().Info("plot: figure rendered", "backend", backend, "width", pw, "height", ph)
	return c.Encode(w)
}
