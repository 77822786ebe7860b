package zoom

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

func newRecorder() *render.Recorder {
	return render.NewRecorder(200, 200, 72)
}

func firstPoint(t *testing.T, p *zoomplot.Path) zoomplot.Point {
	t.Helper()
	for _, e := range p.Elements() {
		if m, ok := e.(zoomplot.MoveTo); ok {
			return m.Point
		}
	}
	t.Fatal("path has no MoveTo")
	return zoomplot.Point{}
}

func randomInvertible(rng *rand.Rand) zoomplot.Matrix {
	for {
		m := zoomplot.Matrix{
			A: rng.Float64()*4 - 2, B: rng.Float64()*4 - 2, C: rng.Float64()*200 - 100,
			D: rng.Float64()*4 - 2, E: rng.Float64()*4 - 2, F: rng.Float64()*200 - 100,
		}
		if math.Abs(m.Determinant()) > 0.1 {
			return m
		}
	}
}

func TestTransferComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		orig := randomInvertible(rng)
		mock := randomInvertible(rng)
		core := randomInvertible(rng)
		rr, err := NewReplayRenderer(newRecorder(), mock, core, FixedTarget{})
		if err != nil {
			t.Fatalf("NewReplayRenderer: %v", err)
		}
		inv, _ := mock.Invert()
		p := zoomplot.Pt(rng.Float64()*100, rng.Float64()*100)
		want := core.TransformPoint(inv.TransformPoint(orig.TransformPoint(p)))
		got := rr.Transfer(orig).TransformPoint(p)
		if got.Distance(want) > 1e-6*math.Max(1, want.Distance(zoomplot.Point{})) {
			t.Fatalf("iteration %d: Transfer(%v) = %v, want %v", i, p, got, want)
		}
	}
}

func TestNewReplayRendererSingular(t *testing.T) {
	_, err := NewReplayRenderer(newRecorder(), zoomplot.Scale(0, 1), zoomplot.Identity(), FixedTarget{})
	if !errors.Is(err, zoomplot.ErrSingularMatrix) {
		t.Errorf("err = %v, want ErrSingularMatrix", err)
	}
}

func TestReplayRoundTrip(t *testing.T) {
	m := zoomplot.Translate(10, 20).Multiply(zoomplot.Scale(3, -2))
	rec := newRecorder()
	rr, err := NewReplayRenderer(rec, m, m, FixedTarget(zoomplot.NewRect(-1e6, -1e6, 1e6, 1e6)))
	if err != nil {
		t.Fatal(err)
	}
	p := zoomplot.NewPath()
	p.Polyline([]zoomplot.Point{{X: 1, Y: 1}, {X: 5, Y: 2}, {X: 7, Y: 9}})
	tr := zoomplot.Translate(4, 4).Multiply(zoomplot.Scale(10, 10))
	if err := rr.DrawPath(render.NewGC(), p, tr, nil); err != nil {
		t.Fatal(err)
	}
	calls := rec.CallsOf(render.OpPath)
	if len(calls) != 1 {
		t.Fatalf("got %d path calls, want 1", len(calls))
	}
	if !calls[0].Transform.IsIdentity() {
		t.Errorf("delegated transform = %+v, want identity", calls[0].Transform)
	}
	want := p.Transform(tr).Elements()
	got := calls[0].Path.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		var gp, wp zoomplot.Point
		switch e := got[i].(type) {
		case zoomplot.MoveTo:
			gp = e.Point
		case zoomplot.LineTo:
			gp = e.Point
		}
		switch e := want[i].(type) {
		case zoomplot.MoveTo:
			wp = e.Point
		case zoomplot.LineTo:
			wp = e.Point
		}
		if gp.Distance(wp) > 1e-9 {
			t.Errorf("element %d = %v, want %v", i, gp, wp)
		}
	}
}

func TestReplayClipping(t *testing.T) {
	box := zoomplot.NewRect(50, 50, 100, 100)
	tests := []struct {
		name  string
		pts   []zoomplot.Point
		fill  bool
		drawn bool
	}{
		{"inside", []zoomplot.Point{{X: 60, Y: 60}, {X: 70, Y: 70}}, false, true},
		{"crossing", []zoomplot.Point{{X: 0, Y: 75}, {X: 200, Y: 75}}, false, true},
		{"outside", []zoomplot.Point{{X: 0, Y: 0}, {X: 40, Y: 10}}, false, false},
		{"outside diagonal", []zoomplot.Point{{X: 0, Y: 40}, {X: 40, Y: 0}}, false, false},
		{"filled cover", []zoomplot.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 300}, {X: 0, Y: 300}}, true, true},
		{"stroked cover", []zoomplot.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 300}, {X: 0, Y: 300}}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			rr, err := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Identity(), FixedTarget(box))
			if err != nil {
				t.Fatal(err)
			}
			p := zoomplot.NewPath()
			p.Polyline(tt.pts)
			var fill *zoomplot.RGBA
			if tt.fill {
				c := zoomplot.Red
				fill = &c
			}
			if err := rr.DrawPath(render.NewGC(), p, zoomplot.Identity(), fill); err != nil {
				t.Fatal(err)
			}
			calls := rec.Calls()
			if got := len(calls) == 1; got != tt.drawn {
				t.Fatalf("drawn = %v (%d calls), want %v", got, len(calls), tt.drawn)
			}
			if !tt.drawn {
				return
			}
			clip, ok := calls[0].GC.ClipRect()
			if !ok || clip != box {
				t.Errorf("clip = %+v, %v; want %+v", clip, ok, box)
			}
		})
	}
}

func TestReplayDoesNotModifyCallerGC(t *testing.T) {
	rec := newRecorder()
	box := zoomplot.NewRect(0, 0, 10, 10)
	rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Identity(), FixedTarget(box))
	gc := render.NewGC()
	gc.SetClipRect(zoomplot.NewRect(0, 0, 500, 500))
	p := zoomplot.NewPath()
	p.Polyline([]zoomplot.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	if err := rr.DrawPath(gc, p, zoomplot.Identity(), nil); err != nil {
		t.Fatal(err)
	}
	if clip, _ := gc.ClipRect(); clip != zoomplot.NewRect(0, 0, 500, 500) {
		t.Errorf("caller clip changed to %+v", clip)
	}
}

func TestReplaySkips(t *testing.T) {
	box := zoomplot.NewRect(0, 0, 100, 100)
	tests := []struct {
		name string
		draw func(rr *ReplayRenderer) error
	}{
		{"nil path", func(rr *ReplayRenderer) error {
			return rr.DrawPath(render.NewGC(), nil, zoomplot.Identity(), nil)
		}},
		{"empty path", func(rr *ReplayRenderer) error {
			return rr.DrawPath(render.NewGC(), zoomplot.NewPath(), zoomplot.Identity(), nil)
		}},
		{"empty text", func(rr *ReplayRenderer) error {
			return rr.DrawText(render.NewGC(), 10, 10, "", render.Font{Size: 10}, 0)
		}},
		{"blank text", func(rr *ReplayRenderer) error {
			return rr.DrawText(render.NewGC(), 10, 10, " \t\n", render.Font{Size: 10}, 0)
		}},
		{"zero font size", func(rr *ReplayRenderer) error {
			return rr.DrawText(render.NewGC(), 500, 500, "abc", render.Font{Size: 0}, 0)
		}},
		{"negative font size", func(rr *ReplayRenderer) error {
			return rr.DrawText(render.NewGC(), 10, 10, "abc", render.Font{Size: -4}, 0)
		}},
		{"infinite font size", func(rr *ReplayRenderer) error {
			return rr.DrawText(render.NewGC(), 10, 10, "abc", render.Font{Size: math.Inf(1)}, 0)
		}},
		{"no triangles", func(rr *ReplayRenderer) error {
			return rr.DrawGouraudTriangles(render.NewGC(), nil, zoomplot.Identity())
		}},
		{"triangles outside", func(rr *ReplayRenderer) error {
			tri := render.Triangle{P: [3]zoomplot.Point{{X: 200, Y: 200}, {X: 300, Y: 200}, {X: 250, Y: 300}}}
			return rr.DrawGouraudTriangles(render.NewGC(), []render.Triangle{tri}, zoomplot.Identity())
		}},
		{"nil image", func(rr *ReplayRenderer) error {
			return rr.DrawImage(render.NewGC(), 0, 0, nil)
		}},
		{"image outside", func(rr *ReplayRenderer) error {
			return rr.DrawImage(render.NewGC(), 150, 150, image.NewRGBA(image.Rect(0, 0, 10, 10)))
		}},
		{"image touching edge", func(rr *ReplayRenderer) error {
			return rr.DrawImage(render.NewGC(), 100, 0, image.NewRGBA(image.Rect(0, 0, 10, 10)))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			rr, err := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Identity(), FixedTarget(box))
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.draw(rr); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if n := len(rec.Calls()); n != 0 {
				t.Errorf("got %d calls, want none", n)
			}
		})
	}
}

func TestReplayText(t *testing.T) {
	rec := newRecorder()
	box := zoomplot.NewRect(0, 0, 200, 200)
	rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Scale(2, 2), FixedTarget(box))
	gc := render.NewGC()
	gc.Color = zoomplot.Red
	if err := rr.DrawText(gc, 20, 40, "Hi", render.Font{Size: 12}, 0); err != nil {
		t.Fatal(err)
	}
	calls := rec.CallsOf(render.OpPath)
	if len(calls) != 1 {
		t.Fatalf("got %d path calls, want 1", len(calls))
	}
	c := calls[0]
	if c.Fill == nil || *c.Fill != zoomplot.Red {
		t.Errorf("fill = %v, want red", c.Fill)
	}
	if c.GC.LineWidth != 0 {
		t.Errorf("line width = %v, want 0", c.GC.LineWidth)
	}
	b, ok := c.Path.ControlBounds()
	if !ok {
		t.Fatal("empty glyph path")
	}
	// The baseline at y=40 lands at y=80; glyphs sit above it.
	if b.Max.Y > 82 || b.Min.Y > 80 || b.Min.X < 38 {
		t.Errorf("glyph bounds %+v not near the scaled anchor (40, 80)", b)
	}
	if len(rec.CallsOf(render.OpText)) != 0 {
		t.Error("text reached the base as text, want outlines")
	}
}

func TestReplayGouraud(t *testing.T) {
	rec := newRecorder()
	box := zoomplot.NewRect(0, 0, 100, 100)
	rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Scale(2, 2), FixedTarget(box))
	tri := render.Triangle{
		P: [3]zoomplot.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 10, Y: 20}},
		C: [3]zoomplot.RGBA{zoomplot.Red, zoomplot.Green, zoomplot.Blue},
	}
	if err := rr.DrawGouraudTriangles(render.NewGC(), []render.Triangle{tri}, zoomplot.Identity()); err != nil {
		t.Fatal(err)
	}
	calls := rec.CallsOf(render.OpGouraud)
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
	got := calls[0].Triangles[0]
	want := [3]zoomplot.Point{{X: 20, Y: 20}, {X: 40, Y: 20}, {X: 20, Y: 40}}
	if got.P != want {
		t.Errorf("vertices = %v, want %v", got.P, want)
	}
	if got.C != tri.C {
		t.Errorf("colors changed: %v", got.C)
	}
	if clip, ok := calls[0].GC.ClipRect(); !ok || clip != box {
		t.Errorf("clip = %+v, want %+v", clip, box)
	}
}

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestReplayImageBounds(t *testing.T) {
	rec := newRecorder()
	box := zoomplot.NewRect(50, 50, 200, 200)
	rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Identity(), FixedTarget(box))
	src := gradientImage(100, 100)
	if err := rr.DrawImage(render.NewGC(), 0, 0, src); err != nil {
		t.Fatal(err)
	}
	calls := rec.CallsOf(render.OpImage)
	if len(calls) != 1 {
		t.Fatalf("got %d image calls, want 1", len(calls))
	}
	c := calls[0]
	if c.X != 50 || c.Y != 50 {
		t.Errorf("placed at (%v, %v), want (50, 50)", c.X, c.Y)
	}
	if got := c.Image.Bounds().Size(); got != image.Pt(50, 50) {
		t.Errorf("output size = %v, want (50, 50)", got)
	}
	if got, want := c.Image.RGBAAt(0, 0), src.RGBAAt(50, 50); got != want {
		t.Errorf("out(0,0) = %v, want src(50,50) = %v", got, want)
	}
	if got, want := c.Image.RGBAAt(49, 49), src.RGBAAt(99, 99); got != want {
		t.Errorf("out(49,49) = %v, want src(99,99) = %v", got, want)
	}
	if clip, ok := c.GC.ClipRect(); !ok || clip != zoomplot.NewRect(50, 50, 100, 100) {
		t.Errorf("clip = %+v, want overlap", clip)
	}
}

func TestReplayImageZoomed(t *testing.T) {
	tests := []struct {
		name       string
		mag        float64
		wantW      int
		wantOrigin zoomplot.Point
	}{
		{"magnification 1", 1, 40, zoomplot.Pt(10, 10)},
		{"magnification 2", 2, 80, zoomplot.Pt(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			rec.Magnification = tt.mag
			box := zoomplot.NewRect(10, 10, 50, 50)
			// Zoom 2 around the origin; the image lands on (0,0)-(40,40) device,
			// cropped to the box.
			rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Scale(2, 2), FixedTarget(box))
			n := int(20 * tt.mag)
			if err := rr.DrawImage(render.NewGC(), 0, 0, gradientImage(n, n)); err != nil {
				t.Fatal(err)
			}
			calls := rec.CallsOf(render.OpImage)
			if len(calls) != 1 {
				t.Fatalf("got %d image calls, want 1", len(calls))
			}
			c := calls[0]
			if got := c.Image.Bounds().Dx(); got != int(30*tt.mag) {
				t.Errorf("width = %d, want %d", got, int(30*tt.mag))
			}
			if c.X != tt.wantOrigin.X || c.Y != tt.wantOrigin.Y {
				t.Errorf("origin = (%v, %v), want %v", c.X, c.Y, tt.wantOrigin)
			}
		})
	}
}

func TestReplayErrorsPropagate(t *testing.T) {
	sentinel := errors.New("backend down")
	base := &failingRenderer{Recorder: newRecorder(), err: sentinel}
	rr, _ := NewReplayRenderer(base, zoomplot.Identity(), zoomplot.Identity(), FixedTarget(zoomplot.NewRect(0, 0, 100, 100)))
	p := zoomplot.NewPath()
	p.Polyline([]zoomplot.Point{{X: 1, Y: 1}, {X: 5, Y: 5}})
	if err := rr.DrawPath(render.NewGC(), p, zoomplot.Identity(), nil); err != sentinel {
		t.Errorf("err = %v, want the base error unchanged", err)
	}
}

func TestReplayDevicePassthrough(t *testing.T) {
	rec := render.NewRecorder(300, 150, 144)
	rec.Magnification = 2
	rr, _ := NewReplayRenderer(rec, zoomplot.Identity(), zoomplot.Scale(3, 3), FixedTarget{})
	if w, h := rr.CanvasSize(); w != 300 || h != 150 {
		t.Errorf("CanvasSize = %v, %v", w, h)
	}
	if got := rr.PointsToPixels(10); got != 20 {
		t.Errorf("PointsToPixels(10) = %v, want 20", got)
	}
	if got := rr.ImageMagnification(); got != 2 {
		t.Errorf("ImageMagnification = %v, want 2", got)
	}
	if got := rr.DPI(); got != 144 {
		t.Errorf("DPI = %v, want 144", got)
	}
	if !rr.FlipY() {
		t.Error("FlipY = false")
	}
}

// failingRenderer fails every path draw.
type failingRenderer struct {
	*render.Recorder
	err error
}

func (f *failingRenderer) DrawPath(*render.GC, *zoomplot.Path, zoomplot.Matrix, *zoomplot.RGBA) error {
	return f.err
}
