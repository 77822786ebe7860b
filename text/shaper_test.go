package text

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/goregular"
)

func TestShapeAdvancesLeftToRight(t *testing.T) {
	glyphs, err := Default().Shape("Hello", 16)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if len(glyphs) != 5 {
		t.Fatalf("Shape() returned %d glyphs, want 5", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v not right of glyph %d at x=%v", i, glyphs[i].X, i-1, glyphs[i-1].X)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	glyphs, err := Default().Shape("", 12)
	if err != nil || glyphs != nil {
		t.Errorf("Shape(\"\") = %v, %v; want nil, nil", glyphs, err)
	}
}

func TestShapeInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -3} {
		if _, err := Default().Shape("x", size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Shape(size=%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestPathBounds(t *testing.T) {
	const size = 20.0
	p, err := Default().Path("Tokyo", size)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	b, ok := p.ControlBounds()
	if !ok {
		t.Fatal("Path() returned an empty outline")
	}
	// y-down: capitals sit above the baseline.
	if b.Min.Y >= 0 {
		t.Errorf("outline top = %v, want above baseline", b.Min.Y)
	}
	if b.Min.Y < -size*1.5 {
		t.Errorf("outline top = %v, too tall for %vpx", b.Min.Y, size)
	}

	ext, err := Default().Extents("Tokyo", size)
	if err != nil {
		t.Fatalf("Extents() error = %v", err)
	}
	if b.Max.X > ext.Width+1 {
		t.Errorf("outline right = %v exceeds advance width %v", b.Max.X, ext.Width)
	}
}

func TestPathBlank(t *testing.T) {
	p, err := Default().Path("   ", 12)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if !p.IsEmpty() {
		t.Errorf("blank text produced %d path elements", len(p.Elements()))
	}
}

func TestExtentsScaleWithSize(t *testing.T) {
	small, err := Default().Extents("Berlin", 10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Default().Extents("Berlin", 20)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.Width / small.Width
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("width ratio = %v, want about 2", ratio)
	}
	if small.Height != small.Ascent+small.Descent {
		t.Errorf("Height = %v, want ascent+descent %v", small.Height, small.Ascent+small.Descent)
	}
}

func TestBoldOutlineDiffers(t *testing.T) {
	r, err := Default().Path("I", 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DefaultBold().Path("I", 32)
	if err != nil {
		t.Fatal(err)
	}
	rb, ok := r.ControlBounds()
	if !ok {
		t.Fatal("regular outline is empty")
	}
	bb, ok := b.ControlBounds()
	if !ok {
		t.Fatal("bold outline is empty")
	}
	if rb == bb {
		t.Errorf("bold and regular outlines share bounds %+v", rb)
	}
}

func TestNewShaperEmpty(t *testing.T) {
	if _, err := NewShaper(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewShaper(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestRunDirection(t *testing.T) {
	tests := []struct {
		in   string
		want di.Direction
	}{
		{"abc", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"123", di.DirectionLTR},
	}
	for _, tt := range tests {
		if got := runDirection(tt.in); got != tt.want {
			t.Errorf("runDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := map[string]bool{"": true, "  \t\n": true, "a": false, " x ": false}
	for in, want := range tests {
		if got := IsBlank(in); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPathCached(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	first, err := s.Path("cache", 14)
	if err != nil {
		t.Fatal(err)
	}
	n := len(first.Elements())
	first.LineTo(0, 0)

	second, err := s.Path("cache", 14)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Elements()) != n {
		t.Errorf("cached outline has %d elements, want %d", len(second.Elements()), n)
	}
	if st := s.OutlineStats(); st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("stats = %+v, want one hit and one miss", st)
	}

	if _, err := s.Path("cache", -1); err == nil {
		t.Error("negative size succeeded")
	}
	if st := s.OutlineStats(); st.Len != 1 {
		t.Errorf("failed outline was cached: %+v", st)
	}
}
