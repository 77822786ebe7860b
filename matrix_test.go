package zoomplot

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestThenAppliesReceiverFirst(t *testing.T) {
	m := Translate(10, 0).Then(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(22, 2)
	if got != want {
		t.Errorf("Translate.Then(Scale) maps (1,1) to %v, want %v", got, want)
	}

	// Multiply is the mirror image.
	if !m.ApproxEqual(Scale(2, 2).Multiply(Translate(10, 0)), 1e-12) {
		t.Errorf("Then and Multiply disagree: %+v", m)
	}
}

func TestBoxToBox(t *testing.T) {
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 200, 300, 400)

	tests := []struct {
		name  string
		flipY bool
		in    Point
		want  Point
	}{
		{"min corner", false, Pt(0, 0), Pt(100, 200)},
		{"max corner", false, Pt(10, 10), Pt(300, 400)},
		{"center", false, Pt(5, 5), Pt(200, 300)},
		{"flipped min", true, Pt(0, 0), Pt(100, 400)},
		{"flipped max", true, Pt(10, 10), Pt(300, 200)},
		{"flipped center", true, Pt(5, 5), Pt(200, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoxToBox(src, dst, tt.flipY).TransformPoint(tt.in)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("BoxToBox(flipY=%v) maps %v to %v, want %v", tt.flipY, tt.in, got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.25)},
		{"rotate", Rotate(math.Pi / 5)},
		{"shear", Shear(0.3, 0.1)},
		{"flip", BoxToBox(NewRect(-1, -1, 1, 1), NewRect(0, 0, 640, 480), true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Invert()
			if err != nil {
				t.Fatalf("Invert() error = %v", err)
			}
			if got := tt.m.Then(inv); !got.ApproxEqual(Identity(), 1e-9) {
				t.Errorf("m.Then(inv) = %+v, want identity", got)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero", Matrix{}},
		{"collapse x", Scale(0, 1)},
		{"collapse y", Scale(1, 0)},
		{"rank one", Matrix{A: 1, B: 2, D: 2, E: 4}},
		{"nan", Matrix{A: math.NaN(), E: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m.Invertible() {
				t.Error("Invertible() = true, want false")
			}
			if _, err := tt.m.Invert(); !errors.Is(err, ErrSingularMatrix) {
				t.Errorf("Invert() error = %v, want ErrSingularMatrix", err)
			}
		})
	}
}

func TestTransferComposition(t *testing.T) {
	// orig.Then(mock⁻¹).Then(core) with mock == core is orig itself.
	rng := rand.New(rand.NewSource(1))
	randMatrix := func() Matrix {
		for {
			m := Matrix{
				A: rng.Float64()*4 - 2, B: rng.Float64()*4 - 2, C: rng.Float64()*200 - 100,
				D: rng.Float64()*4 - 2, E: rng.Float64()*4 - 2, F: rng.Float64()*200 - 100,
			}
			if math.Abs(m.Determinant()) > 0.1 {
				return m
			}
		}
	}

	for i := 0; i < 200; i++ {
		orig, mock, core := randMatrix(), randMatrix(), randMatrix()
		mockInv, err := mock.Invert()
		if err != nil {
			t.Fatal(err)
		}
		transfer := orig.Then(mockInv).Then(core)

		p := Pt(rng.Float64()*100, rng.Float64()*100)
		want := core.TransformPoint(mockInv.TransformPoint(orig.TransformPoint(p)))
		if got := transfer.TransformPoint(p); got.Distance(want) > 1e-6 {
			t.Fatalf("iteration %d: transfer maps %v to %v, want %v", i, p, got, want)
		}

		if same := orig.Then(mockInv).Then(mock); !same.ApproxEqual(orig, 1e-6) {
			t.Fatalf("iteration %d: orig.Then(mock⁻¹).Then(mock) = %+v, want %+v", i, same, orig)
		}
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform", Scale(3, 3), 3},
		{"non-uniform", Scale(2, 5), 5},
		{"rotated", Scale(2, 2).Then(Rotate(math.Pi / 3)), 2},
		{"translate only", Translate(100, 100), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}
