package plot

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/akeil/planar"
)

func square() planar.Shape {
	return planar.NewShape("Square",
		planar.Pt(1, 1), planar.Pt(4, 1), planar.Pt(4, 4), planar.Pt(1, 4))
}

func TestFigureViewport(t *testing.T) {
	f := NewFigure("test")
	f.AddOriginal(square())
	f.AddTransformed(square().Translate(10, 0))

	x0, x1, y0, y1 := f.viewport()

	// equal spans on both axes
	if (x1 - x0) != (y1 - y0) {
		t.Errorf("axis spans differ: x %v, y %v", x1-x0, y1-y0)
	}

	// every point inside the window
	for _, s := range f.Shapes() {
		for _, p := range s.Points {
			if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
				t.Errorf("point %v outside viewport (%v..%v, %v..%v)", p, x0, x1, y0, y1)
			}
		}
	}
}

func TestTicDelta(t *testing.T) {
	cases := []struct {
		span float64
		want float64
	}{
		{10, 1},
		{80, 10},
		{3, 0.5},
		{0.5, 0.05},
		{0, 1},
	}

	for _, c := range cases {
		got := ticDelta(c.span)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ticDelta(%v) = %v, want %v", c.span, got, c.want)
		}
	}
}

func TestRing(t *testing.T) {
	// polygons are closed by repeating the first vertex
	pts := ring(square())
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %v", len(pts))
	}
	if pts[4].X != pts[0].X || pts[4].Y != pts[0].Y {
		t.Error("outline should end at its starting point")
	}

	// a segment is left open
	line := planar.NewShape("Line", planar.Pt(0, 0), planar.Pt(1, 1))
	if len(ring(line)) != 2 {
		t.Error("two point shapes must not be closed")
	}

	// single points pass through
	dot := planar.NewShape("P", planar.Pt(2, 3))
	if len(ring(dot)) != 1 {
		t.Error("single point shapes must not be closed")
	}
}

func TestFigurePNG(t *testing.T) {
	f := NewFigure("Rotation")
	f.AddOriginal(square())
	f.AddTransformed(square().Rotate(45))

	var buf bytes.Buffer
	err := f.WritePNG(&buf)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != f.Width || b.Dy() != f.Height {
		t.Errorf("unexpected image size %vx%v", b.Dx(), b.Dy())
	}
}

func TestFigureSVG(t *testing.T) {
	f := NewFigure("Reflection")
	f.AddOriginal(planar.NewShape("P", planar.Pt(2, 5)))

	var buf bytes.Buffer
	err := f.WriteSVG(&buf)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output does not look like SVG")
	}
}

func TestFigureEmpty(t *testing.T) {
	f := NewFigure("empty")

	var buf bytes.Buffer
	err := f.WritePNG(&buf)
	if err == nil {
		t.Fatal("expected an error for a figure without shapes")
	}
	if !planar.IsInvalidParameter(err) {
		t.Errorf("expected an invalid parameter error, got %v", err)
	}
}

func TestAddTrace(t *testing.T) {
	pl := planar.Pipeline{
		planar.TranslateStep(1, 0),
		planar.RotateStep(90),
	}
	trace, err := pl.Trace(square())
	if err != nil {
		t.Fatal(err)
	}

	f := NewFigure("trace")
	f.AddTrace(trace)

	if f.NumShapes() != 3 {
		t.Errorf("expected 3 shapes, got %v", f.NumShapes())
	}
}

func TestContactSheet(t *testing.T) {
	figures := make([]*Figure, 0, 3)
	for i := 0; i < 3; i++ {
		f := NewFigure("fig")
		f.AddOriginal(square())
		figures = append(figures, f)
	}

	var buf bytes.Buffer
	err := ContactSheet(figures, 2, &buf)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	// 2 columns and 2 rows
	wantW := 2*tileWidth + 3*tileGap
	wantH := 2*tileHeight + 3*tileGap
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("unexpected sheet size %vx%v, want %vx%v", b.Dx(), b.Dy(), wantW, wantH)
	}

	if err := ContactSheet(nil, 2, &buf); err == nil {
		t.Error("expected an error for an empty sheet")
	}
}
