package planar

import (
	"bytes"
	"strings"
	"testing"
)

func TestShapeDerivedNames(t *testing.T) {
	s := NewShape("Square", Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))

	cases := []struct {
		got  Shape
		want string
	}{
		{s.Translate(1, 1), "Square translated"},
		{s.Scale(2, 2), "Square scaled"},
		{s.ScaleAbout(2, 2, Pt(1, 1)), "Square scaled"},
		{s.Rotate(45), "Square rotated"},
		{s.RotateAbout(45, Pt(1, 1)), "Square rotated"},
		{s.Shear(1, 0), "Square sheared"},
		{s.Transform(Identity()), "Square transformed"},
	}

	for _, c := range cases {
		if c.got.Name != c.want {
			t.Errorf("derived name is %q, want %q", c.got.Name, c.want)
		}
	}

	r, err := s.Reflect(AcrossX)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Square reflected" {
		t.Errorf("derived name is %q, want %q", r.Name, "Square reflected")
	}
}

func TestShapeImmutable(t *testing.T) {
	pts := []Point{Pt(1, 1), Pt(2, 2)}
	s := NewShape("Line", pts...)

	// mutating the input slice must not affect the shape
	pts[0] = Pt(9, 9)
	if s.Points[0] != Pt(1, 1) {
		t.Errorf("shape shares memory with constructor args: %v", s.Points[0])
	}

	// transforming must not affect the original
	moved := s.Translate(10, 10)
	if s.Points[0] != Pt(1, 1) {
		t.Errorf("transform modified the original shape: %v", s.Points[0])
	}
	if moved.Points[0] != Pt(11, 11) {
		t.Errorf("unexpected transformed point %v", moved.Points[0])
	}
}

func TestShapeTransforms(t *testing.T) {
	p := NewShape("P", Pt(2, 3))

	got := p.Translate(4, -2)
	if !pointNear(got.Points[0], Pt(6, 1)) {
		t.Errorf("translated point is %v, want (6, 1)", got.Points[0])
	}

	got = p.Shear(2, 0)
	if !pointNear(got.Points[0], Pt(8, 3)) {
		t.Errorf("sheared point is %v, want (8, 3)", got.Points[0])
	}

	got, err := p.Reflect(AcrossY)
	if err != nil {
		t.Fatal(err)
	}
	if !pointNear(got.Points[0], Pt(-2, 3)) {
		t.Errorf("reflected point is %v, want (-2, 3)", got.Points[0])
	}

	_, err = p.Reflect(Axis(42))
	if err == nil {
		t.Error("expected an error for an invalid axis")
	}
}

func TestShapeBounds(t *testing.T) {
	s := NewShape("Triangle", Pt(1, 1), Pt(3, 1), Pt(2, 4))
	b := s.Bounds()
	want := Rect{X: 1, Y: 1, Width: 2, Height: 3}
	if b != want {
		t.Errorf("bounds is %v, want %v", b, want)
	}

	if !pointNear(s.Centroid(), Pt(2, 2)) {
		t.Errorf("centroid is %v, want (2, 2)", s.Centroid())
	}
}

func TestShapeIsPoint(t *testing.T) {
	if !NewShape("P", Pt(1, 2)).IsPoint() {
		t.Error("single point shape not recognized")
	}
	if NewShape("L", Pt(1, 2), Pt(3, 4)).IsPoint() {
		t.Error("two point shape wrongly recognized as point")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := NewShape("Square", Pt(0, 0), Pt(1, 0)).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}

	if err := NewShape("", Pt(0, 0)).Validate(); err == nil {
		t.Error("expected an error for empty name")
	}

	if err := NewShape("Empty").Validate(); err == nil {
		t.Error("expected an error for shape without points")
	}
}

func TestShapeJSON(t *testing.T) {
	s := NewShape("Triangle", Pt(1, 1), Pt(3, 1), Pt(2, 4))

	var buf bytes.Buffer
	err := WriteShape(&buf, s)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ReadShape(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got.Name != "Triangle" {
		t.Errorf("unexpected name %q", got.Name)
	}
	if len(got.Points) != 3 {
		t.Fatalf("expected 3 points, got %v", len(got.Points))
	}
	if got.Points[2] != Pt(2, 4) {
		t.Errorf("unexpected point %v", got.Points[2])
	}
}

func TestReadShapeRejectsBadInput(t *testing.T) {
	bad := []string{
		`not json`,
		`{"name": "Empty", "points": []}`,
		`{"points": [{"x": 1, "y": 2}]}`,
	}

	for _, text := range bad {
		_, err := ReadShape(strings.NewReader(text))
		if err == nil {
			t.Errorf("expected an error for %q", text)
		}
	}
}
