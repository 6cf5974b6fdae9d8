package planar

import (
	"encoding/json"
	"io"
)

// Shape is a named, ordered set of points.
// For polygons, the points are the vertices in drawing order.
// A shape with a single point is valid and represents a point of interest.
//
// Shapes are immutable by convention. Every transformation returns a new
// shape with a name derived from the original, e.g. "Square" becomes
// "Square rotated". The derived names are used for plot legends.
type Shape struct {
	Name   string   `json:"name"`
	Points PointSet `json:"points"`
}

// NewShape creates a shape from the given points.
// The points are copied.
func NewShape(name string, pts ...Point) Shape {
	return Shape{
		Name:   name,
		Points: PointSet(pts).Clone(),
	}
}

// Transform applies an arbitrary matrix to all points of the shape.
func (s Shape) Transform(m Matrix) Shape {
	return s.derive("transformed", m)
}

// Translate moves the shape by dx and dy.
func (s Shape) Translate(dx, dy float64) Shape {
	return s.derive("translated", Translation(dx, dy))
}

// Scale resizes the shape relative to the origin.
func (s Shape) Scale(sx, sy float64) Shape {
	return s.derive("scaled", Scaling(sx, sy))
}

// ScaleAbout resizes the shape, leaving the pivot point fixed.
func (s Shape) ScaleAbout(sx, sy float64, pivot Point) Shape {
	return s.derive("scaled", ScalingAbout(sx, sy, pivot))
}

// Rotate turns the shape counter-clockwise around the origin.
// The angle is given in degrees.
func (s Shape) Rotate(degrees float64) Shape {
	return s.derive("rotated", Rotation(degrees))
}

// RotateAbout turns the shape counter-clockwise around the pivot point.
func (s Shape) RotateAbout(degrees float64, pivot Point) Shape {
	return s.derive("rotated", RotationAbout(degrees, pivot))
}

// Shear skews the shape by the factors kx and ky.
func (s Shape) Shear(kx, ky float64) Shape {
	return s.derive("sheared", Shear(kx, ky))
}

// Reflect mirrors the shape across the given axis.
func (s Shape) Reflect(axis Axis) (Shape, error) {
	m, err := Reflection(axis)
	if err != nil {
		return s, err
	}
	return s.derive("reflected", m), nil
}

func (s Shape) derive(suffix string, m Matrix) Shape {
	return Shape{
		Name:   s.Name + " " + suffix,
		Points: m.ApplyAll(s.Points),
	}
}

// Bounds computes the axis-aligned bounding box of the shape.
func (s Shape) Bounds() Rect {
	return s.Points.Bounds()
}

// Centroid returns the arithmetic mean of the shape's points.
func (s Shape) Centroid() Point {
	return s.Points.Centroid()
}

// IsPoint checks if the shape consists of a single point.
func (s Shape) IsPoint() bool {
	return len(s.Points) == 1
}

// Validate checks that the shape has a name and a usable point set.
func (s Shape) Validate() error {
	if s.Name == "" {
		return NewInvalidParameter("shape name must not be empty")
	}

	err := s.Points.Validate()
	if err != nil {
		return Wrap(err, "invalid shape %q", s.Name)
	}

	return nil
}

// ReadShape reads a shape from its JSON form.
func ReadShape(r io.Reader) (Shape, error) {
	var s Shape
	err := json.NewDecoder(r).Decode(&s)
	if err != nil {
		return s, Wrap(err, "cannot read shape")
	}

	err = s.Validate()
	if err != nil {
		return s, err
	}

	return s, nil
}

// WriteShape writes the shape as indented JSON.
func WriteShape(w io.Writer, s Shape) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
