package planar

import (
	"fmt"
	"math"
)

// Point is a single location on the 2D plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Validate checks that both coordinates are finite numbers.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return NewInvalidParameter("point %v has NaN coordinates", p)
	}
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return NewInvalidParameter("point %v has infinite coordinates", p)
	}
	return nil
}

// PointSet is an ordered list of points, typically the vertices of a shape.
type PointSet []Point

// Points is a shorthand constructor for a PointSet from coordinate pairs.
// It expects an even number of values, e.g. Points(0,0, 1,0, 1,1).
func Points(xy ...float64) PointSet {
	ps := make(PointSet, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, Pt(xy[i], xy[i+1]))
	}
	return ps
}

// Clone creates an independent copy of the point set.
func (ps PointSet) Clone() PointSet {
	c := make(PointSet, len(ps))
	copy(c, ps)
	return c
}

// Bounds computes the axis-aligned bounding box for the point set.
// The bounds of an empty set is the zero Rect.
func (ps PointSet) Bounds() Rect {
	if len(ps) == 0 {
		return Rect{}
	}

	minX, minY := ps[0].X, ps[0].Y
	maxX, maxY := ps[0].X, ps[0].Y
	for _, p := range ps[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Centroid returns the arithmetic mean of all points.
func (ps PointSet) Centroid() Point {
	if len(ps) == 0 {
		return Point{}
	}

	var sx, sy float64
	for _, p := range ps {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ps))

	return Pt(sx/n, sy/n)
}

// Validate checks that the set is non-empty and contains only finite points.
func (ps PointSet) Validate() error {
	if len(ps) == 0 {
		return NewInvalidParameter("point set is empty")
	}
	for i, p := range ps {
		err := p.Validate()
		if err != nil {
			return Wrap(err, "invalid point at index %v", i)
		}
	}
	return nil
}

// Rect is an axis-aligned rectangle, defined by its lower left corner
// and its width and height.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains checks whether the given point lies within the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Pad grows the rectangle by the given amount on each side.
func (r Rect) Pad(d float64) Rect {
	return Rect{
		X:      r.X - d,
		Y:      r.Y - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
}
