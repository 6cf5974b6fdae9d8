package planar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

const epsilon = 1e-10

// Matrix is a 3x3 transformation matrix for homogeneous 2D coordinates,
// stored in row-major order:
//
//  m[0]  m[1]  m[2]
//  m[3]  m[4]  m[5]
//  m[6]  m[7]  m[8]
//
// All constructors in this package produce affine matrices,
// i.e. the bottom row is always (0, 0, 1).
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation creates a matrix that moves points by dx and dy:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling creates a matrix that scales points by sx and sy,
// relative to the origin.
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
// Factors may be zero or negative. Negative factors mirror,
// a factor of zero collapses the respective axis.
func Scaling(sx, sy float64) Matrix {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// ScalingAbout creates a scaling matrix that leaves the pivot point fixed.
func ScalingAbout(sx, sy float64, pivot Point) Matrix {
	return about(Scaling(sx, sy), pivot)
}

// Rotation creates a matrix that rotates points counter-clockwise
// around the origin. The angle is given in degrees,
// negative angles rotate clockwise.
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation(degrees float64) Matrix {
	a := radians(degrees)
	m := Identity()

	m[0] = math.Cos(a)
	m[1] = math.Sin(a) * -1

	m[3] = math.Sin(a)
	m[4] = math.Cos(a)

	return m
}

// RotationAbout creates a rotation matrix around the pivot point.
func RotationAbout(degrees float64, pivot Point) Matrix {
	return about(Rotation(degrees), pivot)
}

// Shear creates a shearing matrix:
//
//  1   kx  0
//  ky  1   0
//  0   0   1
//
// kx shifts x in proportion to y (horizontal shear),
// ky shifts y in proportion to x (vertical shear).
func Shear(kx, ky float64) Matrix {
	m := Identity()

	m[1] = kx
	m[3] = ky

	return m
}

// Reflection creates a mirroring matrix for one of the supported axes.
// An unsupported axis is an error.
func Reflection(axis Axis) (Matrix, error) {
	m := Identity()

	switch axis {
	case AcrossX:
		m[4] = -1
	case AcrossY:
		m[0] = -1
	case ThroughOrigin:
		m[0] = -1
		m[4] = -1
	case AcrossDiagonal:
		m[0] = 0
		m[1] = 1
		m[3] = 1
		m[4] = 0
	default:
		return m, NewInvalidParameter("invalid reflection axis %v", int(axis))
	}

	return m, nil
}

// about wraps a transformation so that it is relative to the pivot point
// instead of the origin.
func about(m Matrix, pivot Point) Matrix {
	if pivot.X == 0 && pivot.Y == 0 {
		return m
	}

	to := Translation(pivot.X, pivot.Y)
	back := Translation(-pivot.X, -pivot.Y)

	return to.Mul(m).Mul(back)
}

// Compose combines multiple transformations into a single matrix.
// Matrices are given in the order in which they take effect,
// Compose(a, b, c) means "first a, then b, then c".
// The combined matrix is thus the product c * b * a.
func Compose(ms ...Matrix) Matrix {
	m := Identity()
	for _, x := range ms {
		m = x.Mul(m)
	}
	return m
}

// Mul returns the matrix product m * other.
// When the product is applied to a point, other takes effect first.
func (m Matrix) Mul(other Matrix) Matrix {
	a := m
	b := other
	var p Matrix

	p[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	p[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	p[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	p[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	p[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	p[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	p[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	p[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	p[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return p
}

// Apply transforms a single point.
// The point is lifted to homogeneous coordinates (x, y, 1),
// multiplied and projected back. The matrix is assumed to be affine.
func (m Matrix) Apply(p Point) Point {
	tx := m[0]*p.X + m[1]*p.Y + m[2]
	ty := m[3]*p.X + m[4]*p.Y + m[5]
	return Pt(tx, ty)
}

// ApplyAll transforms every point in the set and returns the results
// as a new set in the same order. The given set is not modified.
func (m Matrix) ApplyAll(ps PointSet) PointSet {
	t := make(PointSet, len(ps))
	for i, p := range ps {
		t[i] = m.Apply(p)
	}
	return t
}

// Determinant computes the determinant of the matrix.
// A determinant of zero means the transformation cannot be inverted.
func (m Matrix) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse computes the inverse transformation.
// The second return value is false if the matrix is singular,
// in that case the identity matrix is returned.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < epsilon {
		return Identity(), false
	}

	var inv Matrix
	inv[0] = (m[4]*m[8] - m[5]*m[7]) / det
	inv[1] = (m[2]*m[7] - m[1]*m[8]) / det
	inv[2] = (m[1]*m[5] - m[2]*m[4]) / det

	inv[3] = (m[5]*m[6] - m[3]*m[8]) / det
	inv[4] = (m[0]*m[8] - m[2]*m[6]) / det
	inv[5] = (m[2]*m[3] - m[0]*m[5]) / det

	inv[6] = (m[3]*m[7] - m[4]*m[6]) / det
	inv[7] = (m[1]*m[6] - m[0]*m[7]) / det
	inv[8] = (m[0]*m[4] - m[1]*m[3]) / det

	return inv, true
}

// IsIdentity checks whether the matrix is (numerically close to)
// the identity matrix.
func (m Matrix) IsIdentity() bool {
	id := Identity()
	for i := range m {
		if math.Abs(m[i]-id[i]) > epsilon {
			return false
		}
	}
	return true
}

// Validate checks that the matrix is a usable affine transformation,
// that is, all entries are finite and the bottom row is (0, 0, 1).
func (m Matrix) Validate() error {
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewInvalidParameter("matrix entry %v is not finite", i)
		}
	}
	if m[6] != 0 || m[7] != 0 || m[8] != 1 {
		return NewInvalidParameter("matrix is not affine, bottom row is (%v, %v, %v)", m[6], m[7], m[8])
	}
	return nil
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g]\n[%g %g %g]\n[%g %g %g]",
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8])
}

// radians converts an angle from degrees.
func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Axis identifies the mirror line for a reflection.
type Axis int

const (
	// AcrossX mirrors over the x-axis, negating y.
	AcrossX Axis = iota
	// AcrossY mirrors over the y-axis, negating x.
	AcrossY
	// ThroughOrigin mirrors through the origin, negating both coordinates.
	ThroughOrigin
	// AcrossDiagonal mirrors over the line y=x, swapping the coordinates.
	AcrossDiagonal
)

// ParseAxis converts a string like "x" or "origin" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AcrossX, nil
	case "y":
		return AcrossY, nil
	case "origin":
		return ThroughOrigin, nil
	case "diagonal", "y=x":
		return AcrossDiagonal, nil
	default:
		return AcrossX, NewInvalidParameter("invalid reflection axis %q", s)
	}
}

func (a Axis) String() string {
	switch a {
	case AcrossX:
		return "x"
	case AcrossY:
		return "y"
	case ThroughOrigin:
		return "origin"
	case AcrossDiagonal:
		return "diagonal"
	default:
		return "UNKNOWN"
	}
}

func (a *Axis) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseAxis(s)
	if err != nil {
		return err
	}

	*a = x
	return nil
}

func (a Axis) MarshalJSON() ([]byte, error) {
	s := a.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid reflection axis %v", int(a))
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
