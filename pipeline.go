package planar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op identifies the kind of a transformation step.
type Op int

const (
	OpTranslate Op = iota
	OpScale
	OpRotate
	OpShear
	OpReflect
)

// ParseOp converts a string like "translate" to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "translate":
		return OpTranslate, nil
	case "scale":
		return OpScale, nil
	case "rotate":
		return OpRotate, nil
	case "shear":
		return OpShear, nil
	case "reflect":
		return OpReflect, nil
	default:
		return OpTranslate, NewInvalidParameter("invalid operation %q", s)
	}
}

func (o Op) String() string {
	switch o {
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	case OpRotate:
		return "rotate"
	case OpShear:
		return "shear"
	case OpReflect:
		return "reflect"
	default:
		return "UNKNOWN"
	}
}

func (o *Op) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseOp(s)
	if err != nil {
		return err
	}

	*o = x
	return nil
}

func (o Op) MarshalJSON() ([]byte, error) {
	s := o.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid operation %v", int(o))
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}

// Step is a single transformation in a pipeline.
// Only the parameters for its Op are relevant,
// e.g. a translate step uses Dx and Dy and ignores everything else.
//
// Zero values can be omitted in the JSON form, so
// {"op": "translate", "dy": 5} is a valid step.
type Step struct {
	Op Op `json:"op"`

	// Dx, Dy are the offsets for a translate step.
	Dx float64 `json:"dx,omitempty"`
	Dy float64 `json:"dy,omitempty"`

	// Sx, Sy are the factors for a scale step.
	Sx float64 `json:"sx,omitempty"`
	Sy float64 `json:"sy,omitempty"`

	// Angle is the rotation angle in degrees, counter-clockwise.
	Angle float64 `json:"angle,omitempty"`

	// Kx, Ky are the factors for a shear step.
	Kx float64 `json:"kx,omitempty"`
	Ky float64 `json:"ky,omitempty"`

	// Axis is the mirror line for a reflect step.
	Axis Axis `json:"axis,omitempty"`

	// Pivot is the fixed point for scale and rotate steps,
	// unset means the origin. Other steps must not set it.
	Pivot *Point `json:"pivot,omitempty"`
}

// Convenience constructors for the step types.

func TranslateStep(dx, dy float64) Step {
	return Step{Op: OpTranslate, Dx: dx, Dy: dy}
}

func ScaleStep(sx, sy float64) Step {
	return Step{Op: OpScale, Sx: sx, Sy: sy}
}

func ScaleAboutStep(sx, sy float64, pivot Point) Step {
	return Step{Op: OpScale, Sx: sx, Sy: sy, Pivot: &pivot}
}

func RotateStep(degrees float64) Step {
	return Step{Op: OpRotate, Angle: degrees}
}

func RotateAboutStep(degrees float64, pivot Point) Step {
	return Step{Op: OpRotate, Angle: degrees, Pivot: &pivot}
}

func ShearStep(kx, ky float64) Step {
	return Step{Op: OpShear, Kx: kx, Ky: ky}
}

func ReflectStep(axis Axis) Step {
	return Step{Op: OpReflect, Axis: axis}
}

// Matrix builds the transformation matrix for this step.
// The pivot is honored for scale and rotate steps.
func (st Step) Matrix() (Matrix, error) {
	switch st.Op {
	case OpTranslate:
		return Translation(st.Dx, st.Dy), nil
	case OpScale:
		if st.Pivot != nil {
			return ScalingAbout(st.Sx, st.Sy, *st.Pivot), nil
		}
		return Scaling(st.Sx, st.Sy), nil
	case OpRotate:
		if st.Pivot != nil {
			return RotationAbout(st.Angle, *st.Pivot), nil
		}
		return Rotation(st.Angle), nil
	case OpShear:
		return Shear(st.Kx, st.Ky), nil
	case OpReflect:
		return Reflection(st.Axis)
	default:
		return Identity(), NewInvalidParameter("invalid operation %v", int(st.Op))
	}
}

// apply transforms the shape with this step,
// using the named shape methods so that derived names accumulate.
func (st Step) apply(s Shape) (Shape, error) {
	switch st.Op {
	case OpTranslate:
		return s.Translate(st.Dx, st.Dy), nil
	case OpScale:
		if st.Pivot != nil {
			return s.ScaleAbout(st.Sx, st.Sy, *st.Pivot), nil
		}
		return s.Scale(st.Sx, st.Sy), nil
	case OpRotate:
		if st.Pivot != nil {
			return s.RotateAbout(st.Angle, *st.Pivot), nil
		}
		return s.Rotate(st.Angle), nil
	case OpShear:
		return s.Shear(st.Kx, st.Ky), nil
	case OpReflect:
		return s.Reflect(st.Axis)
	default:
		return s, NewInvalidParameter("invalid operation %v", int(st.Op))
	}
}

// Validate checks that the step describes a usable transformation.
// A pivot on a step that cannot use one is an error,
// it would otherwise be silently ignored.
func (st Step) Validate() error {
	if st.Pivot != nil {
		switch st.Op {
		case OpScale, OpRotate:
			err := st.Pivot.Validate()
			if err != nil {
				return Wrap(err, "invalid pivot")
			}
		default:
			return NewInvalidParameter("%v does not take a pivot", st.Op)
		}
	}

	m, err := st.Matrix()
	if err != nil {
		return err
	}

	return m.Validate()
}

func (st Step) String() string {
	var args string
	switch st.Op {
	case OpTranslate:
		args = fmt.Sprintf("%v, %v", st.Dx, st.Dy)
	case OpScale:
		args = fmt.Sprintf("%v, %v", st.Sx, st.Sy)
	case OpRotate:
		args = fmt.Sprintf("%v", st.Angle)
	case OpShear:
		args = fmt.Sprintf("%v, %v", st.Kx, st.Ky)
	case OpReflect:
		args = st.Axis.String()
	}

	s := fmt.Sprintf("%v(%v)", st.Op, args)
	if st.Pivot != nil {
		s += fmt.Sprintf(" about %v", *st.Pivot)
	}

	return s
}

// ParseStep reads a step from its compact text form "op:args[@pivot]".
//
// Examples:
//
//  translate:4,-2
//  scale:2          (uniform)
//  scale:2,0.5
//  rotate:90@1,1    (rotate about the point 1,1)
//  shear:2          (horizontal)
//  reflect:y
//
func ParseStep(s string) (Step, error) {
	var st Step

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return st, NewInvalidParameter("invalid step %q, expected format op:args", s)
	}

	op, err := ParseOp(parts[0])
	if err != nil {
		return st, err
	}
	st.Op = op

	rest := parts[1]
	if i := strings.Index(rest, "@"); i >= 0 {
		pivot, err := ParsePoint(rest[i+1:])
		if err != nil {
			return st, Wrap(err, "invalid pivot in step %q", s)
		}
		st.Pivot = &pivot
		rest = rest[:i]
	}

	if st.Op == OpReflect {
		axis, err := ParseAxis(rest)
		if err != nil {
			return st, err
		}
		st.Axis = axis
		return st, st.Validate()
	}

	args, err := parseFloats(rest)
	if err != nil {
		return st, Wrap(err, "invalid step %q", s)
	}

	switch st.Op {
	case OpTranslate:
		if len(args) != 2 {
			return st, NewInvalidParameter("translate expects 2 values, got %v", len(args))
		}
		st.Dx, st.Dy = args[0], args[1]
	case OpScale:
		switch len(args) {
		case 1:
			// a single factor scales uniformly
			st.Sx, st.Sy = args[0], args[0]
		case 2:
			st.Sx, st.Sy = args[0], args[1]
		default:
			return st, NewInvalidParameter("scale expects 1 or 2 values, got %v", len(args))
		}
	case OpRotate:
		if len(args) != 1 {
			return st, NewInvalidParameter("rotate expects 1 value, got %v", len(args))
		}
		st.Angle = args[0]
	case OpShear:
		switch len(args) {
		case 1:
			// a single factor shears horizontally
			st.Kx = args[0]
		case 2:
			st.Kx, st.Ky = args[0], args[1]
		default:
			return st, NewInvalidParameter("shear expects 1 or 2 values, got %v", len(args))
		}
	}

	return st, st.Validate()
}

// ParsePoint reads a point from a string like "2,3".
func ParsePoint(s string) (Point, error) {
	args, err := parseFloats(s)
	if err != nil {
		return Point{}, err
	}
	if len(args) != 2 {
		return Point{}, NewInvalidParameter("point expects 2 values, got %v", len(args))
	}
	return Pt(args[0], args[1]), nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, NewInvalidParameter("not a number: %q", p)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Pipeline is an ordered list of transformation steps.
// Steps take effect in list order, the first step is applied first.
type Pipeline []Step

// Matrix composes all steps into a single transformation matrix.
func (pl Pipeline) Matrix() (Matrix, error) {
	ms := make([]Matrix, len(pl))
	for i, st := range pl {
		m, err := st.Matrix()
		if err != nil {
			return Identity(), Wrap(err, "step %v", i+1)
		}
		ms[i] = m
	}
	return Compose(ms...), nil
}

// Apply transforms the shape with the composed matrix of all steps.
func (pl Pipeline) Apply(s Shape) (Shape, error) {
	m, err := pl.Matrix()
	if err != nil {
		return s, err
	}
	return s.Transform(m), nil
}

// Trace applies the steps one by one and records each intermediate shape.
// The result starts with the unmodified shape and has one entry per step,
// the last entry is the fully transformed shape.
func (pl Pipeline) Trace(s Shape) ([]Shape, error) {
	shapes := make([]Shape, 0, len(pl)+1)
	shapes = append(shapes, s)

	cur := s
	for i, st := range pl {
		next, err := st.apply(cur)
		if err != nil {
			return shapes, Wrap(err, "step %v", i+1)
		}
		shapes = append(shapes, next)
		cur = next
	}

	return shapes, nil
}

// Validate checks every step of the pipeline.
func (pl Pipeline) Validate() error {
	if len(pl) == 0 {
		return NewInvalidParameter("pipeline has no steps")
	}
	for i, st := range pl {
		err := st.Validate()
		if err != nil {
			return Wrap(err, "step %v", i+1)
		}
	}
	return nil
}

// ReadPipeline reads a pipeline from its JSON form.
func ReadPipeline(r io.Reader) (Pipeline, error) {
	var pl Pipeline
	err := json.NewDecoder(r).Decode(&pl)
	if err != nil {
		return nil, Wrap(err, "cannot read pipeline")
	}

	err = pl.Validate()
	if err != nil {
		return nil, err
	}

	return pl, nil
}

// WritePipeline writes the pipeline as indented JSON.
func WritePipeline(w io.Writer, pl Pipeline) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pl)
}
