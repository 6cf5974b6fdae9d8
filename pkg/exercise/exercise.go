// Package exercise holds a set of worked transformation examples,
// each with a base shape and a transformation pipeline.
// They double as demo content for the command line tool and as
// reference cases with well known results.
package exercise

import (
	"github.com/akeil/planar"
	"github.com/akeil/planar/pkg/plot"
)

// Exercise is a worked example with a known result.
type Exercise struct {
	Number      int
	Title       string
	Description string
	Shape       planar.Shape
	Steps       planar.Pipeline
}

// All returns the built-in exercises, ordered by number.
func All() []Exercise {
	return []Exercise{
		{
			Number:      1,
			Title:       "Simple translation",
			Description: "The point P(2, 3) is moved by the vector (4, -2).",
			Shape:       planar.NewShape("P(2, 3)", planar.Pt(2, 3)),
			Steps:       planar.Pipeline{planar.TranslateStep(4, -2)},
		},
		{
			Number:      2,
			Title:       "Uniform scaling",
			Description: "The triangle A(1, 1), B(3, 1), C(2, 4) is scaled by factor 2.",
			Shape:       planar.NewShape("Triangle", planar.Pt(1, 1), planar.Pt(3, 1), planar.Pt(2, 4)),
			Steps:       planar.Pipeline{planar.ScaleStep(2, 2)},
		},
		{
			Number:      3,
			Title:       "Non-uniform scaling",
			Description: "The same triangle is scaled by the factors (x=2, y=0.5).",
			Shape:       planar.NewShape("Triangle", planar.Pt(1, 1), planar.Pt(3, 1), planar.Pt(2, 4)),
			Steps:       planar.Pipeline{planar.ScaleStep(2, 0.5)},
		},
		{
			Number:      4,
			Title:       "Rotation about the origin",
			Description: "The point P(1, 0) is rotated by 90 degrees counter-clockwise.",
			Shape:       planar.NewShape("P(1, 0)", planar.Pt(1, 0)),
			Steps:       planar.Pipeline{planar.RotateStep(90)},
		},
		{
			Number:      5,
			Title:       "Rotating a polygon",
			Description: "A square is rotated by 45 degrees clockwise.",
			Shape: planar.NewShape("Square",
				planar.Pt(1, 1), planar.Pt(1, 4), planar.Pt(4, 4), planar.Pt(4, 1)),
			Steps: planar.Pipeline{planar.RotateStep(-45)},
		},
		{
			Number:      6,
			Title:       "Simple reflection",
			Description: "The point P(2, 5) is mirrored across the y-axis.",
			Shape:       planar.NewShape("P(2, 5)", planar.Pt(2, 5)),
			Steps:       planar.Pipeline{planar.ReflectStep(planar.AcrossY)},
		},
		{
			Number:      7,
			Title:       "Reflecting a triangle",
			Description: "The triangle A(2, 3), B(4, 3), C(3, 5) is mirrored across the x-axis.",
			Shape:       planar.NewShape("Triangle", planar.Pt(2, 3), planar.Pt(4, 3), planar.Pt(3, 5)),
			Steps:       planar.Pipeline{planar.ReflectStep(planar.AcrossX)},
		},
		{
			Number:      8,
			Title:       "Horizontal shear",
			Description: "A horizontal shear with k=2 is applied to the point P(2, 3).",
			Shape:       planar.NewShape("P(2, 3)", planar.Pt(2, 3)),
			Steps:       planar.Pipeline{planar.ShearStep(2, 0)},
		},
		{
			Number: 9,
			Title:  "Composing transformations",
			Description: "The point P(3, 2) is translated by (1, -1), " +
				"rotated by 90 degrees and scaled by factor 2.",
			Shape: planar.NewShape("P(3, 2)", planar.Pt(3, 2)),
			Steps: planar.Pipeline{
				planar.TranslateStep(1, -1),
				planar.RotateStep(90),
				planar.ScaleStep(2, 2),
			},
		},
		{
			Number: 10,
			Title:  "Combined transformation matrix",
			Description: "The rectangle A(1, 1), B(5, 1), C(5, 3), D(1, 3) is translated by (-2, 3), " +
				"scaled by (1.5, 0.5) and mirrored across the y-axis. " +
				"Applying the composed matrix gives the same result as the single steps.",
			Shape: planar.NewShape("Rectangle",
				planar.Pt(1, 1), planar.Pt(5, 1), planar.Pt(5, 3), planar.Pt(1, 3)),
			Steps: planar.Pipeline{
				planar.TranslateStep(-2, 3),
				planar.ScaleStep(1.5, 0.5),
				planar.ReflectStep(planar.AcrossY),
			},
		},
	}
}

// Find returns the exercise with the given number.
func Find(number int) (Exercise, error) {
	for _, e := range All() {
		if e.Number == number {
			return e, nil
		}
	}
	return Exercise{}, planar.NewNotFound("no exercise with number %v", number)
}

// Solve applies the composed matrix of all steps to the shape.
func (e Exercise) Solve() (planar.Shape, error) {
	return e.Steps.Apply(e.Shape)
}

// Trace applies the steps one by one,
// starting with the unmodified shape.
func (e Exercise) Trace() ([]planar.Shape, error) {
	return e.Steps.Trace(e.Shape)
}

// Matrix returns the composed transformation matrix.
func (e Exercise) Matrix() (planar.Matrix, error) {
	return e.Steps.Matrix()
}

// Figure builds a plot for the exercise.
// Single step exercises show the shape before and after,
// multi step exercises show every intermediate shape.
func (e Exercise) Figure() (*plot.Figure, error) {
	f := plot.NewFigure(e.Title)

	if len(e.Steps) == 1 {
		solved, err := e.Solve()
		if err != nil {
			return nil, err
		}
		f.AddOriginal(e.Shape)
		f.AddTransformed(solved)
		return f, nil
	}

	trace, err := e.Trace()
	if err != nil {
		return nil, err
	}
	f.AddTrace(trace)
	return f, nil
}
