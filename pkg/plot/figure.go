package plot

import (
	"math"

	"github.com/vdobler/chart"

	"github.com/akeil/planar"
)

const (
	defaultSize = 600
	minPad      = 1.0
)

// Figure is a plot of one or more shapes on a common coordinate grid.
//
// Shapes keep their insertion order in the legend. The viewport is
// fitted automatically around all shapes, with equal scale on both
// axes so that right angles look right.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	// Width and Height are the pixel dimensions for raster output.
	Width  int
	Height int

	// Grid controls whether grid lines are drawn.
	Grid bool

	series []series
}

type series struct {
	shape     planar.Shape
	style     chart.Style
	plotStyle chart.PlotStyle
}

// NewFigure creates an empty square figure with grid and axis labels.
func NewFigure(title string) *Figure {
	return &Figure{
		Title:  title,
		XLabel: "x",
		YLabel: "y",
		Width:  defaultSize,
		Height: defaultSize,
		Grid:   true,
	}
}

// Add puts a shape on the figure with an automatically chosen style.
func (f *Figure) Add(s planar.Shape) {
	f.AddStyled(s, Autostyle(len(f.series)))
}

// AddOriginal puts a shape on the figure,
// styled as the "before" of a transformation.
func (f *Figure) AddOriginal(s planar.Shape) {
	f.AddStyled(s, originalStyle)
}

// AddTransformed puts a shape on the figure,
// styled as the "after" of a transformation.
func (f *Figure) AddTransformed(s planar.Shape) {
	f.AddStyled(s, transformedStyle)
}

// AddStyled puts a shape on the figure with the given style.
func (f *Figure) AddStyled(s planar.Shape, style chart.Style) {
	ps := chart.PlotStyleLinesPoints
	if s.IsPoint() {
		ps = chart.PlotStylePoints
	}

	f.series = append(f.series, series{
		shape:     s,
		style:     style,
		plotStyle: ps,
	})
}

// AddTrace puts the shapes of a transformation trace on the figure.
// The first shape is styled as the original, the intermediate steps
// cycle through the palette.
func (f *Figure) AddTrace(shapes []planar.Shape) {
	for i, s := range shapes {
		if i == 0 {
			f.AddOriginal(s)
		} else {
			f.AddStyled(s, Autostyle(i))
		}
	}
}

// Shapes returns the plotted shapes in insertion order.
func (f *Figure) Shapes() []planar.Shape {
	shapes := make([]planar.Shape, len(f.series))
	for i, s := range f.series {
		shapes[i] = s.shape
	}
	return shapes
}

// NumShapes returns the number of plotted shapes.
func (f *Figure) NumShapes() int {
	return len(f.series)
}

// build assembles the chart for rendering.
func (f *Figure) build() (*chart.ScatterChart, error) {
	if len(f.series) == 0 {
		return nil, planar.NewInvalidParameter("figure %q has no shapes", f.Title)
	}

	c := &chart.ScatterChart{
		Title: f.Title,
		Key:   chart.Key{Pos: "itl"},
	}
	c.XRange.Label = f.XLabel
	c.YRange.Label = f.YLabel
	c.XRange.TicSetting.Mirror = 1
	c.YRange.TicSetting.Mirror = 1
	if f.Grid {
		c.XRange.TicSetting.Grid = chart.GridLines
		c.YRange.TicSetting.Grid = chart.GridLines
	}

	x0, x1, y0, y1 := f.viewport()
	c.XRange.Fixed(x0, x1, ticDelta(x1-x0))
	c.YRange.Fixed(y0, y1, ticDelta(y1-y0))

	for _, s := range f.series {
		c.AddData(s.shape.Name, ring(s.shape), s.plotStyle, s.style)
	}

	return c, nil
}

// viewport fits a window around all shapes.
// Both axes get the same span, so the scale is equal in x and y.
func (f *Figure) viewport() (x0, x1, y0, y1 float64) {
	first := true
	var minX, maxX, minY, maxY float64
	for _, s := range f.series {
		for _, p := range s.shape.Points {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}

	span := math.Max(maxX-minX, maxY-minY)
	pad := math.Max(span*0.1, minPad)
	span += 2 * pad

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	return cx - span/2, cx + span/2, cy - span/2, cy + span/2
}

// ring converts a shape to chart points, closing the outline
// for shapes with three or more vertices.
func ring(s planar.Shape) []chart.EPoint {
	pts := make([]chart.EPoint, 0, len(s.Points)+1)
	for _, p := range s.Points {
		pts = append(pts, chart.EPoint{X: p.X, Y: p.Y})
	}
	if len(s.Points) >= 3 {
		pts = append(pts, chart.EPoint{X: s.Points[0].X, Y: s.Points[0].Y})
	}
	return pts
}

// ticDelta chooses a round distance between tics,
// aiming for about eight tics over the given span.
func ticDelta(span float64) float64 {
	if span <= 0 {
		return 1
	}

	raw := span / 8
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}
