package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/planar"
)

// the worked solutions, rounded to 5 decimal places
var solutions = map[int][]planar.Point{
	1:  {planar.Pt(6, 1)},
	2:  {planar.Pt(2, 2), planar.Pt(6, 2), planar.Pt(4, 8)},
	3:  {planar.Pt(2, 0.5), planar.Pt(6, 0.5), planar.Pt(4, 2)},
	4:  {planar.Pt(0, 1)},
	5:  {planar.Pt(1.41421, 0), planar.Pt(3.53553, 2.12132), planar.Pt(5.65685, 0), planar.Pt(3.53553, -2.12132)},
	6:  {planar.Pt(-2, 5)},
	7:  {planar.Pt(2, -3), planar.Pt(4, -3), planar.Pt(3, -5)},
	8:  {planar.Pt(8, 3)},
	9:  {planar.Pt(-2, 8)},
	10: {planar.Pt(1.5, 2), planar.Pt(-4.5, 2), planar.Pt(-4.5, 3), planar.Pt(1.5, 3)},
}

func TestSolutions(t *testing.T) {
	for _, e := range All() {
		want, ok := solutions[e.Number]
		require.True(t, ok, "no expected solution for exercise %v", e.Number)

		got, err := e.Solve()
		require.NoError(t, err, "exercise %v", e.Number)
		require.Len(t, got.Points, len(want), "exercise %v", e.Number)

		for i, p := range want {
			assert.InDelta(t, p.X, got.Points[i].X, 1e-5, "exercise %v, point %v, x", e.Number, i)
			assert.InDelta(t, p.Y, got.Points[i].Y, 1e-5, "exercise %v, point %v, y", e.Number, i)
		}
	}
}

func TestAll(t *testing.T) {
	xs := All()
	require.Len(t, xs, 10)

	for i, e := range xs {
		assert.Equal(t, i+1, e.Number, "exercises should be ordered by number")
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Description)
		assert.NoError(t, e.Shape.Validate(), "exercise %v", e.Number)
		assert.NoError(t, e.Steps.Validate(), "exercise %v", e.Number)
	}
}

func TestFind(t *testing.T) {
	e, err := Find(5)
	require.NoError(t, err)
	assert.Equal(t, 5, e.Number)

	_, err = Find(11)
	require.Error(t, err)
	assert.True(t, planar.IsNotFound(err))
}

func TestComposedMatchesStepwise(t *testing.T) {
	// the last trace entry must equal the composed matrix result
	for _, n := range []int{9, 10} {
		e, err := Find(n)
		require.NoError(t, err)

		solved, err := e.Solve()
		require.NoError(t, err)

		trace, err := e.Trace()
		require.NoError(t, err)
		require.Len(t, trace, len(e.Steps)+1)

		last := trace[len(trace)-1]
		require.Len(t, solved.Points, len(last.Points))
		for i := range solved.Points {
			assert.InDelta(t, last.Points[i].X, solved.Points[i].X, 1e-9, "exercise %v", n)
			assert.InDelta(t, last.Points[i].Y, solved.Points[i].Y, 1e-9, "exercise %v", n)
		}
	}
}

func TestFigure(t *testing.T) {
	// single step: before and after
	e, err := Find(1)
	require.NoError(t, err)
	f, err := e.Figure()
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumShapes())

	// multiple steps: original plus one shape per step
	e, err = Find(9)
	require.NoError(t, err)
	f, err = e.Figure()
	require.NoError(t, err)
	assert.Equal(t, 4, f.NumShapes())
}
