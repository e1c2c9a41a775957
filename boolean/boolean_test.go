package boolean

import (
	"testing"

	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEps = 1e-9

// square returns a CCW unit-bulge-free square with the given corners.
func square(x0, y0, x1, y1 float64) *polyline.Polyline {
	return polyline.New([]polyline.Vertex{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}, true)
}

// The two squares below overlap in the unit square [1,2]x[1,2]: A is [0,2]x[0,2] (area
// 4), B is [1,3]x[1,3] (area 4), their intersection has area 1, their union has area 7.
func overlappingSquares() (*polyline.Polyline, *polyline.Polyline) {
	return square(0, 0, 2, 2), square(1, 1, 3, 3)
}

func TestApply_Or_OverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	result, err := Apply(a, b, Or)
	require.NoError(t, err)
	require.Len(t, result.Positive, 1)
	assert.Empty(t, result.Negative)
	assert.InDelta(t, 7, result.Positive[0].Area(), testEps)
	assert.Equal(t, NoIntersect, result.Info)
}

func TestApply_And_OverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	result, err := Apply(a, b, And)
	require.NoError(t, err)
	require.Len(t, result.Positive, 1)
	assert.Empty(t, result.Negative)
	assert.InDelta(t, 1, result.Positive[0].Area(), testEps)
}

func TestApply_Not_OverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	result, err := Apply(a, b, Not)
	require.NoError(t, err)
	require.Len(t, result.Positive, 1)
	assert.Empty(t, result.Negative)
	assert.InDelta(t, 3, result.Positive[0].Area(), testEps)
}

func TestApply_Xor_OverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	result, err := Apply(a, b, Xor)
	require.NoError(t, err)
	require.Len(t, result.Positive, 1)
	require.Len(t, result.Negative, 1)
	assert.InDelta(t, 7, result.Positive[0].Area(), testEps)
	assert.InDelta(t, -1, result.Negative[0].Area(), testEps)
}

func TestApply_Disjoint(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(10, 10, 11, 11)

	or, err := Apply(a, b, Or)
	require.NoError(t, err)
	assert.Equal(t, Disjoint, or.Info)
	assert.Len(t, or.Positive, 2)

	and, err := Apply(a, b, And)
	require.NoError(t, err)
	assert.Empty(t, and.Positive)
	assert.Empty(t, and.Negative)

	not, err := Apply(a, b, Not)
	require.NoError(t, err)
	require.Len(t, not.Positive, 1)
	assert.InDelta(t, 1, not.Positive[0].Area(), testEps)

	xor, err := Apply(a, b, Xor)
	require.NoError(t, err)
	assert.Len(t, xor.Positive, 2)
}

func TestApply_Containment(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 4, 4)

	result, err := Apply(outer, inner, And)
	require.NoError(t, err)
	assert.Equal(t, Pline2InsidePline1, result.Info)
	require.Len(t, result.Positive, 1)
	assert.InDelta(t, 4, result.Positive[0].Area(), testEps)

	not, err := Apply(outer, inner, Not)
	require.NoError(t, err)
	require.Len(t, not.Positive, 1)
	require.Len(t, not.Negative, 1)
	assert.InDelta(t, 100, not.Positive[0].Area(), testEps)
	assert.InDelta(t, -4, not.Negative[0].Area(), testEps)
}

func TestApply_RequiresClosedInputs(t *testing.T) {
	open := polyline.New([]polyline.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}}, false)
	closed := square(0, 0, 1, 1)

	_, err := Apply(open, closed, Or)
	assert.Error(t, err)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "Or", Or.String())
	assert.Equal(t, "Xor", Xor.String())
}

func TestContainmentResult_VertexChoice(t *testing.T) {
	// sanity check that the vertex-based winding test picks up a vertex actually on the
	// polyline, not an arbitrary point.
	a := square(0, 0, 1, 1)
	b := square(0, 0, 1, 1)
	assert.Equal(t, point.New(0, 0), a.Vertices()[0].Point())
	assert.Equal(t, point.New(0, 0), b.Vertices()[0].Point())
}
