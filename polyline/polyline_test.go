package polyline

import (
	"math"
	"testing"

	"github.com/mikenye/plinegeom/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-9

func TestPolyline_SegmentCount(t *testing.T) {
	open := New([]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, false)
	assert.Equal(t, 2, open.SegmentCount())

	closed := New([]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, true)
	assert.Equal(t, 3, closed.SegmentCount())

	assert.Equal(t, 0, New(nil, true).SegmentCount())
}

func TestPolyline_Area_Triangle(t *testing.T) {
	// A right triangle with legs 3 and 4 has area 6.
	tri := New([]Vertex{{0, 0, 0}, {4, 0, 0}, {0, 3, 0}}, true)
	assert.InDelta(t, 6, tri.Area(), testEpsilon)
}

func TestPolyline_Area_UnitCircle(t *testing.T) {
	// Two bulge-1 vertices trace a full circle of radius 0.5 (scenario A1/A2's starting shape).
	circle := New([]Vertex{{0, 0, 1}, {1, 0, 1}}, true)
	assert.InDelta(t, math.Pi*0.25, circle.Area(), testEpsilon)
}

func TestPolyline_Area_OpenIsZero(t *testing.T) {
	open := New([]Vertex{{0, 0, 0}, {4, 0, 0}, {0, 3, 0}}, false)
	assert.Equal(t, 0.0, open.Area())
}

func TestPolyline_Length(t *testing.T) {
	square := New([]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, true)
	assert.InDelta(t, 4, square.Length(), testEpsilon)
}

func TestPolyline_WindingNumber(t *testing.T) {
	square := New([]Vertex{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}, true)
	assert.Equal(t, 1, square.WindingNumber(point.New(1, 1)))
	assert.Equal(t, 0, square.WindingNumber(point.New(5, 5)))

	clockwiseSquare := square.InvertDirection()
	assert.Equal(t, -1, clockwiseSquare.WindingNumber(point.New(1, 1)))
}

func TestPolyline_WindingNumber_Circle(t *testing.T) {
	circle := New([]Vertex{{0, 0, 1}, {1, 0, 1}}, true)
	assert.Equal(t, 1, circle.WindingNumber(point.New(0.5, 0.2)))
	assert.Equal(t, 0, circle.WindingNumber(point.New(5, 5)))
}

func TestPolyline_Extents(t *testing.T) {
	square := New([]Vertex{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}, true)
	box, ok := square.Extents()
	assert.True(t, ok)
	assert.Equal(t, point.New(0, 0), box.Min)
	assert.Equal(t, point.New(2, 2), box.Max)

	_, ok = New(nil, true).Extents()
	assert.False(t, ok)
}

func TestPolyline_BoundingRectangle(t *testing.T) {
	square := New([]Vertex{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}, true)
	rect, ok := square.BoundingRectangle()
	require.True(t, ok)
	assert.Equal(t, 4.0, rect.Area())

	_, ok = New(nil, true).BoundingRectangle()
	assert.False(t, ok)
}

func TestPolyline_InvertDirection_Circle(t *testing.T) {
	circle := New([]Vertex{{0, 0, 1}, {1, 0, 1}}, true)
	inverted := circle.InvertDirection()

	// Reversing a closed circle should retrace the same area, just wound the other way.
	assert.InDelta(t, -circle.Area(), inverted.Area(), testEpsilon)
}

func TestPolyline_Scale(t *testing.T) {
	line := New([]Vertex{{1, 1, 0}, {2, 2, 0.5}}, false)
	scaled := line.Scale(2)
	assert.Equal(t, 2.0, scaled.vertices[0].X)
	assert.Equal(t, 2.0, scaled.vertices[0].Y)
	assert.Equal(t, 0.5, scaled.vertices[1].Bulge)

	halfTurn := line.Scale(-1)
	assert.Equal(t, 0.5, halfTurn.vertices[1].Bulge)
}

func TestPolyline_Translate(t *testing.T) {
	line := New([]Vertex{{0, 0, 0}, {1, 0, 0}}, false)
	translated := line.Translate(point.New(5, 5))
	assert.Equal(t, 5.0, translated.vertices[0].X)
	assert.Equal(t, 5.0, translated.vertices[0].Y)
}

func TestPolyline_RemoveRepeatPositions(t *testing.T) {
	withDupes := New([]Vertex{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}, {1, 0, 0}}, true)
	cleaned := withDupes.RemoveRepeatPositions(testEpsilon)
	assert.Equal(t, 2, cleaned.Len())
}

func TestPolyline_RemoveRedundant(t *testing.T) {
	// (1,0) lies exactly on the line between (0,0) and (2,0), so it's redundant.
	withRedundant := New([]Vertex{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 2, 0}}, true)
	cleaned := withRedundant.RemoveRedundant(testEpsilon)
	assert.Equal(t, 3, cleaned.Len())

	for _, v := range cleaned.Vertices() {
		assert.NotEqual(t, 1.0, v.X)
	}
}

func TestPolyline_RemoveRedundant_PreservesArcs(t *testing.T) {
	withArc := New([]Vertex{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}}, true)
	cleaned := withArc.RemoveRedundant(testEpsilon)
	assert.Equal(t, 3, cleaned.Len())
}

func TestPolyline_RemoveRedundant_MergesCocircularArcs(t *testing.T) {
	// a, b, c sit 80 degrees apart on the unit circle; a->b and b->c each sweep 80
	// degrees the same direction, so b is redundant and a->c should become a single
	// 160-degree arc on that circle.
	quarter := math.Pi / 180 * 80
	b80 := math.Tan(quarter / 4)
	a := point.New(1, 0)
	b := point.New(math.Cos(quarter), math.Sin(quarter))
	c := point.New(math.Cos(2*quarter), math.Sin(2*quarter))

	withArcs := New([]Vertex{
		{a.X(), a.Y(), b80},
		{b.X(), b.Y(), b80},
		{c.X(), c.Y(), 0},
	}, true)

	cleaned := withArcs.RemoveRedundant(testEpsilon)
	require.Equal(t, 2, cleaned.Len())

	want := math.Tan(2 * quarter / 4)
	assert.InDelta(t, want, cleaned.Vertices()[0].Bulge, 1e-9)
	assert.True(t, a.Eq(cleaned.Vertices()[0].Point()))
	assert.True(t, c.Eq(cleaned.Vertices()[1].Point()))
}

func TestPolyline_RemoveRedundant_SkipsOppositeWoundArcs(t *testing.T) {
	// a->b curves one way and b->c curves the other, so even though they could share a
	// circle, they aren't a smooth continuation and b must be kept.
	quarter := math.Pi / 180 * 80
	b80 := math.Tan(quarter / 4)
	a := point.New(1, 0)
	b := point.New(math.Cos(quarter), math.Sin(quarter))
	c := point.New(math.Cos(2*quarter), math.Sin(2*quarter))

	withArcs := New([]Vertex{
		{a.X(), a.Y(), b80},
		{b.X(), b.Y(), -b80},
		{c.X(), c.Y(), 0},
	}, true)

	cleaned := withArcs.RemoveRedundant(testEpsilon)
	assert.Equal(t, 3, cleaned.Len())
}
