package offset

import (
	"testing"

	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-6

func TestOffsetSegment_Line(t *testing.T) {
	seg := arcseg.NewLine(point.New(0, 0), point.New(1, 0))
	offset := offsetSegment(seg, 1)
	// Travelling along +x, the left normal points to +y.
	assert.InDelta(t, 0, offset.seg.P1().X(), testEpsilon)
	assert.InDelta(t, 1, offset.seg.P1().Y(), testEpsilon)
	assert.InDelta(t, 1, offset.seg.P2().X(), testEpsilon)
	assert.InDelta(t, 1, offset.seg.P2().Y(), testEpsilon)
}

func TestOffsetSegment_Arc_Shrinks(t *testing.T) {
	// A quarter circle on the unit circle, offset inward (positive d for a CCW arc).
	seg := arcseg.New(point.New(1, 0), point.New(0, 1), 0.41421356237)
	offset := offsetSegment(seg, 0.3)
	assert.InDelta(t, 0.7, offset.seg.Center().DistanceToPoint(offset.seg.P1()), 1e-4)
}

func TestOffsetSegment_Arc_Collapses(t *testing.T) {
	seg := arcseg.New(point.New(1, 0), point.New(0, 1), 0.41421356237) // radius 1
	offset := offsetSegment(seg, 2)
	assert.True(t, offset.collapsed)
}

// TestParallel_UnitCircle_Inward is scenario A1: offsetting the two-vertex unit circle
// inward by 0.2 yields a single polyline with vertices (0.2,0,1) and (0.8,0,1).
func TestParallel_UnitCircle_Inward(t *testing.T) {
	circle := polyline.New([]polyline.Vertex{{X: 0, Y: 0, Bulge: 1}, {X: 1, Y: 0, Bulge: 1}}, true)

	result, err := Parallel(circle, 0.2)
	require.NoError(t, err)
	require.Len(t, result, 1)

	verts := result[0].Vertices()
	require.Len(t, verts, 2)
	assertHasVertex(t, verts, 0.2, 0, 1)
	assertHasVertex(t, verts, 0.8, 0, 1)
	assert.True(t, result[0].IsClosed())
}

// TestParallel_UnitCircle_Outward is scenario A2: offsetting by -0.2 grows the circle.
func TestParallel_UnitCircle_Outward(t *testing.T) {
	circle := polyline.New([]polyline.Vertex{{X: 0, Y: 0, Bulge: 1}, {X: 1, Y: 0, Bulge: 1}}, true)

	result, err := Parallel(circle, -0.2)
	require.NoError(t, err)
	require.Len(t, result, 1)

	verts := result[0].Vertices()
	require.Len(t, verts, 2)
	assertHasVertex(t, verts, -0.2, 0, 1)
	assertHasVertex(t, verts, 1.2, 0, 1)
}

func TestParallel_ZeroDistance_ReturnsEquivalentShape(t *testing.T) {
	tri := polyline.New([]polyline.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}, true)

	result, err := Parallel(tri, 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, tri.Area(), result[0].Area(), 1e-6)
}

func assertHasVertex(t *testing.T, verts []polyline.Vertex, x, y, bulge float64) {
	t.Helper()
	for _, v := range verts {
		if approxEqual(v.X, x) && approxEqual(v.Y, y) && approxEqual(v.Bulge, bulge) {
			return
		}
	}
	t.Errorf("no vertex matching (%v, %v, %v) in %v", x, y, bulge, verts)
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d > -1e-4 && d < 1e-4
}
