package point

import (
	"encoding/json"
	"image"
	"math"
	"testing"

	"github.com/mikenye/plinegeom/options"
	"github.com/mikenye/plinegeom/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_AngleBetween(t *testing.T) {
	tests := map[string]struct {
		origin, a, b    Point
		expected        float64
		shouldReturnNaN bool
	}{
		"basic angle between points": {
			origin: New(0, 0), a: New(1, 0), b: New(0, 1),
			expected: math.Pi / 2,
		},
		"collinear opposite points": {
			origin: New(0, 0), a: New(1, 1), b: New(-1, -1),
			expected: math.Pi,
		},
		"identical points": {
			origin: New(0, 0), a: New(1, 1), b: New(1, 1),
			expected: 0,
		},
		"origin equals a": {
			origin: New(0, 0), a: New(0, 0), b: New(1, 1),
			shouldReturnNaN: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.origin.AngleBetween(tc.a, tc.b)
			if tc.shouldReturnNaN {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestPoint_Coordinates(t *testing.T) {
	x, y := New(3, 4).Coordinates()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestPoint_CrossProduct(t *testing.T) {
	assert.Equal(t, 1.0, New(1, 0).CrossProduct(New(0, 1)))
	assert.Equal(t, -1.0, New(0, 1).CrossProduct(New(1, 0)))
	assert.Equal(t, 0.0, New(2, 2).CrossProduct(New(1, 1)))
}

func TestPoint_DistanceToPoint(t *testing.T) {
	assert.Equal(t, 5.0, New(0, 0).DistanceToPoint(New(3, 4)))
	assert.Equal(t, 25.0, New(0, 0).DistanceSquaredToPoint(New(3, 4)))
}

func TestPoint_DotProduct(t *testing.T) {
	assert.Equal(t, 11.0, New(2, 3).DotProduct(New(4, 1)))
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		opts     []options.GeometryOptionsFunc
		expected bool
	}{
		"(2,3) != (4,5)":           {p: New(2, 3), q: New(4, 5), expected: false},
		"(2,3) == (2,3)":           {p: New(2, 3), q: New(2, 3), expected: true},
		"0.3 != 0.2+0.1 exactly":   {p: New(0.2+0.1, 0.2+0.1), q: New(0.3, 0.3), expected: false},
		"0.3 ~= 0.2+0.1 w/epsilon": {p: New(0.2+0.1, 0.2+0.1), q: New(0.3, 0.3), opts: []options.GeometryOptionsFunc{options.WithEpsilon(1e-9)}, expected: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Eq(tc.q, tc.opts...))
		})
	}
}

func TestPoint_Rotate(t *testing.T) {
	tests := map[string]struct {
		point, pivot Point
		angle        float64
		expected     Point
	}{
		"rotate 90 degrees around origin": {New(1, 0), New(0, 0), math.Pi / 2, New(0, 1)},
		"rotate 180 degrees around origin": {New(1, 1), New(0, 0), math.Pi, New(-1, -1)},
		"rotate 90 degrees around (1,1)":  {New(2, 1), New(1, 1), math.Pi / 2, New(1, 2)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.point.Rotate(tc.pivot, tc.angle)
			assert.InDelta(t, tc.expected.x, got.x, 1e-9)
			assert.InDelta(t, tc.expected.y, got.y, 1e-9)
		})
	}
}

func TestPoint_MarshalUnmarshalJSON(t *testing.T) {
	p := New(3.5, 7.2)
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Point
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, p.Eq(got))
}

func TestPoint_Negate(t *testing.T) {
	assert.Equal(t, New(-3, 4), New(3, -4).Negate())
}

func TestPoint_RelationshipToPoint(t *testing.T) {
	assert.Equal(t, types.RelationshipEqual, New(1, 1).RelationshipToPoint(New(1, 1)))
	assert.Equal(t, types.RelationshipDisjoint, New(1, 1).RelationshipToPoint(New(2, 2)))
}

func TestPoint_Scale(t *testing.T) {
	got := New(4, 4).Scale(New(0, 0), 2)
	assert.Equal(t, New(8, 8), got)
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1,2)", New(1, 2).String())
}

func TestPoint_Translate(t *testing.T) {
	assert.Equal(t, New(3, 5), New(1, 2).Translate(New(2, 3)))
}

func TestPoint_XY(t *testing.T) {
	p := New(9, -2)
	assert.Equal(t, 9.0, p.X())
	assert.Equal(t, -2.0, p.Y())
}

func TestNewPointFromImagePoint(t *testing.T) {
	assert.Equal(t, New(5, 6), NewFromImagePoint(image.Point{X: 5, Y: 6}))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, New(0, 0), Origin())
}

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Point
		epsilon  float64
		expected types.PointOrientation
	}{
		"counter-clockwise turn": {
			p: New(0, 0), q: New(1, 0), r: New(1, 1),
			expected: types.PointsCounterClockwise,
		},
		"clockwise turn": {
			p: New(0, 0), q: New(1, 1), r: New(1, 0),
			expected: types.PointsClockwise,
		},
		"collinear points": {
			p: New(0, 0), q: New(1, 1), r: New(2, 2),
			expected: types.PointsCollinear,
		},
		"nearly collinear within epsilon": {
			p: New(0, 0), q: New(10, 0), r: New(5, 1e-9),
			epsilon:  1e-6,
			expected: types.PointsCollinear,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Orientation(tc.p, tc.q, tc.r, tc.epsilon))
		})
	}
}
