// Package point defines the foundational geometric primitive in the plinegeom library, the Point type.
// All other geometric types—such as segments, circles, and polylines—are built upon this type.
//
// # Overview
//
// The Point type represents a two-dimensional point with float64 coordinates. It provides
// fundamental geometric operations such as translation, distance measurement, vector arithmetic, and angle
// calculations. Points are essential building blocks in computational geometry, enabling higher-level
// constructs such as arc segments and polylines.
//
// # Precision Control with Epsilon
//
// Equality and relationship methods accept [options.GeometryOptionsFunc] options so that callers can supply
// an explicit epsilon per call (via [options.WithEpsilon]), rather than relying on any package-level default.
// This mirrors spec.md's requirement that the distinct epsilon budgets used by offsetting and boolean
// operations never be collapsed into a single implicit tolerance.
package point

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/mikenye/plinegeom/numeric"
	"github.com/mikenye/plinegeom/options"
	"github.com/mikenye/plinegeom/types"
)

var origin = New(0, 0)

// Origin returns the origin point (0,0) in the 2D coordinate system.
func Origin() Point {
	return origin
}

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// NewFromImagePoint creates a new Point from an [image.Point].
func NewFromImagePoint(q image.Point) Point {
	return Point{x: float64(q.X), y: float64(q.Y)}
}

// Add returns the sum of two points as if they were vectors: (p.X+q.X, p.Y+q.Y).
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// AngleBetween calculates the angle in radians between two points, a and b, relative to
// the calling Point treated as origin. Returns math.NaN() if either vector has zero length.
func (p Point) AngleBetween(a, b Point) float64 {
	return math.Acos(p.CosineOfAngleBetween(a, b))
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CosineOfAngleBetween calculates the cosine of the angle between two points, a and b,
// relative to the calling Point treated as origin, via the dot product and vector magnitudes.
func (p Point) CosineOfAngleBetween(a, b Point) float64 {
	vectorOA := a.Sub(p)
	vectorOB := b.Sub(p)

	magnitudeOA := p.DistanceToPoint(a)
	magnitudeOB := p.DistanceToPoint(b)
	if magnitudeOA == 0 || magnitudeOB == 0 {
		return math.NaN()
	}

	cosTheta := vectorOA.DotProduct(vectorOB) / (magnitudeOA * magnitudeOB)
	return math.Max(-1, math.Min(1, cosTheta))
}

// CrossProduct returns the 2D cross product (determinant) of two vectors: a.x*b.y - a.y*b.x.
// Positive indicates a counter-clockwise turn, negative a clockwise turn, zero collinear.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// DotProduct calculates the dot product of the vectors represented by p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Eq determines whether p equals q, exactly by default or within an epsilon tolerance
// supplied via [options.WithEpsilon].
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// RelationshipToPoint determines whether p and other are [types.RelationshipEqual] or
// [types.RelationshipDisjoint].
func (p Point) RelationshipToPoint(other Point, opts ...options.GeometryOptionsFunc) types.Relationship {
	if p.Eq(other, opts...) {
		return types.RelationshipEqual
	}
	return types.RelationshipDisjoint
}

// Rotate rotates p by radians counter-clockwise around pivot.
func (p Point) Rotate(pivot Point, radians float64) Point {
	tx, ty := p.x-pivot.x, p.y-pivot.y
	cos, sin := math.Cos(radians), math.Sin(radians)
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos
	return New(rx+pivot.x, ry+pivot.y)
}

// Scale scales p by factor k relative to reference point ref.
func (p Point) Scale(ref Point, k float64) Point {
	return New(ref.x+(p.x-ref.x)*k, ref.y+(p.y-ref.y)*k)
}

// String returns a string representation of p in the form "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves p by displacement vector delta.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}

// X returns the x-coordinate of p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of p.
func (p Point) Y() float64 {
	return p.y
}
