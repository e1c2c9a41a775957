// Package arcseg provides [Segment], a single line-or-arc view between two vertices.
//
// # Overview
//
// plinegeom polylines carry their arcs implicitly: a vertex's bulge describes the arc
// swept from that vertex to the next one. [Segment] makes that pairing explicit and
// self-contained, exposing the bounding box, length, midpoint, closest-point, and
// split-at-parameter operations that the offsetting and boolean packages need without
// each having to re-derive arc geometry from a bulge value.
//
// A bulge of zero denotes a straight segment. A non-zero bulge b encodes the included
// angle theta = 4*atan(b): positive sweeps counter-clockwise from p1 to p2, negative
// sweeps clockwise. |b| == 1 is a half circle.
//
// # Precision Control with Epsilon
//
// Methods that must decide whether a point lies on the segment accept an explicit
// epsilon rather than relying on any package-level default, consistent with the rest
// of plinegeom.
package arcseg

import (
	"fmt"
	"math"

	"github.com/mikenye/plinegeom/circle"
	"github.com/mikenye/plinegeom/numeric"
	"github.com/mikenye/plinegeom/point"
)

// Segment is a single line-or-arc view between two vertices, p1 and p2, with the arc
// (if any) encoded by bulge.
type Segment struct {
	p1, p2 point.Point
	bulge  float64
}

// New creates a new [Segment] between p1 and p2 with the given bulge.
func New(p1, p2 point.Point, bulge float64) Segment {
	return Segment{p1: p1, p2: p2, bulge: bulge}
}

// NewLine creates a new straight [Segment] between p1 and p2 (bulge 0).
func NewLine(p1, p2 point.Point) Segment {
	return Segment{p1: p1, p2: p2}
}

// P1 returns the segment's start point.
func (s Segment) P1() point.Point { return s.p1 }

// P2 returns the segment's end point.
func (s Segment) P2() point.Point { return s.p2 }

// Bulge returns the segment's bulge value.
func (s Segment) Bulge() float64 { return s.bulge }

// IsLine reports whether the segment is a straight line (bulge exactly zero).
func (s Segment) IsLine() bool { return s.bulge == 0 }

// IsArc reports whether the segment is a circular arc (bulge non-zero).
func (s Segment) IsArc() bool { return s.bulge != 0 }

// ChordLength returns the Euclidean distance between p1 and p2.
func (s Segment) ChordLength() float64 {
	return s.p1.DistanceToPoint(s.p2)
}

// arcGeometry computes the arc's center, radius, start angle, and signed sweep angle
// from the segment's endpoints and bulge, via the standard bulge-to-arc identities:
// radius = chord*(1+b^2)/(4*|b|), and the center lies on the chord's perpendicular
// bisector offset by h = signedRadius*cos(sweep/2).
//
// Panics if called on a line segment (IsArc() is false).
func (s Segment) arcGeometry() (center point.Point, radius, startAngle, sweepAngle float64) {
	if s.IsLine() {
		panic(fmt.Errorf("arcseg: arcGeometry called on a line segment"))
	}

	b := s.bulge
	chord := s.ChordLength()

	signedRadius := chord * (1 + b*b) / (4 * b)
	radius = math.Abs(signedRadius)
	sweepAngle = 4 * math.Atan(b)

	midX, midY := (s.p1.X()+s.p2.X())/2, (s.p1.Y()+s.p2.Y())/2
	dx, dy := s.p2.X()-s.p1.X(), s.p2.Y()-s.p1.Y()
	perpX, perpY := -dy/chord, dx/chord

	h := signedRadius * math.Cos(sweepAngle/2)
	center = point.New(midX+perpX*h, midY+perpY*h)

	startAngle = math.Atan2(s.p1.Y()-center.Y(), s.p1.X()-center.X())
	return center, radius, startAngle, sweepAngle
}

// Center returns the arc's center point.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) Center() point.Point {
	center, _, _, _ := s.arcGeometry()
	return center
}

// Radius returns the arc's radius.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) Radius() float64 {
	_, radius, _, _ := s.arcGeometry()
	return radius
}

// StartAngle returns the angle in radians, measured counter-clockwise from the positive
// x-axis, of p1 relative to the arc's center.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) StartAngle() float64 {
	_, _, startAngle, _ := s.arcGeometry()
	return startAngle
}

// SweepAngle returns the signed included angle swept from p1 to p2: positive for a
// counter-clockwise arc, negative for clockwise.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) SweepAngle() float64 {
	_, _, _, sweepAngle := s.arcGeometry()
	return sweepAngle
}

// EndAngle returns the angle in radians of p2 relative to the arc's center.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) EndAngle() float64 {
	_, _, startAngle, sweepAngle := s.arcGeometry()
	return startAngle + sweepAngle
}

// Circle returns the full circle that the arc's curvature lies on.
//
// Panics if the segment is a line (see [Segment.IsArc]).
func (s Segment) Circle() circle.Circle {
	center, radius, _, _ := s.arcGeometry()
	return circle.NewFromPoint(center, radius)
}

// Length returns the segment's length: the chord length for a line, or the arc length
// (radius*|sweep|) for an arc.
func (s Segment) Length() float64 {
	if s.IsLine() {
		return s.ChordLength()
	}
	_, radius, _, sweepAngle := s.arcGeometry()
	return radius * math.Abs(sweepAngle)
}

// Midpoint returns the point halfway along the segment: the chord midpoint for a line,
// or the point at half the swept angle for an arc.
func (s Segment) Midpoint() point.Point {
	return s.PointAt(0.5)
}

// PointAt returns the point at parameter t in [0, 1] along the segment, where t=0 is p1
// and t=1 is p2. For an arc, t interpolates the swept angle linearly, not arc length
// (matching how offsetting and stitching parametrize slices).
func (s Segment) PointAt(t float64) point.Point {
	if s.IsLine() {
		return point.New(
			s.p1.X()+(s.p2.X()-s.p1.X())*t,
			s.p1.Y()+(s.p2.Y()-s.p1.Y())*t,
		)
	}
	center, radius, startAngle, sweepAngle := s.arcGeometry()
	angle := startAngle + sweepAngle*t
	return point.New(center.X()+radius*math.Cos(angle), center.Y()+radius*math.Sin(angle))
}

// BoundingBox returns the minimum and maximum corners of the segment's axis-aligned
// bounding box.
func (s Segment) BoundingBox() (min, max point.Point) {
	minX, maxX := math.Min(s.p1.X(), s.p2.X()), math.Max(s.p1.X(), s.p2.X())
	minY, maxY := math.Min(s.p1.Y(), s.p2.Y()), math.Max(s.p1.Y(), s.p2.Y())

	if s.IsLine() {
		return point.New(minX, minY), point.New(maxX, maxY)
	}

	center, radius, startAngle, sweepAngle := s.arcGeometry()

	// The arc's extrema beyond its endpoints occur where the tangent is axis-aligned,
	// i.e. at the cardinal angles (0, pi/2, pi, 3pi/2) that fall within its sweep.
	for _, cardinal := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if !numeric.AngleInSweep(startAngle, sweepAngle, cardinal, 1e-9) {
			continue
		}
		px := center.X() + radius*math.Cos(cardinal)
		py := center.Y() + radius*math.Sin(cardinal)
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	return point.New(minX, minY), point.New(maxX, maxY)
}

// ClosestPoint returns the point on the segment closest to p.
func (s Segment) ClosestPoint(p point.Point) point.Point {
	if s.IsLine() {
		return s.closestPointOnLine(p)
	}

	center, radius, startAngle, sweepAngle := s.arcGeometry()
	angle := math.Atan2(p.Y()-center.Y(), p.X()-center.X())
	if numeric.AngleInSweep(startAngle, sweepAngle, angle, 1e-9) {
		return point.New(center.X()+radius*math.Cos(angle), center.Y()+radius*math.Sin(angle))
	}

	// p projects outside the swept arc; the closest point is whichever endpoint is nearer.
	if p.DistanceSquaredToPoint(s.p1) <= p.DistanceSquaredToPoint(s.p2) {
		return s.p1
	}
	return s.p2
}

func (s Segment) closestPointOnLine(p point.Point) point.Point {
	dx, dy := s.p2.X()-s.p1.X(), s.p2.Y()-s.p1.Y()
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return s.p1
	}
	t := ((p.X()-s.p1.X())*dx + (p.Y()-s.p1.Y())*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return point.New(s.p1.X()+t*dx, s.p1.Y()+t*dy)
}

// Param returns the parameter t in [0, 1] at which p lies along the segment (clamped to
// the nearest endpoint if p does not project cleanly onto it): chord projection for a
// line, fraction of the swept angle for an arc.
func (s Segment) Param(p point.Point) float64 {
	if s.IsLine() {
		dx, dy := s.p2.X()-s.p1.X(), s.p2.Y()-s.p1.Y()
		lengthSquared := dx*dx + dy*dy
		if lengthSquared == 0 {
			return 0
		}
		t := ((p.X()-s.p1.X())*dx + (p.Y()-s.p1.Y())*dy) / lengthSquared
		return math.Max(0, math.Min(1, t))
	}

	center, _, startAngle, sweepAngle := s.arcGeometry()
	angle := math.Atan2(p.Y()-center.Y(), p.X()-center.X())

	var delta float64
	if sweepAngle >= 0 {
		delta = numeric.NormalizeAngle(angle - startAngle)
	} else {
		delta = -numeric.NormalizeAngle(startAngle - angle)
	}
	t := delta / sweepAngle
	return math.Max(0, math.Min(1, t))
}

// ContainsPoint reports whether p lies on the segment (line or arc), within epsilon.
func (s Segment) ContainsPoint(p point.Point, epsilon float64) bool {
	return s.ClosestPoint(p).DistanceToPoint(p) <= epsilon
}

// SplitAt splits the segment at parameter t in (0, 1), returning the two resulting
// segments. The new bulge on each half is derived from the fraction of the swept angle
// it carries, via half-angle tangent identities, so the two halves still trace the same
// arc as the original.
func (s Segment) SplitAt(t float64) (first, second Segment) {
	mid := s.PointAt(t)
	if s.IsLine() {
		return NewLine(s.p1, mid), NewLine(mid, s.p2)
	}

	_, _, _, sweepAngle := s.arcGeometry()
	firstBulge := math.Tan(sweepAngle * t / 4)
	secondBulge := math.Tan(sweepAngle * (1 - t) / 4)
	return New(s.p1, mid, firstBulge), New(mid, s.p2, secondBulge)
}

// TangentAt returns the unit tangent direction vector at p1 (atStart true) or p2
// (atStart false), pointing in the direction of travel from p1 to p2.
func (s Segment) TangentAt(atStart bool) point.Point {
	if s.IsLine() {
		dx, dy := s.p2.X()-s.p1.X(), s.p2.Y()-s.p1.Y()
		length := math.Hypot(dx, dy)
		if length == 0 {
			return point.New(0, 0)
		}
		return point.New(dx/length, dy/length)
	}

	_, _, startAngle, sweepAngle := s.arcGeometry()
	angle := startAngle
	if !atStart {
		angle = startAngle + sweepAngle
	}
	radial := point.New(math.Cos(angle), math.Sin(angle))

	// Rotating the radial vector by +90 degrees gives the counter-clockwise tangent;
	// a clockwise (negative-bulge) arc travels the opposite way around its circle.
	tangent := point.New(-radial.Y(), radial.X())
	if sweepAngle < 0 {
		tangent = tangent.Negate()
	}
	return tangent
}

// Reversed returns the segment traversed from p2 to p1, with the bulge negated so the
// same arc geometry (if any) is preserved.
func (s Segment) Reversed() Segment {
	return Segment{p1: s.p2, p2: s.p1, bulge: -s.bulge}
}

// Eq reports whether s and other have the same endpoints and bulge, within epsilon.
func (s Segment) Eq(other Segment, epsilon float64) bool {
	return s.p1.DistanceToPoint(other.p1) <= epsilon &&
		s.p2.DistanceToPoint(other.p2) <= epsilon &&
		math.Abs(s.bulge-other.bulge) <= epsilon
}

// String returns a string representation of the segment, including its endpoints and bulge.
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s (bulge=%f)", s.p1, s.p2, s.bulge)
}
