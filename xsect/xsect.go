// Package xsect is the intersect kernel shared by the offsetting and boolean packages.
//
// # Overview
//
// xsect computes intersections between the two curve types a plinegeom segment can be:
// a straight line or a circular arc. Every entry point returns an [Intersection], a tagged
// result that distinguishes "no intersection" from a single touching point, from two
// transversal crossing points, from a coincident overlap region, rather than overloading
// a single point-or-nil return across four distinct outcomes.
//
// [Segment] dispatches on the concrete kind of each [arcseg.Segment] (line or arc) and
// additionally clips whichever of [LineLine], [LineCircle], or [CircleCircle] applies down
// to the swept portion of each input, since two arcs can intersect a supporting circle
// somewhere outside the angular range either one actually covers.
package xsect

import (
	"fmt"

	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/types"
)

// Intersection is the tagged result of intersecting two curves.
type Intersection struct {
	// Type discriminates which of the remaining fields are meaningful.
	Type types.IntersectionType

	// Point is populated when Type is [types.IntersectionPoint].
	Point point.Point

	// Point2 is additionally populated when Type is [types.IntersectionTwoPoints]; Point
	// holds the first of the two crossing points and Point2 the second.
	Point2 point.Point

	// OverlapStart and OverlapEnd bound the coincident region when Type is
	// [types.IntersectionOverlap].
	OverlapStart, OverlapEnd point.Point
}

// None returns the result for two curves that do not intersect.
func None() Intersection {
	return Intersection{Type: types.IntersectionNone}
}

// Single returns the result for two curves that meet at exactly one point.
func Single(p point.Point) Intersection {
	return Intersection{Type: types.IntersectionPoint, Point: p}
}

// Two returns the result for two curves that cross at exactly two distinct points.
func Two(p1, p2 point.Point) Intersection {
	return Intersection{Type: types.IntersectionTwoPoints, Point: p1, Point2: p2}
}

// Overlap returns the result for two curves that coincide over the region from start to end.
func Overlap(start, end point.Point) Intersection {
	return Intersection{Type: types.IntersectionOverlap, OverlapStart: start, OverlapEnd: end}
}

// IsNone reports whether the intersection is empty.
func (r Intersection) IsNone() bool {
	return r.Type == types.IntersectionNone
}

// String returns a human-readable description of the intersection result.
func (r Intersection) String() string {
	switch r.Type {
	case types.IntersectionNone:
		return "none"
	case types.IntersectionPoint:
		return fmt.Sprintf("point %s", r.Point)
	case types.IntersectionTwoPoints:
		return fmt.Sprintf("points %s, %s", r.Point, r.Point2)
	case types.IntersectionOverlap:
		return fmt.Sprintf("overlap %s -> %s", r.OverlapStart, r.OverlapEnd)
	default:
		panic(fmt.Errorf("unsupported types.IntersectionType: %d", r.Type))
	}
}
