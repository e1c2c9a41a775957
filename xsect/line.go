package xsect

import (
	"math"

	"github.com/mikenye/plinegeom/numeric"
	"github.com/mikenye/plinegeom/point"
)

// LineLine computes the intersection between the line segment a1->a2 and the line
// segment b1->b2.
//
// Collinear, overlapping segments report [types.IntersectionOverlap] with the bounds of
// the shared region; a single crossing within both segments' bounds reports
// [types.IntersectionPoint]; anything else reports [types.IntersectionNone].
func LineLine(a1, a2, b1, b2 point.Point, epsilon float64) Intersection {
	dir1 := a2.Sub(a1)
	dir2 := b2.Sub(b1)

	denominator := dir1.CrossProduct(dir2)

	if denominator == 0 {
		ab1 := b1.Sub(a1)
		if ab1.CrossProduct(dir1) != 0 {
			return None() // parallel, not collinear
		}

		dirLenSquared := dir1.DotProduct(dir1)
		if dirLenSquared == 0 {
			// a1 == a2: the "segment" is a point. Treat as a point-on-segment test.
			if b1.DistanceToPoint(a1) <= epsilon || b2.DistanceToPoint(a1) <= epsilon {
				return Single(a1)
			}
			return None()
		}

		tStart := b1.Sub(a1).DotProduct(dir1) / dirLenSquared
		tEnd := b2.Sub(a1).DotProduct(dir1) / dirLenSquared
		if tStart > tEnd {
			tStart, tEnd = tEnd, tStart
		}

		overlapStart := math.Max(0, tStart)
		overlapEnd := math.Min(1, tEnd)
		if overlapStart > overlapEnd {
			return None()
		}

		start := point.New(
			numeric.SnapToEpsilon(a1.X()+overlapStart*dir1.X(), epsilon),
			numeric.SnapToEpsilon(a1.Y()+overlapStart*dir1.Y(), epsilon),
		)
		end := point.New(
			numeric.SnapToEpsilon(a1.X()+overlapEnd*dir1.X(), epsilon),
			numeric.SnapToEpsilon(a1.Y()+overlapEnd*dir1.Y(), epsilon),
		)

		if start.Eq(end) {
			return Single(start)
		}
		return Overlap(start, end)
	}

	ab1 := b1.Sub(a1)
	t := ab1.CrossProduct(dir2) / denominator
	u := ab1.CrossProduct(dir1) / denominator

	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return None()
	}

	intersection := point.New(
		numeric.SnapToEpsilon(a1.X()+t*dir1.X(), epsilon),
		numeric.SnapToEpsilon(a1.Y()+t*dir1.Y(), epsilon),
	)
	return Single(intersection)
}
