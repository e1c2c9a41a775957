package point

import (
	"math"

	"github.com/mikenye/plinegeom/types"
)

// Orientation determines the relative orientation of three points p, q, r using the sign of
// the cross product of (q-p) and (r-p). epsilon is scaled by the lengths of those two vectors
// so the collinearity test stays well-behaved regardless of segment scale.
func Orientation(p, q, r Point, epsilon float64) types.PointOrientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))

	scaledEpsilon := epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))

	if math.Abs(val) <= scaledEpsilon {
		return types.PointsCollinear
	}
	if val > 0 {
		return types.PointsCounterClockwise
	}
	return types.PointsClockwise
}
