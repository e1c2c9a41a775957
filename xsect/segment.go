package xsect

import (
	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/numeric"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/types"
)

// Segment computes the intersection between two [arcseg.Segment] values, dispatching to
// [LineLine], [LineCircle], or [CircleCircle] based on whether each input is a line or an
// arc, and then clipping the result to the portion of each input's actual extent (its
// [0,1] parameter range for a line, its swept angle for an arc) rather than the full
// infinite line or circle either one lies on.
func Segment(a, b arcseg.Segment, epsilon float64) Intersection {
	switch {
	case a.IsLine() && b.IsLine():
		return LineLine(a.P1(), a.P2(), b.P1(), b.P2(), epsilon)
	case a.IsLine() && b.IsArc():
		return clipToArc(LineCircle(a.P1(), a.P2(), b.Circle(), epsilon), b, epsilon)
	case a.IsArc() && b.IsLine():
		return clipToArc(LineCircle(b.P1(), b.P2(), a.Circle(), epsilon), a, epsilon)
	default:
		return clipToArc(clipToArc(CircleCircle(a.Circle(), b.Circle(), epsilon), a, epsilon), b, epsilon)
	}
}

// clipToArc drops any point(s) in r that do not lie within arc's swept angle, demoting
// IntersectionTwoPoints to IntersectionPoint (or IntersectionNone) as points are dropped.
// Overlap results pass through unchanged: full-circle coincidence is out of scope for arc
// clipping since cavalier_contours-style segments never encode it as a distinct case.
func clipToArc(r Intersection, arc arcseg.Segment, epsilon float64) Intersection {
	if !arc.IsArc() || r.Type == types.IntersectionNone || r.Type == types.IntersectionOverlap {
		return r
	}

	onArc := func(p point.Point) bool {
		angle := arc.Circle().AngleOfPoint(p)
		return numeric.AngleInSweep(arc.StartAngle(), arc.SweepAngle(), angle, epsilon)
	}

	switch r.Type {
	case types.IntersectionPoint:
		if onArc(r.Point) {
			return r
		}
		return None()
	case types.IntersectionTwoPoints:
		p1ok, p2ok := onArc(r.Point), onArc(r.Point2)
		switch {
		case p1ok && p2ok:
			return r
		case p1ok:
			return Single(r.Point)
		case p2ok:
			return Single(r.Point2)
		default:
			return None()
		}
	default:
		return r
	}
}
