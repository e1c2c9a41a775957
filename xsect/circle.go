package xsect

import (
	"math"

	"github.com/mikenye/plinegeom/circle"
	"github.com/mikenye/plinegeom/point"
)

// LineCircle computes the intersection between the infinite-length-clipped line segment
// p1->p2 and c's boundary.
//
// It solves the quadratic formed by substituting the line's parametric form into the
// circle equation. A discriminant within epsilon of zero counts as tangent
// ([types.IntersectionPoint]); a negative discriminant (beyond epsilon) is
// [types.IntersectionNone]; otherwise both roots are checked against the segment's
// parameter range [0, 1] and the surviving root(s) reported as [types.IntersectionPoint]
// or [types.IntersectionTwoPoints].
func LineCircle(p1, p2 point.Point, c circle.Circle, epsilon float64) Intersection {
	d := p2.Sub(p1)
	f := p1.Sub(c.Center())

	a := d.DotProduct(d)
	if a == 0 {
		// Degenerate "segment": single-point membership test.
		if math.Abs(p1.DistanceToPoint(c.Center())-c.Radius()) <= epsilon {
			return Single(p1)
		}
		return None()
	}
	b := 2 * f.DotProduct(d)
	cc := f.DotProduct(f) - c.Radius()*c.Radius()

	discriminant := b*b - 4*a*cc
	if discriminant < -epsilon {
		return None()
	}
	if discriminant < epsilon {
		t := -b / (2 * a)
		if t < -epsilon || t > 1+epsilon {
			return None()
		}
		return Single(pointAtParam(p1, d, t))
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	t1InRange := t1 >= -epsilon && t1 <= 1+epsilon
	t2InRange := t2 >= -epsilon && t2 <= 1+epsilon

	switch {
	case t1InRange && t2InRange:
		return Two(pointAtParam(p1, d, t1), pointAtParam(p1, d, t2))
	case t1InRange:
		return Single(pointAtParam(p1, d, t1))
	case t2InRange:
		return Single(pointAtParam(p1, d, t2))
	default:
		return None()
	}
}

func pointAtParam(origin, dir point.Point, t float64) point.Point {
	return point.New(origin.X()+t*dir.X(), origin.Y()+t*dir.Y())
}

// CircleCircle computes the intersection between the boundaries of two circles.
//
// Circles whose centers coincide and whose radii match within epsilon are fully
// coincident; this is reported as [types.IntersectionOverlap] spanning the whole circle
// (OverlapStart and OverlapEnd both set to the point at angle zero), since no finite
// point set describes it. Otherwise the classic two-circle distance test applies: no
// intersection when the circles are too far apart or one contains the other, a single
// tangent point when they touch, or two points when they cross.
func CircleCircle(c1, c2 circle.Circle, epsilon float64) Intersection {
	d := c1.Center().DistanceToPoint(c2.Center())
	r1, r2 := c1.Radius(), c2.Radius()

	if d <= epsilon && math.Abs(r1-r2) <= epsilon {
		p := c1.ClosestPoint(point.New(c1.Center().X()+1, c1.Center().Y()))
		return Overlap(p, p)
	}

	if d > r1+r2+epsilon || d < math.Abs(r1-r2)-epsilon {
		return None()
	}

	// Standard two-circle intersection: a is the distance from c1's center to the
	// midline between the two intersection points, along the line joining the centers.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	hSquared := r1*r1 - a*a
	if hSquared < 0 {
		hSquared = 0
	}
	h := math.Sqrt(hSquared)

	dir := c2.Center().Sub(c1.Center())
	unit := point.New(dir.X()/d, dir.Y()/d)
	mid := point.New(c1.Center().X()+a*unit.X(), c1.Center().Y()+a*unit.Y())

	if h <= epsilon {
		return Single(mid)
	}

	perp := point.New(-unit.Y(), unit.X())
	p1 := point.New(mid.X()+perp.X()*h, mid.Y()+perp.Y()*h)
	p2 := point.New(mid.X()-perp.X()*h, mid.Y()-perp.Y()*h)
	return Two(p1, p2)
}
