// Package boolean implements §4.8's set operations (union, intersection, difference,
// symmetric difference) on two closed, non-self-intersecting polylines: find every
// pairwise intersection, slice each input at those points, classify each slice by
// whether it lies inside or outside the other polyline, and stitch the kept slices back
// together per the operator's keep rule.
package boolean

import (
	"fmt"
	"math"

	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/stitch"
)

// Apply runs op on pline1 and pline2, returning the resulting positive (CCW) and
// negative (CW, hole) polylines per §4.8. Both inputs must be closed; callers are
// responsible for ensuring neither self-intersects, per the preconditions in §4.8.
func Apply(pline1, pline2 *polyline.Polyline, op Op, opts ...Option) (Result, error) {
	if !pline1.IsClosed() || !pline2.IsClosed() {
		return Result{}, fmt.Errorf("boolean: both inputs must be closed")
	}
	if pline1.SegmentCount() == 0 || pline2.SegmentCount() == 0 {
		return Result{}, fmt.Errorf("boolean: both inputs must have at least one segment")
	}

	o := apply(opts)
	if o.pline1Index == nil {
		o.pline1Index = buildIndex(pline1)
	}

	cuts1, cuts2, anyOverlap, anyIntersect := findIntersections(pline1, pline2, o.pline1Index, o.posEqualEps)

	if !anyIntersect {
		return containmentResult(pline1, pline2, op), nil
	}

	slices1 := sliceAndClassify(pline1, cuts1, pline2)
	slices2 := sliceAndClassify(pline2, cuts2, pline1)

	var stitched []*polyline.Polyline
	switch op {
	case Or:
		kept := append(keepOutside(slices1), keepOutside(slices2)...)
		stitched = stitch.Stitch(kept, o.posEqualEps)
	case And:
		kept := append(keepInside(slices1), keepInside(slices2)...)
		stitched = stitch.Stitch(kept, o.posEqualEps)
	case Not:
		kept := append(keepOutside(slices1), reverseSlices(keepInside(slices2))...)
		stitched = stitch.Stitch(kept, o.posEqualEps)
	case Xor:
		// The outside and inside slices meet at every intersection point, so a single
		// combined stitch would hit 4-valent nodes the turn-minimizing traversal can't
		// disambiguate. Stitching each half independently keeps every node 2-valent: the
		// outside halves trace the union boundary, the reversed inside halves trace the
		// shared region's boundary as a hole.
		outer := append(keepOutside(slices1), keepOutside(slices2)...)
		inner := reverseSlices(append(keepInside(slices1), keepInside(slices2)...))
		stitched = append(stitch.Stitch(outer, o.posEqualEps), stitch.Stitch(inner, o.posEqualEps)...)
	default:
		return Result{}, fmt.Errorf("boolean: unsupported operator %v", op)
	}

	result := Result{}
	for _, pl := range stitched {
		area := pl.Area()
		if math.Abs(area) < o.collapsedAreaEps {
			continue
		}
		if area > 0 {
			result.Positive = append(result.Positive, pl)
			result.PositiveFrom = append(result.PositiveFrom, FromBoth)
		} else {
			result.Negative = append(result.Negative, pl)
			result.NegativeFrom = append(result.NegativeFrom, FromBoth)
		}
	}

	if anyOverlap {
		result.Info = Overlapping
	} else {
		result.Info = NoIntersect
	}
	return result, nil
}

// containmentResult implements §4.8 step 2: when pline1 and pline2 share no
// intersection point, the outcome is decided entirely by which (if either) contains the
// other, tested via the winding number of one vertex of each against the other polyline.
//
// Every polyline placed in the result is normalized with [asPositive]/[asNegative] rather
// than assumed to already be CCW: a caller is free to pass an already CW "hole" polyline
// (as [github.com/mikenye/plinegeom/shape] does for islands), and the result's bucketing
// must reflect what the polyline encloses, not the direction it happened to arrive in.
func containmentResult(pline1, pline2 *polyline.Polyline, op Op) Result {
	p1In2 := pline2.WindingNumber(pline1.Vertices()[0].Point()) != 0
	p2In1 := pline1.WindingNumber(pline2.Vertices()[0].Point()) != 0

	result := Result{}

	switch {
	case p1In2:
		result.Info = Pline1InsidePline2
		switch op {
		case Or:
			result.Positive = []*polyline.Polyline{asPositive(pline2)}
			result.PositiveFrom = []Source{FromPline2}
		case And:
			result.Positive = []*polyline.Polyline{asPositive(pline1)}
			result.PositiveFrom = []Source{FromPline1}
		case Not:
			// pline1 wholly inside pline2: pline1 - pline2 is empty.
		case Xor:
			result.Positive = []*polyline.Polyline{asPositive(pline2)}
			result.PositiveFrom = []Source{FromPline2}
			result.Negative = []*polyline.Polyline{asNegative(pline1)}
			result.NegativeFrom = []Source{FromPline1}
		}
	case p2In1:
		result.Info = Pline2InsidePline1
		switch op {
		case Or:
			result.Positive = []*polyline.Polyline{asPositive(pline1)}
			result.PositiveFrom = []Source{FromPline1}
		case And:
			result.Positive = []*polyline.Polyline{asPositive(pline2)}
			result.PositiveFrom = []Source{FromPline2}
		case Not:
			result.Positive = []*polyline.Polyline{asPositive(pline1)}
			result.PositiveFrom = []Source{FromPline1}
			result.Negative = []*polyline.Polyline{asNegative(pline2)}
			result.NegativeFrom = []Source{FromPline2}
		case Xor:
			result.Positive = []*polyline.Polyline{asPositive(pline1)}
			result.PositiveFrom = []Source{FromPline1}
			result.Negative = []*polyline.Polyline{asNegative(pline2)}
			result.NegativeFrom = []Source{FromPline2}
		}
	default:
		if extentsOverlap(pline1, pline2) {
			result.Info = NoIntersect
		} else {
			result.Info = Disjoint
		}
		switch op {
		case Or:
			result.Positive = []*polyline.Polyline{asPositive(pline1), asPositive(pline2)}
			result.PositiveFrom = []Source{FromPline1, FromPline2}
		case And:
			// no overlap, nothing to intersect.
		case Not:
			result.Positive = []*polyline.Polyline{asPositive(pline1)}
			result.PositiveFrom = []Source{FromPline1}
		case Xor:
			result.Positive = []*polyline.Polyline{asPositive(pline1), asPositive(pline2)}
			result.PositiveFrom = []Source{FromPline1, FromPline2}
		}
	}

	return result
}

// asPositive returns pl if it already has positive (CCW) signed area, or its direction
// inversion otherwise.
func asPositive(pl *polyline.Polyline) *polyline.Polyline {
	if pl.Area() < 0 {
		return pl.InvertDirection()
	}
	return pl
}

// asNegative returns pl if it already has negative (CW) signed area, or its direction
// inversion otherwise.
func asNegative(pl *polyline.Polyline) *polyline.Polyline {
	if pl.Area() > 0 {
		return pl.InvertDirection()
	}
	return pl
}

func extentsOverlap(pline1, pline2 *polyline.Polyline) bool {
	box1, ok1 := pline1.Extents()
	box2, ok2 := pline2.Extents()
	return ok1 && ok2 && box1.Overlaps(box2)
}

// buildIndex constructs an [aabb.Index] over pl's segments, with item id i corresponding
// to pl.Segment(i).
func buildIndex(pl *polyline.Polyline) *aabb.Index {
	n := pl.SegmentCount()
	boxes := make([]aabb.Box, n)
	for i := 0; i < n; i++ {
		min, max := pl.Segment(i).BoundingBox()
		boxes[i] = aabb.NewBox(min, max)
	}
	return aabb.Build(boxes)
}
