package offset

import (
	"math"
	"sort"

	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/stitch"
	"github.com/mikenye/plinegeom/types"
	"github.com/mikenye/plinegeom/xsect"
)

// extractSlices implements §4.6: cuts the raw offset polyline at self-intersections (only
// when handleSelfIntersects is set) and at intersections with the original polyline, then keeps only the portions that lie at
// least |d|-offset_dist_eps from the original.
func extractSlices(original *polyline.Polyline, rawClosed bool, raw []rawOffsetSegment, d float64, o Options) []stitch.Slice {
	segs := make([]arcseg.Segment, 0, len(raw))
	for _, r := range raw {
		if r.collapsed || r.seg.Length() <= 0 {
			continue
		}
		segs = append(segs, r.seg)
	}
	if len(segs) == 0 {
		return nil
	}

	cuts := make([][]float64, len(segs))

	if o.handleSelfIntersects {
		n := len(segs)
		for i := 0; i < n; i++ {
			jMax := n
			if !rawClosed {
				jMax = n - 1
			}
			for j := i + 1; j < jMax; j++ {
				if j == i+1 || (rawClosed && i == 0 && j == n-1) {
					continue // adjacent segments trivially share an endpoint
				}
				addCutPoints(segs, i, j, o.posEqualEps, cuts)
			}
		}
	}

	for i, seg := range segs {
		original.Segments(func(_ int, origSeg arcseg.Segment) bool {
			result := xsect.Segment(seg, origSeg, o.posEqualEps)
			switch result.Type {
			case types.IntersectionPoint:
				cuts[i] = append(cuts[i], seg.Param(result.Point))
			case types.IntersectionTwoPoints:
				cuts[i] = append(cuts[i], seg.Param(result.Point), seg.Param(result.Point2))
			}
			return true
		})
	}

	var pieces []arcseg.Segment
	for i, seg := range segs {
		pieces = append(pieces, splitAtParams(seg, cuts[i])...)
	}

	absDist := math.Abs(d)
	threshold := absDist - o.offsetDistEps

	var slices []stitch.Slice
	var current []arcseg.Segment
	flush := func() {
		if len(current) > 0 {
			slices = append(slices, stitch.Slice{Segments: current})
			current = nil
		}
	}
	for _, piece := range pieces {
		if isValidPiece(piece, original, o.index, threshold) {
			current = append(current, piece)
			continue
		}
		flush()
	}
	flush()

	// A fully-valid closed raw offset wraps its last slice into its first.
	if rawClosed && len(slices) > 1 {
		first, last := slices[0], slices[len(slices)-1]
		if first.Start().DistanceToPoint(last.End()) <= o.sliceJoinEps {
			merged := append(append([]arcseg.Segment{}, last.Segments...), first.Segments...)
			slices[0] = stitch.Slice{Segments: merged}
			slices = slices[:len(slices)-1]
		}
	}

	return slices
}

// addCutPoints intersects segs[i] against segs[j] and, for a genuine crossing (not an
// overlap, which is retained as geometry rather than treated as a cut point per §4.6),
// records the crossing parameter on each.
func addCutPoints(segs []arcseg.Segment, i, j int, eps float64, cuts [][]float64) {
	result := xsect.Segment(segs[i], segs[j], eps)
	switch result.Type {
	case types.IntersectionPoint:
		cuts[i] = append(cuts[i], segs[i].Param(result.Point))
		cuts[j] = append(cuts[j], segs[j].Param(result.Point))
	case types.IntersectionTwoPoints:
		cuts[i] = append(cuts[i], segs[i].Param(result.Point), segs[i].Param(result.Point2))
		cuts[j] = append(cuts[j], segs[j].Param(result.Point), segs[j].Param(result.Point2))
	}
}

// splitAtParams cuts seg at every interior parameter in params (deduplicated and
// sorted), returning the resulting pieces in order.
func splitAtParams(seg arcseg.Segment, params []float64) []arcseg.Segment {
	const eps = 1e-9
	filtered := make([]float64, 0, len(params))
	for _, t := range params {
		if t > eps && t < 1-eps {
			filtered = append(filtered, t)
		}
	}
	sort.Float64s(filtered)

	deduped := filtered[:0]
	for i, t := range filtered {
		if i == 0 || t-deduped[len(deduped)-1] > eps {
			deduped = append(deduped, t)
		}
	}

	if len(deduped) == 0 {
		return []arcseg.Segment{seg}
	}

	var pieces []arcseg.Segment
	remaining := seg
	prevT := 0.0
	for _, t := range deduped {
		localT := (t - prevT) / (1 - prevT)
		first, second := remaining.SplitAt(localT)
		pieces = append(pieces, first)
		remaining = second
		prevT = t
	}
	pieces = append(pieces, remaining)
	return pieces
}

// isValidPiece samples several points along piece and rejects it if any sample lies
// closer than threshold to the original polyline, per §4.6 step 4.
func isValidPiece(piece arcseg.Segment, original *polyline.Polyline, index *aabb.Index, threshold float64) bool {
	samples := []float64{0.25, 0.5, 0.75}
	for _, t := range samples {
		p := piece.PointAt(t)
		if distanceToPolyline(original, index, p) < threshold {
			return false
		}
	}
	return true
}

// distanceToPolyline returns the distance from p to the nearest point on original,
// using index to narrow the candidate segments when supplied.
func distanceToPolyline(original *polyline.Polyline, index *aabb.Index, p point.Point) float64 {
	best := math.Inf(1)
	check := func(i int) {
		d := original.Segment(i).ClosestPoint(p).DistanceToPoint(p)
		if d < best {
			best = d
		}
	}

	if index == nil {
		for i := 0; i < original.SegmentCount(); i++ {
			check(i)
		}
		return best
	}

	radius := 1e-3
	for tries := 0; tries < 20; tries++ {
		found := false
		index.VisitWithin(p, radius, func(id int) bool {
			found = true
			check(id)
			return true
		})
		if found {
			// A box within radius only bounds its segment's true distance from below, so
			// a closer segment's box can still lie just beyond radius. Re-querying at the
			// now-confirmed distance best catches every segment whose box could possibly
			// beat it; anything outside that range has a box distance, and so a true
			// distance, greater than best already.
			index.VisitWithin(p, best, func(id int) bool {
				check(id)
				return true
			})
			return best
		}
		radius *= 2
	}
	for i := 0; i < original.SegmentCount(); i++ {
		check(i)
	}
	return best
}
