package boolean

import (
	"sort"

	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/stitch"
	"github.com/mikenye/plinegeom/types"
	"github.com/mikenye/plinegeom/xsect"
)

// findIntersections implements §4.8 step 1: every segment of pline2 is tested against
// the pline1 segments whose boxes it overlaps (via index1), and the resulting cut
// parameters are recorded against both polylines' segment lists. Overlap-type
// intersections are cut at their start/end and additionally reported via anyOverlap.
func findIntersections(pline1, pline2 *polyline.Polyline, index1 *aabb.Index, eps float64) (cuts1, cuts2 [][]float64, anyOverlap, anyIntersect bool) {
	cuts1 = make([][]float64, pline1.SegmentCount())
	cuts2 = make([][]float64, pline2.SegmentCount())

	for j := 0; j < pline2.SegmentCount(); j++ {
		segB := pline2.Segment(j)
		min, max := segB.BoundingBox()
		box := aabb.NewBox(min, max)

		index1.QueryBox(box, func(i int) bool {
			segA := pline1.Segment(i)
			result := xsect.Segment(segA, segB, eps)

			switch result.Type {
			case types.IntersectionPoint:
				cuts1[i] = append(cuts1[i], segA.Param(result.Point))
				cuts2[j] = append(cuts2[j], segB.Param(result.Point))
				anyIntersect = true
			case types.IntersectionTwoPoints:
				cuts1[i] = append(cuts1[i], segA.Param(result.Point), segA.Param(result.Point2))
				cuts2[j] = append(cuts2[j], segB.Param(result.Point), segB.Param(result.Point2))
				anyIntersect = true
			case types.IntersectionOverlap:
				cuts1[i] = append(cuts1[i], segA.Param(result.OverlapStart), segA.Param(result.OverlapEnd))
				cuts2[j] = append(cuts2[j], segB.Param(result.OverlapStart), segB.Param(result.OverlapEnd))
				anyOverlap = true
				anyIntersect = true
			}
			return true
		})
	}

	return cuts1, cuts2, anyOverlap, anyIntersect
}

// classifiedSlice is a maximal run of consecutive pieces of one polyline that all share
// the same inside/outside classification against the other polyline.
type classifiedSlice struct {
	slice       stitch.Slice
	insideOther bool
}

// sliceAndClassify implements §4.8 step 3: cuts pl at the recorded parameters, then
// groups the resulting pieces into maximal runs sharing the same inside/outside
// classification against other (tested at each piece's midpoint).
func sliceAndClassify(pl *polyline.Polyline, cuts [][]float64, other *polyline.Polyline) []classifiedSlice {
	var pieces []arcseg.Segment
	for i := 0; i < pl.SegmentCount(); i++ {
		pieces = append(pieces, splitAtParams(pl.Segment(i), cuts[i])...)
	}
	if len(pieces) == 0 {
		return nil
	}

	classify := func(piece arcseg.Segment) bool {
		return other.WindingNumber(piece.Midpoint()) != 0
	}

	var slices []classifiedSlice
	var current []arcseg.Segment
	currentInside := classify(pieces[0])

	flush := func() {
		if len(current) > 0 {
			slices = append(slices, classifiedSlice{slice: stitch.Slice{Segments: current}, insideOther: currentInside})
			current = nil
		}
	}

	for _, piece := range pieces {
		inside := classify(piece)
		if len(current) > 0 && inside != currentInside {
			flush()
		}
		currentInside = inside
		current = append(current, piece)
	}
	flush()

	// pl is always closed (Apply requires it), so the run that starts at piece 0 may
	// continue the run that ends at the last piece; merge them the same way offset's
	// raw-offset slicing merges its wraparound run.
	if len(slices) > 1 && slices[0].insideOther == slices[len(slices)-1].insideOther {
		first, last := slices[0], slices[len(slices)-1]
		merged := append(append([]arcseg.Segment{}, last.slice.Segments...), first.slice.Segments...)
		slices[0] = classifiedSlice{slice: stitch.Slice{Segments: merged}, insideOther: first.insideOther}
		slices = slices[:len(slices)-1]
	}

	return slices
}

func keepOutside(slices []classifiedSlice) []stitch.Slice {
	var kept []stitch.Slice
	for _, s := range slices {
		if !s.insideOther {
			kept = append(kept, s.slice)
		}
	}
	return kept
}

func keepInside(slices []classifiedSlice) []stitch.Slice {
	var kept []stitch.Slice
	for _, s := range slices {
		if s.insideOther {
			kept = append(kept, s.slice)
		}
	}
	return kept
}

// reverseSlices reverses both the segment order within each slice and each segment
// itself, for the subtraction operator's inverted-direction boundary (§4.8 step 4, Not).
func reverseSlices(slices []stitch.Slice) []stitch.Slice {
	out := make([]stitch.Slice, len(slices))
	for i, s := range slices {
		segs := make([]arcseg.Segment, len(s.Segments))
		for j, seg := range s.Segments {
			segs[len(s.Segments)-1-j] = seg.Reversed()
		}
		out[i] = stitch.Slice{Segments: segs}
	}
	return out
}

// splitAtParams cuts seg at every interior parameter in params (deduplicated and
// sorted), returning the resulting pieces in order. Duplicated from offset's helper of
// the same name: the two call sites filter pieces by different criteria downstream
// (offset-distance threshold vs. inside/outside classification), so a shared extraction
// would need to thread classification-specific state through a generic cutter.
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
