// Package offset implements parallel offsetting of a [polyline.Polyline] by a signed
// distance, per §4.5-§4.7: each segment is offset independently, rounded joins bridge
// the gaps, the result is cut into slices that lie far enough from the original, and
// valid slices are stitched back into zero or more output polylines.
package offset

import (
	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/stitch"
)

// Parallel offsets pl by the signed distance d and returns the resulting polylines (zero
// or more, per §4.6-§4.7). d's sign follows the "positive offsets to the left of travel"
// convention: for a counter-clockwise closed polyline
// this is inward, for a clockwise one it is outward.
func Parallel(pl *polyline.Polyline, d float64, opts ...Option) ([]*polyline.Polyline, error) {
	o := apply(opts)

	if pl.SegmentCount() == 0 {
		return nil, nil
	}

	if o.index == nil {
		o.index = buildIndex(pl)
	}

	raw := rawOffset(pl, d)
	slices := extractSlices(pl, pl.IsClosed(), raw, d, o)
	return stitch.Stitch(slices, o.sliceJoinEps), nil
}

// buildIndex constructs an [aabb.Index] over pl's segments, with item id i corresponding
// to pl.Segment(i), for use accelerating the original-distance queries in extractSlices.
func buildIndex(pl *polyline.Polyline) *aabb.Index {
	n := pl.SegmentCount()
	boxes := make([]aabb.Box, n)
	for i := 0; i < n; i++ {
		min, max := pl.Segment(i).BoundingBox()
		boxes[i] = aabb.NewBox(min, max)
	}
	return aabb.Build(boxes)
}
