package abi

import (
	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/polyline"
)

// CreateAABBIndex builds an exact per-segment AABB index over the polyline at h and
// writes its handle to out.
func CreateAABBIndex(h PolylineHandle, out *IndexHandle) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	idx := buildSegmentIndex(m.build())
	*out = IndexHandle(indexes.put(idx))
	return OK
}

func buildSegmentIndex(pl *polyline.Polyline) *aabb.Index {
	n := pl.SegmentCount()
	boxes := make([]aabb.Box, n)
	for i := 0; i < n; i++ {
		min, max := pl.Segment(i).BoundingBox()
		boxes[i] = aabb.NewBox(min, max)
	}
	return aabb.Build(boxes)
}

// CreateApproxAABBIndex builds the same exact per-segment index as [CreateAABBIndex].
// §6.1 exposes this as a distinct constructor; the Go engine has no separate approximate
// build, so arc boxes are not loosened and this index is no cheaper to build.
func CreateApproxAABBIndex(h PolylineHandle, out *IndexHandle) Status {
	return CreateAABBIndex(h, out)
}

// AABBIndexFree releases an index handle.
func AABBIndexFree(h IndexHandle) Status {
	indexes.delete(uint64(h))
	return OK
}

// AABBIndexGetExtents writes the index's overall bounding box into (minX, minY, maxX,
// maxY), or NaN in all four when the index is empty, per §6.1.
func AABBIndexGetExtents(h IndexHandle, minX, minY, maxX, maxY *float64) Status {
	if minX == nil || minY == nil || maxX == nil || maxY == nil {
		return NullHandle
	}
	idx, ok := indexes.get(uint64(h))
	if !ok {
		return NullHandle
	}
	box := idx.ExtentsOrNaN()
	*minX, *minY, *maxX, *maxY = box.Min.X(), box.Min.Y(), box.Max.X(), box.Max.Y()
	return OK
}
