package abi

import (
	"github.com/mikenye/plinegeom/offset"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/shape"
)

// ShapeOffsetOptions mirrors §6.2's shape-offset option struct. It maps onto
// [offset.Option] underneath, since §4.9's shape offset runs the same per-boundary
// offset engine as a standalone polyline's parallel offset.
type ShapeOffsetOptions struct {
	PosEqualEps   float64
	OffsetDistEps float64
	SliceJoinEps  float64
}

// ShapeOffsetOInit populates opts with §6.2's documented defaults.
func ShapeOffsetOInit(opts *ShapeOffsetOptions) Status {
	if opts == nil {
		return NullHandle
	}
	*opts = ShapeOffsetOptions{PosEqualEps: 1e-5, OffsetDistEps: 1e-4, SliceJoinEps: 1e-4}
	return OK
}

func (o ShapeOffsetOptions) toOptions() []offset.Option {
	return []offset.Option{
		offset.WithPosEqualEps(nonZero(o.PosEqualEps, 1e-5)),
		offset.WithSliceJoinEps(nonZero(o.SliceJoinEps, 1e-4)),
		offset.WithOffsetDistEps(nonZero(o.OffsetDistEps, 1e-4)),
	}
}

// ShapeCreate builds a shape from a list of polyline handles: the first CCW polyline
// found becomes the outer boundary, every other polyline becomes an island. §6.1
// describes the list as transferring conceptual ownership of its polylines to the shape.
func ShapeCreate(list PlineListHandle, out *ShapeHandle) Status {
	if out == nil {
		return NullHandle
	}
	handles, ok := lists.get(uint64(list))
	if !ok {
		return NullHandle
	}
	var outer *polyline.Polyline
	var islands []*polyline.Polyline
	for _, ph := range *handles {
		m, ok := polylines.get(uint64(ph))
		if !ok {
			return NullHandle
		}
		pl := m.build()
		if outer == nil && pl.Area() > 0 {
			outer = pl
		} else {
			islands = append(islands, pl)
		}
	}
	if outer == nil {
		return OutOfRange
	}
	s, err := shape.New(outer, islands...)
	if err != nil {
		return OutOfRange
	}
	*out = ShapeHandle(shapes.put(&s))
	return OK
}

// ShapeFree releases a shape handle.
func ShapeFree(h ShapeHandle) Status {
	shapes.delete(uint64(h))
	return OK
}

// ShapeParallelOffset offsets the shape at h by d and writes the resulting shape handle
// to out.
func ShapeParallelOffset(h ShapeHandle, d float64, o ShapeOffsetOptions, out *ShapeHandle) Status {
	if out == nil {
		return NullHandle
	}
	s, ok := shapes.get(uint64(h))
	if !ok {
		return NullHandle
	}
	result, err := s.ParallelOffset(d, o.toOptions()...)
	if err != nil {
		return OutOfRange
	}
	*out = ShapeHandle(shapes.put(&result))
	return OK
}

// ShapeGetOuter copies the shape's outer (CCW) boundary into a new polyline handle.
func ShapeGetOuter(h ShapeHandle, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	s, ok := shapes.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = PolylineHandle(polylines.put(&mutablePolyline{vertices: s.Outer.Vertices(), closed: s.Outer.IsClosed()}))
	return OK
}

// ShapeGetIslandCount writes the shape's island count to out.
func ShapeGetIslandCount(h ShapeHandle, out *int) Status {
	if out == nil {
		return NullHandle
	}
	s, ok := shapes.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = len(s.Islands)
	return OK
}

// ShapeGetIsland copies the i'th CW island into a new polyline handle.
func ShapeGetIsland(h ShapeHandle, i int, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	s, ok := shapes.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(s.Islands) {
		return OutOfRange
	}
	island := s.Islands[i]
	*out = PolylineHandle(polylines.put(&mutablePolyline{vertices: island.Vertices(), closed: island.IsClosed()}))
	return OK
}
