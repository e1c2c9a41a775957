package abi

import "github.com/mikenye/plinegeom/offset"

// OffsetOptions mirrors §6.2's parallel-offset option struct. A nil AABBIndex field
// means "build one internally", matching [offset.Options]'s zero value.
type OffsetOptions struct {
	AABBIndex            *IndexHandle
	PosEqualEps          float64
	SliceJoinEps         float64
	OffsetDistEps        float64
	HandleSelfIntersects bool
}

// PlineParallelOffsetOInit populates opts with §6.2's documented defaults, the same
// values [offset.Default] uses internally.
func PlineParallelOffsetOInit(opts *OffsetOptions) Status {
	if opts == nil {
		return NullHandle
	}
	*opts = OffsetOptions{
		PosEqualEps:   1e-5,
		SliceJoinEps:  1e-4,
		OffsetDistEps: 1e-4,
	}
	return OK
}

func (o OffsetOptions) toOptions() ([]offset.Option, Status) {
	opts := []offset.Option{
		offset.WithPosEqualEps(nonZero(o.PosEqualEps, 1e-5)),
		offset.WithSliceJoinEps(nonZero(o.SliceJoinEps, 1e-4)),
		offset.WithOffsetDistEps(nonZero(o.OffsetDistEps, 1e-4)),
		offset.WithHandleSelfIntersects(o.HandleSelfIntersects),
	}
	if o.AABBIndex != nil {
		idx, ok := indexes.get(uint64(*o.AABBIndex))
		if !ok {
			return nil, NullHandle
		}
		opts = append(opts, offset.WithAABBIndex(idx))
	}
	return opts, OK
}

func nonZero(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// ParallelOffset offsets the polyline at h by d and writes the resulting list of
// polyline handles to out.
func ParallelOffset(h PolylineHandle, d float64, o OffsetOptions, out *PlineListHandle) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	goOpts, status := o.toOptions()
	if status != OK {
		return status
	}
	results, err := offset.Parallel(m.build(), d, goOpts...)
	if err != nil {
		return OutOfRange
	}
	handles := make([]PolylineHandle, len(results))
	for i, pl := range results {
		handles[i] = PolylineHandle(polylines.put(&mutablePolyline{
			vertices: pl.Vertices(),
			closed:   pl.IsClosed(),
			userdata: append([]float64(nil), m.userdata...),
		}))
	}
	*out = PlineListHandle(lists.put(&handles))
	return OK
}
