package abi

import (
	"github.com/mikenye/plinegeom/boolean"
	"github.com/mikenye/plinegeom/polyline"
)

// BooleanOptions mirrors §6.2's boolean option struct.
type BooleanOptions struct {
	Pline1AABBIndex  *IndexHandle
	PosEqualEps      float64
	CollapsedAreaEps float64
}

// PlineBooleanOInit populates opts with §6.2's documented defaults.
func PlineBooleanOInit(opts *BooleanOptions) Status {
	if opts == nil {
		return NullHandle
	}
	*opts = BooleanOptions{PosEqualEps: 1e-5, CollapsedAreaEps: 1e-5}
	return OK
}

func (o BooleanOptions) toOptions() ([]boolean.Option, Status) {
	opts := []boolean.Option{
		boolean.WithPosEqualEps(nonZero(o.PosEqualEps, 1e-5)),
		boolean.WithCollapsedAreaEps(nonZero(o.CollapsedAreaEps, 1e-5)),
	}
	if o.Pline1AABBIndex != nil {
		idx, ok := indexes.get(uint64(*o.Pline1AABBIndex))
		if !ok {
			return nil, NullHandle
		}
		opts = append(opts, boolean.WithPline1Index(idx))
	}
	return opts, OK
}

// Boolean runs op on pline1 and pline2, writing the resulting positive and negative
// polyline lists to outPos and outNeg. An unrecognized op returns [OutOfRange] per
// §6.1's "unknown operator id" rule.
func Boolean(pline1, pline2 PolylineHandle, op Op, o BooleanOptions, outPos, outNeg *PlineListHandle) Status {
	if outPos == nil || outNeg == nil {
		return NullHandle
	}
	goOp, known := op.toBoolean()
	if !known {
		return OutOfRange
	}
	m1, ok := polylines.get(uint64(pline1))
	if !ok {
		return NullHandle
	}
	m2, ok := polylines.get(uint64(pline2))
	if !ok {
		return NullHandle
	}
	goOpts, status := o.toOptions()
	if status != OK {
		return status
	}
	result, err := boolean.Apply(m1.build(), m2.build(), goOp, goOpts...)
	if err != nil {
		return OutOfRange
	}
	*outPos = PlineListHandle(lists.put(toHandleList(result.Positive, result.PositiveFrom, m1, m2)))
	*outNeg = PlineListHandle(lists.put(toHandleList(result.Negative, result.NegativeFrom, m1, m2)))
	return OK
}

// toHandleList wraps each result polyline in its own registry entry, carrying forward
// the user-data of whichever input it derives from per §3's "copied unchanged onto each
// output polyline derived from a given input" rule. A polyline stitched from slices of
// both inputs ([boolean.FromBoth]) has no single source to copy from, so it falls back to
// pline1's user-data, treating pline1 as the operation's primary input.
func toHandleList(plines []*polyline.Polyline, sources []boolean.Source, m1, m2 *mutablePolyline) *[]PolylineHandle {
	handles := make([]PolylineHandle, len(plines))
	for i, pl := range plines {
		handles[i] = PolylineHandle(polylines.put(&mutablePolyline{
			vertices: pl.Vertices(),
			closed:   pl.IsClosed(),
			userdata: userdataFor(sources[i], m1, m2),
		}))
	}
	return &handles
}

func userdataFor(src boolean.Source, m1, m2 *mutablePolyline) []float64 {
	if src == boolean.FromPline2 {
		return append([]float64(nil), m2.userdata...)
	}
	return append([]float64(nil), m1.userdata...)
}
