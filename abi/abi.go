// Package abi implements §6's language-neutral external interface: a stable, flat
// function surface over opaque handles and integer status codes, suitable for a cgo
// export shim or any other language binding. It never panics and never returns a Go
// error value; every operation reports its outcome as a [Status] code instead, per §6.1.
//
// The handle-plus-registry shape follows the teacher corpus's sharded-cache pattern
// (mutex-guarded maps keyed by an opaque id, values never directly exposed to the
// caller): see github.com/mikenye/plinegeom/abi's registry type.
package abi

import (
	"math"

	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/boolean"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
	"github.com/mikenye/plinegeom/shape"
)

// Status is the universal 32-bit result code every abi operation returns, per §6.1.
type Status int32

const (
	// OK reports success.
	OK Status = 0
	// NullHandle reports that a required handle or out-pointer argument was null/invalid.
	NullHandle Status = 1
	// OutOfRange reports an out-of-bounds index, a violated count precondition (e.g. a
	// vertex count below 2 for extents, or popping an empty list), or (for Boolean) an
	// unrecognized operator id.
	OutOfRange Status = 2
)

// Vertex is the POD vertex layout from §6.1: three float64 fields, no padding beyond
// natural alignment. It mirrors [polyline.Vertex] field-for-field so conversion between
// the two is a straight copy.
type Vertex struct {
	X, Y, Bulge float64
}

func toPolylineVertices(vs []Vertex) []polyline.Vertex {
	out := make([]polyline.Vertex, len(vs))
	for i, v := range vs {
		out[i] = polyline.Vertex{X: v.X, Y: v.Y, Bulge: v.Bulge}
	}
	return out
}

func fromPolylineVertices(vs []polyline.Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = Vertex{X: v.X, Y: v.Y, Bulge: v.Bulge}
	}
	return out
}

// Op mirrors boolean.Op's wire encoding from §6.1: 0=Or, 1=And, 2=Not, 3=Xor.
type Op int32

const (
	OpOr  Op = 0
	OpAnd Op = 1
	OpNot Op = 2
	OpXor Op = 3
)

func (op Op) toBoolean() (boolean.Op, bool) {
	switch op {
	case OpOr:
		return boolean.Or, true
	case OpAnd:
		return boolean.And, true
	case OpNot:
		return boolean.Not, true
	case OpXor:
		return boolean.Xor, true
	default:
		return 0, false
	}
}

// mutablePolyline is the registry-backed value behind a PolylineHandle. Unlike
// [polyline.Polyline], which is immutable and grown only via New, this type supports
// the in-place lifecycle operations §6.1 exposes (push_vertex, set_vertex, remove,
// clear, ...); a fresh [polyline.Polyline] is built from it on demand whenever a query
// or algorithm needs one.
type mutablePolyline struct {
	vertices []polyline.Vertex
	closed   bool
	userdata []float64
}

func (m *mutablePolyline) build() *polyline.Polyline {
	return polyline.New(m.vertices, m.closed)
}

var polylines = newRegistry[mutablePolyline]()
var indexes = newRegistry[aabb.Index]()
var shapes = newRegistry[shape.Shape]()
var lists = newRegistry[[]PolylineHandle]()

// PolylineHandle is an opaque reference to a polyline owned by the abi registry.
type PolylineHandle uint64

// IndexHandle is an opaque reference to an AABB index owned by the abi registry.
type IndexHandle uint64

// ShapeHandle is an opaque reference to a shape owned by the abi registry.
type ShapeHandle uint64

// PlineListHandle is an opaque reference to an ordered list of polyline handles.
type PlineListHandle uint64

func nan4() (float64, float64, float64, float64) {
	return math.NaN(), math.NaN(), math.NaN(), math.NaN()
}

func ptOf(x, y float64) point.Point {
	return point.New(x, y)
}
