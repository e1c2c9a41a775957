// Package aabb provides a static, packed axis-aligned bounding box index.
//
// # Overview
//
// [Index] is built once from a fixed set of item boxes and answers box-overlap and
// nearest-neighbor-style "visit within distance" queries without any further mutation.
// The offsetting and boolean packages rebuild an index per operation rather than
// maintaining one incrementally, so there is no insert/delete API to get wrong.
//
// Items are sorted along a Hilbert curve before being packed bottom-up into a tree whose
// nodes each group up to branchingFactor (8) children, stored as a flat slice, so spatially nearby items end up in nearby tree nodes and
// a query only has to walk a handful of cache-friendly ranges rather than chase
// pointers across the heap.
package aabb

import (
	"math"
	"sort"

	"github.com/mikenye/plinegeom/point"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max point.Point
}

// NewBox returns the box spanning the two given corners, normalizing them so Min is
// always the lower-left corner and Max the upper-right.
func NewBox(a, b point.Point) Box {
	return Box{
		Min: point.New(math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y())),
		Max: point.New(math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y())),
	}
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Min: point.New(math.Min(b.Min.X(), other.Min.X()), math.Min(b.Min.Y(), other.Min.Y())),
		Max: point.New(math.Max(b.Max.X(), other.Max.X()), math.Max(b.Max.Y(), other.Max.Y())),
	}
}

// Overlaps reports whether b and other share any area, including touching edges.
func (b Box) Overlaps(other Box) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y()
}

// Expand returns b grown by amount on every side. A negative amount shrinks it.
func (b Box) Expand(amount float64) Box {
	return Box{
		Min: point.New(b.Min.X()-amount, b.Min.Y()-amount),
		Max: point.New(b.Max.X()+amount, b.Max.Y()+amount),
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() point.Point {
	return point.New((b.Min.X()+b.Max.X())/2, (b.Min.Y()+b.Max.Y())/2)
}

// DistanceToPoint returns the shortest distance from p to the box: zero if p is inside
// or on the boundary.
func (b Box) DistanceToPoint(p point.Point) float64 {
	dx := math.Max(0, math.Max(b.Min.X()-p.X(), p.X()-b.Max.X()))
	dy := math.Max(0, math.Max(b.Min.Y()-p.Y(), p.Y()-b.Max.Y()))
	return math.Hypot(dx, dy)
}

// node is one entry of the packed tree: a box plus, for internal nodes, the index range
// of its children in the flat node slice, or, for leaves, the original item's id.
type node struct {
	box           Box
	childLo, childHi int // valid when isLeaf is false: [childLo, childHi) in nodes
	itemID        int    // valid when isLeaf is true
	isLeaf        bool
}

// Index is a static, packed AABB index over a fixed set of items, each identified by an
// integer id (typically a slice index the caller already has meaning for).
type Index struct {
	nodes []node
	root  int
	empty bool
}

// Extents returns the union of every item box in the index. The second return value is
// false if the index holds no items, in which case the box is the zero value and its
// coordinates should not be used (per spec.md's NaN-extents convention for empty sets,
// see [Index.ExtentsOrNaN]).
func (idx *Index) Extents() (Box, bool) {
	if idx.empty {
		return Box{}, false
	}
	return idx.nodes[idx.root].box, true
}

// ExtentsOrNaN returns the union of every item box, or a box with NaN corners if the
// index holds no items. This matches spec.md's convention (scenario A6) that an empty
// geometry's extents are reported as NaN rather than a zero-sized box at the origin,
// since a zero-sized box at the origin is itself a valid, non-empty answer.
func (idx *Index) ExtentsOrNaN() Box {
	if box, ok := idx.Extents(); ok {
		return box
	}
	nan := math.NaN()
	return Box{Min: point.New(nan, nan), Max: point.New(nan, nan)}
}

// Len returns the number of items in the index.
func (idx *Index) Len() int {
	if idx.empty {
		return 0
	}
	count := 0
	for _, n := range idx.nodes {
		if n.isLeaf {
			count++
		}
	}
	return count
}

// Build constructs an [Index] over the given item boxes. The id passed to query
// callbacks is the index of the corresponding box in boxes.
func Build(boxes []Box) *Index {
	if len(boxes) == 0 {
		return &Index{empty: true}
	}

	leaves := make([]node, len(boxes))
	for i, b := range boxes {
		leaves[i] = node{box: b, itemID: i, isLeaf: true}
	}
	sortByHilbert(leaves, unionAll(boxes))

	idx := &Index{}
	idx.root = idx.buildLevel(leaves)
	return idx
}

// buildLevel packs level (a slice of already-Hilbert-ordered nodes, either all leaves or
// all internal nodes from the level below) into groups of up to branchingFactor,
// appends one parent node per group to idx.nodes, and recurses until a single root
// remains. It returns the index of the root node in idx.nodes.
const branchingFactor = 8

func (idx *Index) buildLevel(level []node) int {
	if len(level) == 1 {
		idx.nodes = append(idx.nodes, level[0])
		return len(idx.nodes) - 1
	}

	var parents []node
	for i := 0; i < len(level); i += branchingFactor {
		end := i + branchingFactor
		if end > len(level) {
			end = len(level)
		}
		group := level[i:end]

		lo := len(idx.nodes)
		box := group[0].box
		for _, n := range group[1:] {
			box = box.Union(n.box)
		}
		idx.nodes = append(idx.nodes, group...)
		hi := len(idx.nodes)

		parents = append(parents, node{box: box, childLo: lo, childHi: hi})
	}

	return idx.buildLevel(parents)
}

func unionAll(boxes []Box) Box {
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Union(b)
	}
	return box
}

// sortByHilbert orders leaves by the position of each box's center on a Hilbert curve
// over extents, so that items near each other in space end up near each other in the
// flat node slice once packed.
func sortByHilbert(leaves []node, extents Box) {
	const order = 16 // 16 bits per axis is ample precision for this sort's purposes
	const side = 1 << order

	width := extents.Max.X() - extents.Min.X()
	height := extents.Max.Y() - extents.Min.Y()

	keyOf := func(n node) uint64 {
		c := n.box.Center()
		x, y := uint32(0), uint32(0)
		if width > 0 {
			x = uint32(math.Min(side-1, (c.X()-extents.Min.X())/width*side))
		}
		if height > 0 {
			y = uint32(math.Min(side-1, (c.Y()-extents.Min.Y())/height*side))
		}
		return hilbertD2XY(order, x, y)
	}

	sort.SliceStable(leaves, func(i, j int) bool {
		return keyOf(leaves[i]) < keyOf(leaves[j])
	})
}

// hilbertD2XY converts (x, y) grid coordinates (each in [0, 2^order)) into their
// distance along a Hilbert curve of the given order, via the standard bit-rotation
// construction.
func hilbertD2XY(order int, x, y uint32) uint64 {
	var rx, ry uint32
	var d uint64
	for s := uint32(1) << (order - 1); s > 0; s >>= 1 {
		if x&s > 0 {
			rx = 1
		} else {
			rx = 0
		}
		if y&s > 0 {
			ry = 1
		} else {
			ry = 0
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)

		// rotate
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// QueryBox calls visit once for the id of every item whose box overlaps query, in no
// particular order. Iteration stops early if visit returns false.
func (idx *Index) QueryBox(query Box, visit func(id int) bool) {
	if idx.empty {
		return
	}
	idx.queryBoxNode(idx.root, query, visit)
}

func (idx *Index) queryBoxNode(nodeIdx int, query Box, visit func(id int) bool) bool {
	n := idx.nodes[nodeIdx]
	if !n.box.Overlaps(query) {
		return true
	}
	if n.isLeaf {
		return visit(n.itemID)
	}
	for i := n.childLo; i < n.childHi; i++ {
		if !idx.queryBoxNode(i, query, visit) {
			return false
		}
	}
	return true
}

// VisitWithin calls visit once for the id of every item whose box lies within maxDist of
// p, in no particular order. Iteration stops early if visit returns false.
func (idx *Index) VisitWithin(p point.Point, maxDist float64, visit func(id int) bool) {
	if idx.empty {
		return
	}
	idx.visitWithinNode(idx.root, p, maxDist, visit)
}

func (idx *Index) visitWithinNode(nodeIdx int, p point.Point, maxDist float64, visit func(id int) bool) bool {
	n := idx.nodes[nodeIdx]
	if n.box.DistanceToPoint(p) > maxDist {
		return true
	}
	if n.isLeaf {
		return visit(n.itemID)
	}
	for i := n.childLo; i < n.childHi; i++ {
		if !idx.visitWithinNode(i, p, maxDist, visit) {
			return false
		}
	}
	return true
}
