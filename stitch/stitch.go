// Package stitch implements the slice-joining traversal shared by §4.7 (offset) and
// §4.8 (boolean): given a set of disjoint curve fragments, greedily join them end to end
// into the longest consistent chains, closing a chain when it returns to its own start.
package stitch

import (
	"math"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/google/btree"

	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
)

// Slice is a maximal contiguous curve fragment to be joined with others, per §4.6's
// "slice" and §4.8's "classified slice" concepts.
type Slice struct {
	Segments []arcseg.Segment
}

// Start returns the slice's leading endpoint.
func (s Slice) Start() point.Point { return s.Segments[0].P1() }

// End returns the slice's trailing endpoint.
func (s Slice) End() point.Point { return s.Segments[len(s.Segments)-1].P2() }

// edgeRef names one endpoint of one slice, for node-adjacency bookkeeping during
// stitching.
type edgeRef struct {
	sliceIdx int
	atStart  bool
}

// endpointNode buckets every slice edge incident to approximately the same point, at
// joinEps resolution.
type endpointNode struct {
	key  point.Point
	refs []edgeRef
}

// nodeLess orders endpointNode entries first by x then by y, treating coordinates within
// eps of one another along an axis as equal so that a [btree.BTreeG] lookup clusters
// slice endpoints by true pairwise distance rather than snapping them to an absolute
// grid, which can otherwise split two endpoints within eps of each other across a grid
// cell boundary.
func nodeLess(eps float64) btree.LessFunc[*endpointNode] {
	if eps <= 0 {
		eps = 1e-9
	}
	return func(a, b *endpointNode) bool {
		if math.Abs(a.key.X()-b.key.X()) > eps {
			return a.key.X() < b.key.X()
		}
		if math.Abs(a.key.Y()-b.key.Y()) > eps {
			return a.key.Y() < b.key.Y()
		}
		return false
	}
}

// Stitch implements §4.7/§4.10: greedily traverses slices, joining them end-to-end
// within joinEps by always taking the continuation with the smallest turn angle,
// producing closed polylines where traversal returns to its start node and open ones
// otherwise.
func Stitch(slices []Slice, joinEps float64) []*polyline.Polyline {
	if len(slices) == 0 {
		return nil
	}

	nodes := btree.NewG[*endpointNode](2, nodeLess(joinEps))
	addEdge := func(key point.Point, ref edgeRef) {
		probe := &endpointNode{key: key}
		existing, found := nodes.Get(probe)
		if !found {
			existing = probe
			nodes.ReplaceOrInsert(existing)
		}
		existing.refs = append(existing.refs, ref)
	}
	for i, s := range slices {
		addEdge(s.Start(), edgeRef{sliceIdx: i, atStart: true})
		addEdge(s.End(), edgeRef{sliceIdx: i, atStart: false})
	}

	visited := linkedhashset.New()
	var results []*polyline.Polyline

	for i := range slices {
		if visited.Contains(i) {
			continue
		}

		chain := singlylinkedlist.New()
		for _, seg := range slices[i].Segments {
			chain.Add(seg)
		}
		visited.Add(i)

		startNode := slices[i].Start()
		currentEnd := slices[i].End()
		closed := false

		for {
			if currentEnd.DistanceToPoint(startNode) <= joinEps {
				closed = true
				break
			}

			next, reversed, ok := bestContinuation(nodes, visited, slices, currentEnd, joinEps, chain)
			if !ok {
				break
			}

			segs := slices[next].Segments
			if reversed {
				segs = reverseSegments(segs)
			}
			for _, seg := range segs {
				chain.Add(seg)
			}
			visited.Add(next)
			if reversed {
				currentEnd = slices[next].Start()
			} else {
				currentEnd = slices[next].End()
			}
		}

		results = append(results, buildPolyline(chain, closed))
	}

	return results
}

// bestContinuation looks up every unvisited slice edge incident to currentEnd and picks
// the one whose entry direction deviates least from the chain's current heading.
func bestContinuation(nodes *btree.BTreeG[*endpointNode], visited *linkedhashset.Set, slices []Slice, currentEnd point.Point, eps float64, chain *singlylinkedlist.List) (idx int, reversed bool, ok bool) {
	bucket, found := nodes.Get(&endpointNode{key: currentEnd})
	if !found {
		return 0, false, false
	}

	lastSegVal, _ := chain.Get(chain.Size() - 1)
	lastSeg := lastSegVal.(arcseg.Segment)
	incomingTangent := lastSeg.TangentAt(false)

	bestScore := math.Inf(1)
	found = false

	for _, ref := range bucket.refs {
		if visited.Contains(ref.sliceIdx) {
			continue
		}

		var outgoingTangent point.Point
		if ref.atStart {
			outgoingTangent = slices[ref.sliceIdx].Segments[0].TangentAt(true)
		} else {
			outgoingTangent = reverseSegments(slices[ref.sliceIdx].Segments)[0].TangentAt(true)
		}

		turn := math.Acos(clamp(incomingTangent.DotProduct(outgoingTangent), -1, 1))
		if turn < bestScore {
			bestScore = turn
			idx = ref.sliceIdx
			reversed = !ref.atStart
			found = true
		}
	}

	return idx, reversed, found
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func reverseSegments(segs []arcseg.Segment) []arcseg.Segment {
	out := make([]arcseg.Segment, len(segs))
	for i, seg := range segs {
		out[len(segs)-1-i] = seg.Reversed()
	}
	return out
}

// buildPolyline converts an ordered chain of contiguous segments into a [polyline.Polyline].
func buildPolyline(chain *singlylinkedlist.List, closed bool) *polyline.Polyline {
	vertices := make([]polyline.Vertex, 0, chain.Size()+1)
	chain.Each(func(_ int, value interface{}) {
		seg := value.(arcseg.Segment)
		vertices = append(vertices, polyline.Vertex{X: seg.P1().X(), Y: seg.P1().Y(), Bulge: seg.Bulge()})
	})
	if !closed && chain.Size() > 0 {
		lastVal, _ := chain.Get(chain.Size() - 1)
		last := lastVal.(arcseg.Segment)
		vertices = append(vertices, polyline.Vertex{X: last.P2().X(), Y: last.P2().Y()})
	}
	return polyline.New(vertices, closed)
}
