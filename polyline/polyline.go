// Package polyline provides [Polyline], a sequence of vertices where each vertex carries
// a bulge describing the arc (if any) swept to the next vertex.
//
// # Overview
//
// A polyline mixes straight segments and circular arcs without a separate arc type: a
// vertex with bulge zero starts a straight segment, any other bulge starts an arc (see
// [arcseg.Segment]). A closed polyline's last vertex implicitly connects back to its
// first, the same way the teacher's polygon package treats a point list as implicitly
// closed for area and orientation purposes.
package polyline

import (
	"math"

	"github.com/mikenye/plinegeom/aabb"
	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/rectangle"
	"github.com/mikenye/plinegeom/types"
)

// Vertex is one point of a [Polyline], with Bulge describing the arc swept from this
// vertex to the next one (zero for a straight segment).
type Vertex struct {
	X, Y, Bulge float64
}

// Point returns the vertex's position as a [point.Point].
func (v Vertex) Point() point.Point {
	return point.New(v.X, v.Y)
}

// Polyline is an ordered sequence of vertices, optionally closed.
type Polyline struct {
	vertices []Vertex
	closed   bool
}

// New creates a [Polyline] from the given vertices. The slice is copied, so later
// mutation of vertices does not affect the returned Polyline.
func New(vertices []Vertex, closed bool) *Polyline {
	cp := make([]Vertex, len(vertices))
	copy(cp, vertices)
	return &Polyline{vertices: cp, closed: closed}
}

// Vertices returns a copy of the polyline's vertices.
func (p *Polyline) Vertices() []Vertex {
	cp := make([]Vertex, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// IsClosed reports whether the polyline's last vertex connects back to its first.
func (p *Polyline) IsClosed() bool {
	return p.closed
}

// Len returns the number of vertices.
func (p *Polyline) Len() int {
	return len(p.vertices)
}

// SegmentCount returns the number of segments: Len() for a closed polyline (the last
// vertex connects back to the first), Len()-1 for an open one (or 0 if fewer than 2
// vertices).
func (p *Polyline) SegmentCount() int {
	n := len(p.vertices)
	if n < 2 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// Segment returns the i'th segment as an [arcseg.Segment], where segment i runs from
// vertex i to vertex i+1 (wrapping to vertex 0 if the polyline is closed and i is the
// last vertex).
func (p *Polyline) Segment(i int) arcseg.Segment {
	n := len(p.vertices)
	v1 := p.vertices[i]
	v2 := p.vertices[(i+1)%n]
	return arcseg.New(v1.Point(), v2.Point(), v1.Bulge)
}

// Segments calls yield once per segment, in order, stopping early if yield returns
// false. It is meant for use as a range-over-func: for i, seg := range pl.Segments { ... }
func (p *Polyline) Segments(yield func(i int, seg arcseg.Segment) bool) {
	for i := 0; i < p.SegmentCount(); i++ {
		if !yield(i, p.Segment(i)) {
			return
		}
	}
}

// Area returns the polyline's signed area: positive for a counter-clockwise closed
// polyline, negative for clockwise, zero for an open polyline or one with fewer than 3
// vertices. It extends the shoelace formula with a circular-segment correction per arc,
// matching a straight-edge polygon's shoelace area when every bulge is zero.
func (p *Polyline) Area() float64 {
	if !p.closed || len(p.vertices) < 3 {
		return 0
	}

	var area2x float64
	for i := 0; i < p.SegmentCount(); i++ {
		seg := p.Segment(i)
		a, b := seg.P1(), seg.P2()
		area2x += a.X()*b.Y() - b.X()*a.Y()

		if seg.IsArc() {
			r := seg.Radius()
			theta := seg.SweepAngle()
			// Signed area between the chord and the arc: positive for a
			// counter-clockwise (positive-bulge) bulge, negative for clockwise.
			area2x += r * r * (theta - math.Sin(theta))
		}
	}

	return area2x / 2
}

// Length returns the sum of the lengths of every segment.
func (p *Polyline) Length() float64 {
	var total float64
	for i := 0; i < p.SegmentCount(); i++ {
		total += p.Segment(i).Length()
	}
	return total
}

// Extents returns the union of every segment's bounding box, and false if the polyline
// has no segments.
func (p *Polyline) Extents() (aabb.Box, bool) {
	n := p.SegmentCount()
	if n == 0 {
		return aabb.Box{}, false
	}
	min, max := p.Segment(0).BoundingBox()
	box := aabb.Box{Min: min, Max: max}
	for i := 1; i < n; i++ {
		segMin, segMax := p.Segment(i).BoundingBox()
		box = box.Union(aabb.Box{Min: segMin, Max: segMax})
	}
	return box, true
}

// BoundingRectangle returns the polyline's extents as a [rectangle.Rectangle], the same
// JSON-marshalable shape the teacher's rectangle package offers for reporting and
// interchange. It reports false under the same conditions as [Extents].
func (p *Polyline) BoundingRectangle() (rectangle.Rectangle, bool) {
	box, ok := p.Extents()
	if !ok {
		return rectangle.Rectangle{}, false
	}
	return rectangle.New(box.Min.X(), box.Min.Y(), box.Max.X(), box.Max.Y()), true
}

// WindingNumber returns the winding number of the closed polyline around p: 0 if p is
// outside, a positive count for each counter-clockwise loop enclosing p, negative for
// clockwise. It uses the standard horizontal ray-casting construction, generalized to
// arcs by flattening each arc into short chords (see arcCrossing), so an arc is
// approximated rather than resolved exactly. Returns 0 for an open polyline, which (per spec.md) has no interior.
func (p *Polyline) WindingNumber(pt point.Point) int {
	if !p.closed {
		return 0
	}

	winding := 0
	for i := 0; i < p.SegmentCount(); i++ {
		seg := p.Segment(i)
		v1, v2 := seg.P1(), seg.P2()

		if seg.IsLine() {
			winding += lineCrossing(v1, v2, pt)
			continue
		}

		winding += arcCrossing(seg, pt)
	}
	return winding
}

// lineCrossing implements the upward/downward crossing test of the standard winding
// number algorithm for a single straight edge from a to b against a horizontal ray cast
// from pt in the +x direction.
func lineCrossing(a, b, pt point.Point) int {
	if a.Y() <= pt.Y() {
		if b.Y() > pt.Y() && isLeft(a, b, pt) > 0 {
			return 1
		}
		return 0
	}
	if b.Y() <= pt.Y() && isLeft(a, b, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft returns > 0 if pt is left of the line a->b, < 0 if right, 0 if exactly on it.
func isLeft(a, b, pt point.Point) float64 {
	return (b.X()-a.X())*(pt.Y()-a.Y()) - (pt.X()-a.X())*(b.Y()-a.Y())
}

// arcCrossing approximates the winding contribution of an arc segment by flattening it
// into short chords and summing their line-crossing contributions. This keeps the
// winding-number test exact in the same sense the line case is exact (a ray-crossing
// count), at the cost of an epsilon-level error proportional to the chord length chosen;
// the boolean package's own epsilon budgets absorb that error the same way they absorb
// any other floating point slack.
func arcCrossing(seg arcseg.Segment, pt point.Point) int {
	const steps = 32
	winding := 0
	prev := seg.P1()
	for i := 1; i <= steps; i++ {
		next := seg.PointAt(float64(i) / steps)
		winding += lineCrossing(prev, next, pt)
		prev = next
	}
	return winding
}

// InvertDirection returns a new polyline tracing the same shape in the opposite
// direction: vertex order reversed and every bulge negated and shifted to the vertex it
// now precedes, so positive-bulge (counter-clockwise) arcs become negative-bulge
// (clockwise) arcs tracing the same curve backwards.
func (p *Polyline) InvertDirection() *Polyline {
	n := len(p.vertices)
	if n == 0 {
		return New(nil, p.closed)
	}

	reversed := make([]Vertex, n)
	for i, v := range p.vertices {
		reversed[n-1-i] = Vertex{X: v.X, Y: v.Y, Bulge: v.Bulge}
	}

	// Bulge i describes the arc from vertex i to vertex i+1; after reversal, the segment
	// leaving reversed[i] is the reverse of the segment that used to arrive at
	// reversed[i] from reversed[i+1], so it carries that vertex's bulge, negated.
	shifted := make([]Vertex, n)
	for i, v := range reversed {
		next := reversed[(i+1)%n]
		shifted[i] = Vertex{X: v.X, Y: v.Y, Bulge: -next.Bulge}
	}

	return New(shifted, p.closed)
}

// Scale returns a new polyline with every vertex position scaled by factor about the
// origin and every bulge unchanged: bulge is a dimensionless ratio, and uniform scaling
// (a negative factor adds a half-turn about the origin, not a mirror) keeps each arc's
// direction.
func (p *Polyline) Scale(factor float64) *Polyline {
	scaled := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		scaled[i] = Vertex{X: v.X * factor, Y: v.Y * factor, Bulge: v.Bulge}
	}
	return New(scaled, p.closed)
}

// Translate returns a new polyline with every vertex moved by delta.
func (p *Polyline) Translate(delta point.Point) *Polyline {
	translated := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		translated[i] = Vertex{X: v.X + delta.X(), Y: v.Y + delta.Y(), Bulge: v.Bulge}
	}
	return New(translated, p.closed)
}

// RemoveRepeatPositions returns a new polyline with consecutive vertices closer than
// epsilon collapsed into one, keeping the bulge of the first of each run (matching how a
// zero-length segment contributes no arc of its own).
func (p *Polyline) RemoveRepeatPositions(epsilon float64) *Polyline {
	if len(p.vertices) == 0 {
		return New(nil, p.closed)
	}

	out := []Vertex{p.vertices[0]}
	for _, v := range p.vertices[1:] {
		last := out[len(out)-1]
		if last.Point().DistanceToPoint(v.Point()) <= epsilon {
			continue
		}
		out = append(out, v)
	}

	if p.closed && len(out) > 1 && out[0].Point().DistanceToPoint(out[len(out)-1].Point()) <= epsilon {
		out[0].Bulge = out[len(out)-1].Bulge
		out = out[:len(out)-1]
	}

	return New(out, p.closed)
}

// RemoveRedundant returns a new polyline with vertices removed that don't change the
// traced shape, within epsilon: a straight vertex collinear with its straight neighbors,
// and a vertex joining two same-direction arcs on a common circle, whose two arcs are
// merged into one.
func (p *Polyline) RemoveRedundant(epsilon float64) *Polyline {
	n := len(p.vertices)
	if n < 3 {
		return New(p.vertices, p.closed)
	}

	keep := make([]bool, n)
	bulges := make([]float64, n)
	for i, v := range p.vertices {
		keep[i] = true
		bulges[i] = v.Bulge
	}

	lo, hi := 1, n-1
	if p.closed {
		lo, hi = 0, n-1
	}

	for i := lo; i <= hi; i++ {
		prevIdx := (i - 1 + n) % n
		nextIdx := (i + 1) % n

		a := p.vertices[prevIdx].Point()
		b := p.vertices[i].Point()
		c := p.vertices[nextIdx].Point()

		prevBulge := p.vertices[prevIdx].Bulge
		curBulge := p.vertices[i].Bulge

		switch {
		case prevBulge == 0 && curBulge == 0:
			if point.Orientation(a, b, c, epsilon) == types.PointsCollinear {
				keep[i] = false
			}
		case prevBulge != 0 && curBulge != 0:
			if merged, ok := mergeCocircular(a, b, c, prevBulge, curBulge, epsilon); ok {
				keep[i] = false
				bulges[prevIdx] = merged
			}
		}
	}

	var out []Vertex
	for i, v := range p.vertices {
		if keep[i] {
			out = append(out, Vertex{X: v.X, Y: v.Y, Bulge: bulges[i]})
		}
	}
	return New(out, p.closed)
}

// mergeCocircular reports whether the arc a->b (bulge prevBulge) and b->c (bulge
// curBulge) lie on the same circle and curve the same rotational direction, so vertex b
// can be dropped in favor of a single a->c arc continuing smoothly through where b was.
// merged is the bulge of that combined arc, derived from the tangent-addition identity
// tan(x+y) = (tan x + tan y)/(1 - tan x * tan y) applied to bulge = tan(sweepAngle/4).
func mergeCocircular(a, b, c point.Point, prevBulge, curBulge, epsilon float64) (merged float64, ok bool) {
	if (prevBulge > 0) != (curBulge > 0) {
		return 0, false
	}

	segAB := arcseg.New(a, b, prevBulge)
	segBC := arcseg.New(b, c, curBulge)

	if segAB.Center().DistanceToPoint(segBC.Center()) > epsilon {
		return 0, false
	}
	if math.Abs(segAB.Radius()-segBC.Radius()) > epsilon {
		return 0, false
	}

	denom := 1 - prevBulge*curBulge
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	merged = (prevBulge + curBulge) / denom
	if math.Abs(merged) > 1 {
		return 0, false
	}
	return merged, true
}
