// Package shape implements §4.9's shape offset: a shape is one CCW outer boundary plus
// zero or more CW islands (holes), offset as a unit so that islands and the outer
// boundary can interact (an island growing into the outer boundary, or vice versa) rather
// than being offset as unrelated polylines.
package shape

import (
	"fmt"

	"github.com/mikenye/plinegeom/boolean"
	"github.com/mikenye/plinegeom/offset"
	"github.com/mikenye/plinegeom/polyline"
)

// Shape is one CCW outer boundary and zero or more CW islands nested inside it.
type Shape struct {
	Outer   *polyline.Polyline
	Islands []*polyline.Polyline
}

// New validates and builds a Shape from a CCW outer boundary and its CW islands.
func New(outer *polyline.Polyline, islands ...*polyline.Polyline) (Shape, error) {
	if outer == nil || !outer.IsClosed() {
		return Shape{}, fmt.Errorf("shape: outer boundary must be closed")
	}
	if outer.Area() <= 0 {
		return Shape{}, fmt.Errorf("shape: outer boundary must be counter-clockwise")
	}
	for i, island := range islands {
		if island == nil || !island.IsClosed() {
			return Shape{}, fmt.Errorf("shape: island %d must be closed", i)
		}
		if island.Area() >= 0 {
			return Shape{}, fmt.Errorf("shape: island %d must be clockwise", i)
		}
	}
	return Shape{Outer: outer, Islands: islands}, nil
}

// ParallelOffset implements §4.9: offsets the outer boundary and every island
// independently (as if each were a standalone polyline), then resolves cross-interaction
// between the offset components by unioning the offset outer boundaries and subtracting
// the offset islands via the [boolean] engine, the same slice-classify-stitch machinery
// §4.9 step 2-3 describes in its own terms ("slices whose midpoint lies inside another
// offset region's forbidden zone are pruned" is exactly what [boolean.Not]'s
// inside/outside classification already does). The combined result is then reclassified
// by signed area into a new outer boundary and new islands.
func (s Shape) ParallelOffset(d float64, opts ...offset.Option) (Shape, error) {
	outerOffsets, err := offset.Parallel(s.Outer, d, opts...)
	if err != nil {
		return Shape{}, fmt.Errorf("shape: offsetting outer boundary: %w", err)
	}
	if len(outerOffsets) == 0 {
		return Shape{}, fmt.Errorf("shape: outer boundary fully collapsed at offset %g", d)
	}

	var islandOffsets []*polyline.Polyline
	for i, island := range s.Islands {
		offsets, err := offset.Parallel(island, d, opts...)
		if err != nil {
			return Shape{}, fmt.Errorf("shape: offsetting island %d: %w", i, err)
		}
		islandOffsets = append(islandOffsets, offsets...)
	}

	outerUnion, err := unionAll(outerOffsets)
	if err != nil {
		return Shape{}, fmt.Errorf("shape: combining outer offset components: %w", err)
	}

	if len(islandOffsets) == 0 {
		return New(outerUnion)
	}

	islandUnion, err := unionAll(islandOffsets)
	if err != nil {
		return Shape{}, fmt.Errorf("shape: combining island offset components: %w", err)
	}

	result, err := boolean.Apply(outerUnion, islandUnion, boolean.Not)
	if err != nil {
		return Shape{}, fmt.Errorf("shape: subtracting islands from outer boundary: %w", err)
	}

	if len(result.Positive) != 1 {
		return Shape{}, fmt.Errorf("shape: offset at %g split the outer boundary into %d disjoint regions, which a single outer+islands shape cannot represent", d, len(result.Positive))
	}

	return New(result.Positive[0], result.Negative...)
}

// unionAll folds boundaries together with [boolean.Or], left to right. Each fold step
// must itself resolve to a single positive region with no holes: components produced by
// independently offsetting the same original boundary are expected to merge cleanly
// rather than pinch off a hole between them.
func unionAll(plines []*polyline.Polyline) (*polyline.Polyline, error) {
	acc := plines[0]
	for _, pl := range plines[1:] {
		result, err := boolean.Apply(acc, pl, boolean.Or)
		if err != nil {
			return nil, err
		}
		if len(result.Positive) != 1 || len(result.Negative) != 0 {
			return nil, fmt.Errorf("union step produced %d positive and %d negative regions, expected exactly one positive region with no holes", len(result.Positive), len(result.Negative))
		}
		acc = result.Positive[0]
	}
	return acc, nil
}
