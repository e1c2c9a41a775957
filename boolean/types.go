package boolean

import (
	"fmt"

	"github.com/mikenye/plinegeom/polyline"
)

// Op selects which set operation [Apply] performs.
type Op uint8

// Valid values for Op.
const (
	// Or computes the union of pline1 and pline2.
	Or Op = iota

	// And computes the intersection of pline1 and pline2.
	And

	// Not computes pline1 minus pline2.
	Not

	// Xor computes the symmetric difference of pline1 and pline2.
	Xor
)

// String converts an Op value to its string representation.
//
// Panics:
//   - If the Op value is not one of the defined constants, this method panics.
func (op Op) String() string {
	switch op {
	case Or:
		return "Or"
	case And:
		return "And"
	case Not:
		return "Not"
	case Xor:
		return "Xor"
	default:
		panic(fmt.Errorf("unsupported boolean.Op: %d", op))
	}
}

// Info describes how [Apply] arrived at its result, per the BooleanResult type.
type Info uint8

// Valid values for Info.
const (
	// NoIntersect indicates pline1 and pline2 were processed without any overlap
	// intersections influencing the result (this covers both the ordinary crossing case
	// and the degenerate case where the inputs' extents overlap but neither intersects
	// nor contains the other).
	NoIntersect Info = iota

	// Pline1InsidePline2 indicates pline1 lies entirely within pline2 with no boundary
	// crossing.
	Pline1InsidePline2

	// Pline2InsidePline1 indicates pline2 lies entirely within pline1 with no boundary
	// crossing.
	Pline2InsidePline1

	// Disjoint indicates pline1 and pline2 do not intersect, contain each other, or even
	// share overlapping extents.
	Disjoint

	// Overlapping indicates at least one overlap-type intersection (a coincident
	// sub-curve shared by both inputs) influenced the result.
	Overlapping
)

// String converts an Info value to its string representation.
//
// Panics:
//   - If the Info value is not one of the defined constants, this method panics.
func (i Info) String() string {
	switch i {
	case NoIntersect:
		return "NoIntersect"
	case Pline1InsidePline2:
		return "Pline1InsidePline2"
	case Pline2InsidePline1:
		return "Pline2InsidePline1"
	case Disjoint:
		return "Disjoint"
	case Overlapping:
		return "Overlapping"
	default:
		panic(fmt.Errorf("unsupported boolean.Info: %d", i))
	}
}

// Source identifies which input contributed a result polyline's vertices, so a caller
// that attaches per-input metadata (such as the opaque user-data list in §3) knows which
// input's metadata to carry forward.
type Source uint8

// Valid values for Source.
const (
	// FromPline1 indicates the result polyline is pline1, possibly direction-reversed,
	// unmodified otherwise.
	FromPline1 Source = iota

	// FromPline2 indicates the result polyline is pline2, possibly direction-reversed,
	// unmodified otherwise.
	FromPline2

	// FromBoth indicates the result polyline was stitched together from slices of both
	// pline1 and pline2, so it has no single source to attribute metadata to.
	FromBoth
)

// String converts a Source value to its string representation.
//
// Panics:
//   - If the Source value is not one of the defined constants, this method panics.
func (s Source) String() string {
	switch s {
	case FromPline1:
		return "FromPline1"
	case FromPline2:
		return "FromPline2"
	case FromBoth:
		return "FromBoth"
	default:
		panic(fmt.Errorf("unsupported boolean.Source: %d", s))
	}
}

// Result is the BooleanResult type: the output polylines of a set operation, bucketed by
// the sign of each one's own area (CCW/positive boundaries vs CW/negative holes), plus
// Info describing how the result was reached. PositiveFrom and NegativeFrom run parallel
// to Positive and Negative, naming which input each entry derives from.
type Result struct {
	Positive     []*polyline.Polyline
	Negative     []*polyline.Polyline
	PositiveFrom []Source
	NegativeFrom []Source
	Info         Info
}
