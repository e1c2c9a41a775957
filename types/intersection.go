package types

import "fmt"

// IntersectionType represents the kind of geometric outcome produced by intersecting two
// curves (lines or circular arcs). It is the discriminant of the tagged result that xsect
// and its callers use instead of returning loosely-typed points and booleans.
type IntersectionType uint8

// Valid values for IntersectionType.
const (
	// IntersectionNone indicates the two curves do not intersect.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates the curves touch or cross at exactly one point, including
	// the tangent case where two circles (or a line and a circle) meet at a single point.
	IntersectionPoint

	// IntersectionTwoPoints indicates the curves cross at exactly two distinct points, as
	// happens when two circles (or a line and a circle) intersect transversally.
	IntersectionTwoPoints

	// IntersectionOverlap indicates the curves are coincident over a non-degenerate region,
	// such as two collinear, overlapping line segments.
	IntersectionOverlap
)

// String converts an [IntersectionType] constant into its string representation.
//
// Panics:
//   - If the [IntersectionType] value is not one of the defined constants, the function
//     panics with a descriptive error message.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionTwoPoints:
		return "IntersectionTwoPoints"
	case IntersectionOverlap:
		return "IntersectionOverlap"
	default:
		panic(fmt.Errorf("unsupported IntersectionType: %d", t))
	}
}
