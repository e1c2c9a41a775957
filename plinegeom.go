// Package plinegeom provides a 2D polyline geometry engine built around vertices that carry
// a bulge value, letting a single polyline mix straight segments and circular arcs without a
// separate arc type.
//
// The package is organized around [polyline.Polyline] and [shape.Shape], supporting parallel
// offsetting and boolean set operations (union, intersection, difference, xor) on closed,
// non-self-intersecting polylines.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the x-axis increases to the
// right and the y-axis increases upward. Positive bulge values sweep counter-clockwise from the
// segment's start vertex to its end vertex; negative bulge values sweep clockwise.
//
// # Precision Control with Epsilon
//
// Offsetting and boolean operations each expose their own epsilon knobs (position equality,
// slice-join tolerance, offset-distance tolerance, collapsed-area tolerance) via their Options
// structs, rather than sharing one implicit global tolerance. Each epsilon governs a distinct
// numerical comparison and is tunable independently.
//
// # Acknowledgments
//
// plinegeom's offsetting and boolean algorithms follow the approach described by
// jbuckmccready's [cavalier_contours], a 2D polyline/arc library for Rust and C++.
//
// [cavalier_contours]: https://github.com/jbuckmccready/cavalier_contours
package plinegeom

func init() {
	logDebugf("debug logging enabled")
}
