package numeric

import "math"

// NormalizeAngle wraps an angle given in radians into the half-open range [0, 2π).
//
// This is used throughout the arc-segment and winding-number code to compare sweep
// angles without worrying about which multiple of a full turn a given radian value
// happens to carry.
func NormalizeAngle(radians float64) float64 {
	const twoPi = 2 * math.Pi
	a := math.Mod(radians, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// AngleInSweep reports whether angle (radians) lies within the sweep that starts at
// startAngle and runs counter-clockwise through sweepAngle radians (sweepAngle may be
// negative for a clockwise sweep). All three angles are normalized internally, and a
// result within epsilon of either endpoint counts as inside the sweep.
func AngleInSweep(startAngle, sweepAngle, angle, epsilon float64) bool {
	start := NormalizeAngle(startAngle)
	a := NormalizeAngle(angle)

	var delta float64
	if sweepAngle >= 0 {
		delta = NormalizeAngle(a - start)
		span := sweepAngle
		return FloatLessThanOrEqualTo(delta, span, epsilon) || FloatGreaterThanOrEqualTo(delta, 2*math.Pi-epsilon, epsilon)
	}
	delta = NormalizeAngle(start - a)
	span := -sweepAngle
	return FloatLessThanOrEqualTo(delta, span, epsilon) || FloatGreaterThanOrEqualTo(delta, 2*math.Pi-epsilon, epsilon)
}

// Sagitta returns the height of the circular segment cut off by a chord of the given
// half-angle (radians) on a circle of the given radius: r*(1-cos(halfAngle)).
func Sagitta(radius, halfAngle float64) float64 {
	return radius * (1 - math.Cos(halfAngle))
}

// TotalOrderLess provides a NaN-safe total order over float64, matching spec.md's
// requirement that float comparisons never let a NaN silently compare unequal in both
// directions. NaN sorts after all other values including +Inf.
func TotalOrderLess(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a < b
	}
}
