package offset

import (
	"math"

	"github.com/mikenye/plinegeom/arcseg"
	"github.com/mikenye/plinegeom/point"
	"github.com/mikenye/plinegeom/polyline"
)

// rawOffsetSegment is one piece of a raw offset polyline: either the offset image of an
// original segment, or a rounded join arc inserted between two consecutive offset
// images. collapsed is set when an arc's offset radius would be non-positive; the
// segment is kept as a zero-length placeholder so indices still line up with the
// original, and slice extraction drops it for contributing no length.
type rawOffsetSegment struct {
	seg       arcseg.Segment
	collapsed bool
}

// rawOffset implements §4.5: offset every segment of pl independently by signed
// distance d, translating lines along their left normal and shrinking or growing arcs
// about their original center, then bridges consecutive offset segments with a rounded
// join when their endpoints don't already meet.
func rawOffset(pl *polyline.Polyline, d float64) []rawOffsetSegment {
	n := pl.SegmentCount()
	if n == 0 {
		return nil
	}

	offsetImages := make([]rawOffsetSegment, n)
	for i := 0; i < n; i++ {
		offsetImages[i] = offsetSegment(pl.Segment(i), d)
	}

	var out []rawOffsetSegment
	joinCount := n
	if !pl.IsClosed() {
		joinCount = n - 1
	}

	out = append(out, offsetImages[0])
	for i := 0; i < joinCount; i++ {
		next := (i + 1) % n
		joinCenter := pl.Segment(i).P2()
		out = append(out, joinSegments(offsetImages[i], offsetImages[next], joinCenter, d)...)
		if next != 0 {
			out = append(out, offsetImages[next])
		}
	}

	return out
}

// offsetSegment offsets a single segment by d: a line is translated along its left unit
// normal, an arc keeps its center and sweep but shrinks (for a counter-clockwise arc) or
// grows (for a clockwise one) by d, per the same left-of-travel convention as the line
// case, since the interior of a CCW arc lies to the left of travel and the interior of a
// CW arc lies to the right.
func offsetSegment(seg arcseg.Segment, d float64) rawOffsetSegment {
	if seg.IsLine() {
		dir := seg.P2().Sub(seg.P1())
		length := math.Hypot(dir.X(), dir.Y())
		if length == 0 {
			return rawOffsetSegment{seg: seg}
		}
		normal := point.New(-dir.Y()/length, dir.X()/length)
		offset := point.New(normal.X()*d, normal.Y()*d)
		return rawOffsetSegment{seg: arcseg.NewLine(seg.P1().Add(offset), seg.P2().Add(offset))}
	}

	center := seg.Center()
	radius := seg.Radius()
	startAngle := seg.StartAngle()
	sweepAngle := seg.SweepAngle()

	sign := 1.0
	if seg.Bulge() < 0 {
		sign = -1
	}
	newRadius := radius - sign*d
	if newRadius <= 0 {
		return rawOffsetSegment{seg: arcseg.NewLine(center, center), collapsed: true}
	}

	p1 := point.New(center.X()+newRadius*math.Cos(startAngle), center.Y()+newRadius*math.Sin(startAngle))
	endAngle := startAngle + sweepAngle
	p2 := point.New(center.X()+newRadius*math.Cos(endAngle), center.Y()+newRadius*math.Sin(endAngle))
	return rawOffsetSegment{seg: arcseg.New(p1, p2, seg.Bulge())}
}

// joinSegments bridges the end of "from" to the start of "to". If the two endpoints
// already coincide it emits nothing; otherwise it inserts a rounded join arc centered at
// the original shared vertex, swept counter-clockwise for a positive offset distance and
// clockwise for a negative one, per §4.5.
func joinSegments(from, to rawOffsetSegment, center point.Point, d float64) []rawOffsetSegment {
	const coincidentEps = 1e-9

	a := from.seg.P2()
	b := to.seg.P1()
	if a.DistanceToPoint(b) <= coincidentEps {
		return nil
	}

	startAngle := math.Atan2(a.Y()-center.Y(), a.X()-center.X())
	endAngle := math.Atan2(b.Y()-center.Y(), b.X()-center.X())

	var sweep float64
	if d >= 0 {
		sweep = endAngle - startAngle
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	} else {
		sweep = endAngle - startAngle
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}

	bulge := math.Tan(sweep / 4)
	return []rawOffsetSegment{{seg: arcseg.New(a, b, bulge)}}
}
