package abi

import "github.com/mikenye/plinegeom/polyline"

// CreatePolyline builds a new polyline from vertices and returns its handle via out.
func CreatePolyline(vertices []Vertex, closed bool, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	m := &mutablePolyline{vertices: toPolylineVertices(vertices), closed: closed}
	*out = PolylineHandle(polylines.put(m))
	return OK
}

// FreePolyline releases a polyline handle. Freeing an already-freed or unknown handle
// is a no-op, matching the teacher's "free is always safe to call" convention.
func FreePolyline(h PolylineHandle) Status {
	polylines.delete(uint64(h))
	return OK
}

// ClonePolyline duplicates the polyline at h into a new handle written to out.
func ClonePolyline(h PolylineHandle, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	clone := &mutablePolyline{
		vertices: append([]polyline.Vertex(nil), m.vertices...),
		closed:   m.closed,
		userdata: append([]float64(nil), m.userdata...),
	}
	*out = PolylineHandle(polylines.put(clone))
	return OK
}

// Reserve is a no-op over Go slices (which grow automatically); it exists to keep the
// lifecycle surface symmetric with §6.1's reserve(additional).
func Reserve(h PolylineHandle, additional int) Status {
	if _, ok := polylines.get(uint64(h)); !ok {
		return NullHandle
	}
	return OK
}

// Clear removes every vertex from the polyline at h.
func Clear(h PolylineHandle) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = m.vertices[:0]
	return OK
}

// PushVertex appends v to the polyline at h.
func PushVertex(h PolylineHandle, v Vertex) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = append(m.vertices, toPolylineVertices([]Vertex{v})[0])
	return OK
}

// SetVertex overwrites the vertex at index i.
func SetVertex(h PolylineHandle, i int, v Vertex) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(m.vertices) {
		return OutOfRange
	}
	m.vertices[i] = toPolylineVertices([]Vertex{v})[0]
	return OK
}

// GetVertex reads the vertex at index i into out.
func GetVertex(h PolylineHandle, i int, out *Vertex) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(m.vertices) {
		return OutOfRange
	}
	*out = fromPolylineVertices(m.vertices[i : i+1])[0]
	return OK
}

// RemoveVertex deletes the vertex at index i, shifting later vertices down.
func RemoveVertex(h PolylineHandle, i int) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(m.vertices) {
		return OutOfRange
	}
	m.vertices = append(m.vertices[:i], m.vertices[i+1:]...)
	return OK
}

// SetIsClosed sets whether the polyline's last vertex connects back to its first.
func SetIsClosed(h PolylineHandle, closed bool) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.closed = closed
	return OK
}

// GetIsClosed reads whether the polyline is closed into out.
func GetIsClosed(h PolylineHandle, out *bool) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = m.closed
	return OK
}

// GetVertexCount reads the polyline's vertex count into out.
func GetVertexCount(h PolylineHandle, out *int) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = len(m.vertices)
	return OK
}

// GetVertexData copies every vertex into buf, which must be exactly GetVertexCount
// elements long.
func GetVertexData(h PolylineHandle, buf []Vertex) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if len(buf) != len(m.vertices) {
		return OutOfRange
	}
	copy(buf, fromPolylineVertices(m.vertices))
	return OK
}

// SetVertexData replaces the polyline's vertex slice wholesale with buf.
func SetVertexData(h PolylineHandle, buf []Vertex) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = toPolylineVertices(buf)
	return OK
}

// SetUserdataValues replaces the polyline's user-data slice wholesale with buf.
func SetUserdataValues(h PolylineHandle, buf []float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.userdata = append([]float64(nil), buf...)
	return OK
}

// GetUserdataCount reads the polyline's user-data element count into out.
func GetUserdataCount(h PolylineHandle, out *int) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = len(m.userdata)
	return OK
}

// GetUserdataValues copies the polyline's user-data into buf, which must be exactly
// GetUserdataCount elements long.
func GetUserdataValues(h PolylineHandle, buf []float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if len(buf) != len(m.userdata) {
		return OutOfRange
	}
	copy(buf, m.userdata)
	return OK
}

// EvalPathLength writes the polyline's total path length into out.
func EvalPathLength(h PolylineHandle, out *float64) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = m.build().Length()
	return OK
}

// EvalArea writes the polyline's signed area into out.
func EvalArea(h PolylineHandle, out *float64) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = m.build().Area()
	return OK
}

// EvalWindingNumber writes the polyline's winding number about (x, y) into out.
func EvalWindingNumber(h PolylineHandle, x, y float64, out *int) Status {
	if out == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = m.build().WindingNumber(ptOf(x, y))
	return OK
}

// EvalExtents writes the polyline's axis-aligned bounding box into (minX, minY, maxX,
// maxY). Per §6.1, a polyline with fewer than 2 vertices has no extents and all four
// outputs are set to NaN.
func EvalExtents(h PolylineHandle, minX, minY, maxX, maxY *float64) Status {
	if minX == nil || minY == nil || maxX == nil || maxY == nil {
		return NullHandle
	}
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	box, hasExtents := m.build().Extents()
	if !hasExtents {
		*minX, *minY, *maxX, *maxY = nan4()
		return OutOfRange
	}
	*minX, *minY, *maxX, *maxY = box.Min.X(), box.Min.Y(), box.Max.X(), box.Max.Y()
	return OK
}

// InvertDirection reverses the polyline's vertex order and negates every bulge, in place.
func InvertDirection(h PolylineHandle) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	inverted := m.build().InvertDirection()
	m.vertices = inverted.Vertices()
	return OK
}

// Scale multiplies every vertex position (but not bulge, which is scale-invariant) by
// factor, in place.
func Scale(h PolylineHandle, factor float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = m.build().Scale(factor).Vertices()
	return OK
}

// Translate shifts every vertex position by (dx, dy), in place.
func Translate(h PolylineHandle, dx, dy float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = m.build().Translate(ptOf(dx, dy)).Vertices()
	return OK
}

// RemoveRepeatPositions collapses consecutive vertices within eps of each other, in place.
func RemoveRepeatPositions(h PolylineHandle, eps float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = m.build().RemoveRepeatPositions(eps).Vertices()
	return OK
}

// RemoveRedundant drops vertices that don't change the polyline's path within eps, in place.
func RemoveRedundant(h PolylineHandle, eps float64) Status {
	m, ok := polylines.get(uint64(h))
	if !ok {
		return NullHandle
	}
	m.vertices = m.build().RemoveRedundant(eps).Vertices()
	return OK
}
