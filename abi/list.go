package abi

// PlinelistCreate creates an empty list and writes its handle to out. capHint sets the
// initial capacity of the list's backing slice; a negative capHint is treated as 0.
func PlinelistCreate(capHint int, out *PlineListHandle) Status {
	if out == nil {
		return NullHandle
	}
	if capHint < 0 {
		capHint = 0
	}
	handles := make([]PolylineHandle, 0, capHint)
	*out = PlineListHandle(lists.put(&handles))
	return OK
}

// PlinelistFree frees the list and every polyline it contains, per §6.1's ownership rule.
func PlinelistFree(h PlineListHandle) Status {
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	for _, ph := range *handles {
		polylines.delete(uint64(ph))
	}
	lists.delete(uint64(h))
	return OK
}

// PlinelistCount writes the list's length to out.
func PlinelistCount(h PlineListHandle, out *int) Status {
	if out == nil {
		return NullHandle
	}
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*out = len(*handles)
	return OK
}

// PlinelistGetPline borrows (does not transfer ownership of) the i'th polyline handle.
func PlinelistGetPline(h PlineListHandle, i int, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(*handles) {
		return OutOfRange
	}
	*out = (*handles)[i]
	return OK
}

// PlinelistPush appends a polyline handle to the list, transferring ownership to the list.
func PlinelistPush(h PlineListHandle, pline PolylineHandle) Status {
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	*handles = append(*handles, pline)
	return OK
}

// PlinelistPop removes and returns the last polyline handle, transferring ownership to
// the caller. Popping an empty list is an [OutOfRange] error per §6.1.
func PlinelistPop(h PlineListHandle, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	n := len(*handles)
	if n == 0 {
		return OutOfRange
	}
	*out = (*handles)[n-1]
	*handles = (*handles)[:n-1]
	return OK
}

// PlinelistTake removes and returns the polyline handle at index i, transferring
// ownership to the caller.
func PlinelistTake(h PlineListHandle, i int, out *PolylineHandle) Status {
	if out == nil {
		return NullHandle
	}
	handles, ok := lists.get(uint64(h))
	if !ok {
		return NullHandle
	}
	if i < 0 || i >= len(*handles) {
		return OutOfRange
	}
	*out = (*handles)[i]
	*handles = append((*handles)[:i], (*handles)[i+1:]...)
	return OK
}
