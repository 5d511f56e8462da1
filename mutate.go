package stackarray

// Append adds elems to the end of the array.
// It panics with ErrCapacityExceeded if they do not fit.
func (a *Array[T, B]) Append(elems ...T) {
	a.Replace(a.n, a.n, elems...)
}

// TryAppend is like Append but returns an error instead of panicking.
func (a *Array[T, B]) TryAppend(elems ...T) error {
	return a.replace(a.n, a.n, elems)
}

// Insert inserts elems at position i, shifting later elements up.
// i may equal Len(), in which case Insert is Append.
func (a *Array[T, B]) Insert(i int, elems ...T) {
	a.Replace(i, i, elems...)
}

// TryInsert is like Insert but returns an error instead of panicking.
func (a *Array[T, B]) TryInsert(i int, elems ...T) error {
	return a.replace(i, i, elems)
}

// Remove removes and returns the element at position i.
func (a *Array[T, B]) Remove(i int) T {
	v, err := a.TryRemove(i)
	if err != nil {
		fail(err)
	}
	return v
}

// TryRemove is like Remove but returns an error instead of panicking.
func (a *Array[T, B]) TryRemove(i int) (T, error) {
	v, err := a.TryGet(i)
	if err != nil {
		return v, err
	}
	return v, a.replace(i, i+1, nil)
}

// RemoveLast removes and returns the last element.
// It panics with ErrIndexOutOfRange if the array is empty.
func (a *Array[T, B]) RemoveLast() T {
	return a.Remove(a.n - 1)
}

// Delete removes the elements in [lo, hi).
func (a *Array[T, B]) Delete(lo, hi int) {
	a.Replace(lo, hi)
}

// TryDelete is like Delete but returns an error instead of panicking.
func (a *Array[T, B]) TryDelete(lo, hi int) error {
	return a.replace(lo, hi, nil)
}

// Clear removes all elements. The backing region is zeroed.
func (a *Array[T, B]) Clear() {
	a.Replace(0, a.n)
}
