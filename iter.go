package stackarray

import "iter"

// All returns an iterator over index-value pairs in order.
// The length is re-read on every step, so shrinking the array while ranging
// over it never exposes slots past the end.
func (a *Array[T, B]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.slots()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *Array[T, B]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(a.slots()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (a *Array[T, B]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.n - 1; i >= 0; i-- {
			if i >= a.n {
				continue
			}
			if !yield(i, a.slots()[i]) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice that points into the array.
// Writes through it are visible in the array, but not in copies of it. The
// slice must not be used after the array's length changes. Its capacity
// equals its length, so append on it always reallocates.
func (a *Array[T, B]) Slice() []T {
	return a.slots()[:a.n:a.n]
}
