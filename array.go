// Package stackarray implements a fixed-capacity array whose elements live
// inline in a fixed-size region chosen by a type parameter.
package stackarray

import (
	"slices"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Array is a sequence of at most Capacity[T, B]() elements stored inside a
// value of type B. The zero value is an empty array ready to use.
//
// Array has plain value semantics: assigning it copies the whole region, and
// no two arrays ever share storage. It is not safe for concurrent mutation.
//
// All methods, including String and GoString, have pointer receivers so the
// region is never copied implicitly. Pass &a to fmt: printing a plain Array
// value dumps the raw struct, including bytes past Len().
type Array[T, B any] struct {
	_   [0]T // forces buf to be aligned for T
	buf B
	n   int
}

// New returns an empty array.
func New[T, B any]() Array[T, B] {
	return Array[T, B]{}
}

// Len returns the number of elements in the array.
func (a *Array[T, B]) Len() int {
	return a.n
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T, B]) IsEmpty() bool {
	return a.n == 0
}

// Cap returns the fixed capacity of the array.
func (a *Array[T, B]) Cap() int {
	return Capacity[T, B]()
}

// StartIndex returns the position of the first element, always 0.
func (a *Array[T, B]) StartIndex() int {
	return 0
}

// EndIndex returns the position one past the last element.
func (a *Array[T, B]) EndIndex() int {
	return a.n
}

// Get returns the element at position i.
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (a *Array[T, B]) Get(i int) T {
	v, err := a.TryGet(i)
	if err != nil {
		fail(err)
	}
	return v
}

// TryGet is like Get but returns an error instead of panicking.
func (a *Array[T, B]) TryGet(i int) (T, error) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, indexError(i, a.n)
	}
	return a.slots()[i], nil
}

// Set overwrites the element at position i.
// It panics with ErrIndexOutOfRange unless 0 <= i < Len(); use Append to
// add an element at position Len().
func (a *Array[T, B]) Set(i int, v T) {
	if err := a.TrySet(i, v); err != nil {
		fail(err)
	}
}

// TrySet is like Set but returns an error instead of panicking.
func (a *Array[T, B]) TrySet(i int, v T) error {
	if i < 0 || i >= a.n {
		return indexError(i, a.n)
	}
	a.slots()[i] = v
	return nil
}

// Replace replaces the elements in [lo, hi) with elems, shifting the
// elements after hi as needed. Every other mutation is a special case of
// Replace.
//
// It panics with ErrIndexOutOfRange unless 0 <= lo <= hi <= Len(), and with
// ErrCapacityExceeded if the result would not fit. On panic the array is left
// unchanged. elems may alias the array's own storage.
func (a *Array[T, B]) Replace(lo, hi int, elems ...T) {
	if err := a.replace(lo, hi, elems); err != nil {
		fail(err)
	}
}

// TryReplace is like Replace but returns an error instead of panicking.
func (a *Array[T, B]) TryReplace(lo, hi int, elems ...T) error {
	return a.replace(lo, hi, elems)
}

func (a *Array[T, B]) replace(lo, hi int, elems []T) error {
	if lo < 0 || lo > hi || hi > a.n {
		return rangeError(lo, hi, a.n)
	}
	capacity := Capacity[T, B]()
	delta := len(elems) - (hi - lo)
	if a.n+delta > capacity {
		return capacityError(a.n+delta, capacity)
	}
	// Elements only enter through replace; validating on the transition
	// out of empty covers every stored value.
	if a.n == 0 && len(elems) > 0 {
		if err := CheckLayout[T, B](); err != nil {
			return err
		}
	}

	s := a.slots()
	if overlaps(s, elems) {
		elems = slices.Clone(elems)
	}
	end := a.n + delta
	if delta != 0 {
		// copy moves overlapping ranges like memmove: back to front when
		// the tail moves right, front to back when it moves left.
		copy(s[hi+delta:end], s[hi:a.n])
	}
	copy(s[lo:], elems)
	if delta < 0 {
		clear(s[end:a.n])
	}
	a.n = end
	return nil
}

// Reserve always panics with ErrUnsupported: the capacity of an Array is
// fixed by its type. It exists so misuse as a growable sequence fails loudly.
func (a *Array[T, B]) Reserve(n int) {
	fail(a.TryReserve(n))
}

// TryReserve always returns ErrUnsupported.
func (a *Array[T, B]) TryReserve(n int) error {
	return errors.Wrapf(ErrUnsupported, "reserve %d elements beyond fixed capacity %d", n, a.Cap())
}

// slots reinterprets the backing region as Cap() contiguous elements.
// Only [0, a.n) hold live values.
func (a *Array[T, B]) slots() []T {
	capacity := Capacity[T, B]()
	if capacity == 0 {
		// B may be smaller than one T; don't form a *T into it.
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf)), capacity)
}
