package stackarray

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Capacity returns the number of T elements that fit in a B region:
// sizeof(B) / sizeof(T), rounded down. In Go the size of a type is always a
// multiple of its alignment, so sizeof(T) is also the stride between
// consecutive elements.
//
// Capacity panics with ErrInvalidLayout if T has zero size.
func Capacity[T, B any]() int {
	var (
		zero T
		buf  B
	)
	stride := unsafe.Sizeof(zero)
	if stride == 0 {
		fail(errors.Wrapf(ErrInvalidLayout, "element type %s has zero size", reflect.TypeFor[T]()))
	}
	return int(unsafe.Sizeof(buf) / stride)
}

// Layout describes how T elements are packed into a B region.
type Layout struct {
	BufferSize int // Size of the backing region in bytes
	Stride     int // Distance between consecutive elements in bytes
	Align      int // Required alignment of T
	Capacity   int // Maximum number of elements
	Slack      int // Trailing bytes that cannot hold a whole element
}

// LayoutOf returns the static layout of an Array[T, B].
func LayoutOf[T, B any]() Layout {
	var (
		zero T
		buf  B
	)
	capacity := Capacity[T, B]()
	stride := int(unsafe.Sizeof(zero))
	size := int(unsafe.Sizeof(buf))
	return Layout{
		BufferSize: size,
		Stride:     stride,
		Align:      int(unsafe.Alignof(zero)),
		Capacity:   capacity,
		Slack:      size - capacity*stride,
	}
}

type layoutKey struct {
	elem, buf reflect.Type
}

// checked caches CheckLayout results: layoutKey -> error (nil if valid).
var checked sync.Map

// CheckLayout reports whether T elements may be stored in a B region.
//
// The garbage collector scans the region using B's pointer layout, so every
// pointer a T holds must land where B declares one. The pairing is valid if
// neither T nor B contains pointers, or if B is an array of exactly T. Any
// other pairing (for example strings stored in a [64]byte) returns
// ErrInvalidLayout.
//
// Arrays check their layout the first time they become non-empty, so calling
// CheckLayout directly is only needed to fail early, e.g. from an init func.
func CheckLayout[T, B any]() error {
	key := layoutKey{elem: reflect.TypeFor[T](), buf: reflect.TypeFor[B]()}
	if v, ok := checked.Load(key); ok {
		err, _ := v.(error)
		return err
	}
	err := checkLayout(key.elem, key.buf)
	checked.Store(key, err)
	return err
}

func checkLayout(elem, buf reflect.Type) error {
	if elem.Size() == 0 {
		return errors.Wrapf(ErrInvalidLayout, "element type %s has zero size", elem)
	}
	if !hasPointers(elem) && !hasPointers(buf) {
		return nil
	}
	if buf.Kind() == reflect.Array && buf.Elem() == elem {
		return nil
	}
	return errors.Wrapf(ErrInvalidLayout,
		"element type %s cannot be stored in %s: pointer-holding elements need a [N]%s buffer",
		elem, buf, elem)
}

// hasPointers reports whether values of t contain memory the garbage
// collector has to scan.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice, reflect.String, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// overlaps reports whether a and b share any backing memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
