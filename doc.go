// Package stackarray implements a fixed-capacity array stored inline in a
// fixed-size region.
//
// # Overview
//
// An Array[T, B] keeps up to Capacity[T, B]() elements of type T inside a
// value of type B, without any heap allocation. The capacity is
//
//	unsafe.Sizeof(B) / unsafe.Sizeof(T)
//
// so the region type picks the footprint and the element type picks how many
// elements fit. This is useful for:
//
//   - Small collections embedded by value in larger structs
//   - Hot paths that must not allocate
//   - Scratch buffers copied around as plain values
//
// # Basic Usage
//
//	var a stackarray.Array[int64, [64]byte] // 8 elements, zero value is empty
//	a.Append(1, 2, 3)
//	a.Insert(1, 9)         // [1, 9, 2, 3]
//	a.Replace(0, 2, 7)     // [7, 2, 3]
//	v := a.Remove(0)       // v == 7, a == [2, 3]
//
//	b := stackarray.Of[int64, [64]byte](0, 1, 2, 3)
//	stackarray.Equal(&b, []int64{0, 1, 2, 3}) // true
//
// Every mutation is a special case of Replace, which moves the tail of the
// array and writes the new elements in place.
//
// # Errors
//
// Out-of-range indexes, mutations past the capacity and calls to Reserve are
// programming errors and panic with an error matching ErrIndexOutOfRange,
// ErrCapacityExceeded or ErrUnsupported. The Try* variants (TryGet, TrySet,
// TryReplace, TryAppend, ...) perform the same checks and return the error
// instead. A failed mutation never modifies the array.
//
// # Element Types
//
// The zero value of every Go type is valid, so a zeroed region is always a
// valid (if unused) set of elements. Element types that hold pointers
// (strings, slices, maps, pointers, interfaces) must be stored in a region
// that is an array of exactly that type, e.g. Array[string, [4]string];
// otherwise the garbage collector could not see them. Pointer-free element
// types can use any pointer-free region, typically a byte array. See
// CheckLayout.
//
// # Copying and Concurrency
//
// Array is a value type: assignment copies the region and the length. It has
// no internal locking; share a single array across goroutines only with
// external synchronization. Slices returned by Slice point into the array they
// came from, never into its copies, and must not be used after its length
// changes.
//
// Methods have pointer receivers, String and GoString included, so format
// arrays through a pointer: fmt.Println(&a) prints [1, 2, 3], while
// fmt.Println(a) prints the raw struct with the unused part of the region.
package stackarray
