package stackarray

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/redact"
)

// Of returns an array holding elems, in order.
// It panics with ErrCapacityExceeded if len(elems) > Capacity[T, B]().
func Of[T, B any](elems ...T) Array[T, B] {
	var a Array[T, B]
	a.Replace(0, 0, elems...)
	return a
}

// Equal reports whether a holds exactly the elements of ref, in order.
func Equal[T comparable, B any](a *Array[T, B], ref []T) bool {
	return slices.Equal(a.Slice(), ref)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U, B any](a *Array[T, B], ref []U, eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), ref, eq)
}

// SafeFormat implements the redact.SafeFormatter interface. Brackets and
// separators are safe; elements go through the redaction-aware printer.
// It is used by redact.Sprint and friends; String does not go through it
// because redaction escapes marker characters inside elements.
func (a *Array[T, B]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i, v := range a.All() {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Print(v)
	}
	w.SafeRune(']')
}

// String renders the elements as "[e0, e1, ...]" using their %v form.
func (a *Array[T, B]) String() string {
	return a.render("%v")
}

// GoString renders the elements as "[e0, e1, ...]" using their %#v form.
func (a *Array[T, B]) GoString() string {
	return a.render("%#v")
}

func (a *Array[T, B]) render(verb string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, verb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
