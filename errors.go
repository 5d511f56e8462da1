package stackarray

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Sentinel errors. Every error returned by a Try* method, and every value
// passed to panic by the other methods, matches one of these under errors.Is.
var (
	// ErrIndexOutOfRange reports an index outside [0, Len()) or a range
	// outside [0, Len()].
	ErrIndexOutOfRange = errors.New("stackarray: index out of range")

	// ErrCapacityExceeded reports a mutation that would grow the array past
	// its fixed capacity.
	ErrCapacityExceeded = errors.New("stackarray: capacity exceeded")

	// ErrUnsupported is returned by Reserve. The backing region never grows.
	ErrUnsupported = errors.New("stackarray: operation not supported")

	// ErrInvalidLayout reports an element/buffer pairing that cannot be
	// stored safely, see CheckLayout.
	ErrInvalidLayout = errors.New("stackarray: invalid layout")
)

func indexError(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", i, n)
}

func rangeError(lo, hi, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "range [%d:%d] with length %d", lo, hi, n)
}

func capacityError(want, capacity int) error {
	return errors.Wrapf(ErrCapacityExceeded, "length %d exceeds capacity %d", want, capacity)
}

// fail logs err and panics with it.
func fail(err error) {
	Logger().Error("stackarray: precondition violated", zap.Error(err))
	panic(err)
}
