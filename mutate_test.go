package stackarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	a := Of[int64, [64]byte](1, 2, 3)
	a.Insert(1, 99)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []int64{1, 99, 2, 3}, a.Slice())

	a.Insert(0, -1, 0)
	a.Insert(a.Len(), 4)
	assert.Equal(t, []int64{-1, 0, 1, 99, 2, 3, 4}, a.Slice())

	assert.ErrorIs(t, a.TryInsert(a.Len()+1, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.TryInsert(-1, 5), ErrIndexOutOfRange)
	requirePanicsWith(t, ErrIndexOutOfRange, func() { a.Insert(9, 5) })
}

func TestRemove(t *testing.T) {
	a := Of[int64, [64]byte](10, 20, 30)
	removed := a.Remove(1)
	assert.Equal(t, int64(20), removed)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, int64(10), a.Get(0))
	assert.Equal(t, int64(30), a.Get(1))

	_, err := a.TryRemove(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	requirePanicsWith(t, ErrIndexOutOfRange, func() { a.Remove(-1) })
	assert.Equal(t, []int64{10, 30}, a.Slice())
}

func TestRemoveOnlyElement(t *testing.T) {
	a := Of[int64, [64]byte](7)
	v, err := a.TryRemove(0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, [64]byte{}, a.buf)
}

func TestRemoveLast(t *testing.T) {
	a := Of[int64, [64]byte](1, 2, 3)
	assert.Equal(t, int64(3), a.RemoveLast())
	assert.Equal(t, int64(2), a.RemoveLast())
	assert.Equal(t, int64(1), a.RemoveLast())
	requirePanicsWith(t, ErrIndexOutOfRange, func() { a.RemoveLast() })
}

func TestDelete(t *testing.T) {
	a := Of[int64, [64]byte](0, 1, 2, 3, 4, 5)
	a.Delete(1, 3)
	assert.Equal(t, []int64{0, 3, 4, 5}, a.Slice())

	a.Delete(2, 2)
	assert.Equal(t, []int64{0, 3, 4, 5}, a.Slice())

	require.NoError(t, a.TryDelete(2, 4))
	assert.Equal(t, []int64{0, 3}, a.Slice())

	assert.ErrorIs(t, a.TryDelete(1, 3), ErrIndexOutOfRange)
	requirePanicsWith(t, ErrIndexOutOfRange, func() { a.Delete(2, 1) })
}

func TestClear(t *testing.T) {
	a := Of[int64, [64]byte](1, 2, 3, 4, 5, 6, 7, 8)
	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, [64]byte{}, a.buf)

	// Cleared arrays are reusable up to full capacity.
	for i := range int64(8) {
		a.Append(i)
	}
	assert.Equal(t, 8, a.Len())

	var empty ints
	empty.Clear()
	assert.True(t, empty.IsEmpty())
}

func TestAppendSequence(t *testing.T) {
	var a Array[int32, [64]byte]
	for i := range int32(16) {
		require.NoError(t, a.TryAppend(i*3))
	}
	assert.Equal(t, 16, a.Len())
	for i := range 16 {
		assert.Equal(t, int32(i*3), a.Get(i))
	}
	assert.ErrorIs(t, a.TryAppend(0), ErrCapacityExceeded)
}
