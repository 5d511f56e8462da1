package stackarray

// SizeInUse returns the number of bytes of the backing region occupied by
// live elements.
func (a *Array[T, B]) SizeInUse() int {
	return a.n * LayoutOf[T, B]().Stride
}

// Utilization returns the ratio of bytes in use to the region size (0.0 to 1.0).
// Returns 0.0 if the region has zero size.
func (a *Array[T, B]) Utilization() float64 {
	size := LayoutOf[T, B]().BufferSize
	if size == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(size)
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T, B]) Metrics() Metrics {
	return Metrics{
		Layout:      LayoutOf[T, B](),
		Len:         a.n,
		SizeInUse:   a.SizeInUse(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an array.
type Metrics struct {
	Layout
	Len         int     // Live elements
	SizeInUse   int     // Bytes occupied by live elements
	Utilization float64 // Ratio of SizeInUse to BufferSize (0.0-1.0)
}
