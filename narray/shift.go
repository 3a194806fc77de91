package narray

// Roll circularly shifts the array by shift positions along the given axis,
// in place. Elements shifted past the end wrap around to the start. Negative
// shifts and negative axes are allowed.
func Roll[T Scalar](a *Array[T], shift, axis int) error {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return err
	}

	n := a.shape[ax]

	shift = ((shift % n) + n) % n
	if shift == 0 {
		return nil
	}

	inner := a.strides[ax]
	block := n * inner
	outer := len(a.data) / block

	scratch := make([]T, block)

	for o := 0; o < outer; o++ {
		base := o * block

		for i := 0; i < n; i++ {
			j := (i + shift) % n
			copy(scratch[j*inner:(j+1)*inner], a.data[base+i*inner:base+(i+1)*inner])
		}

		copy(a.data[base:base+block], scratch)
	}

	return nil
}

// FFTShift moves the zero-frequency element from index 0 to index n/2 along
// each listed axis, in place. A nil axis list selects all axes.
func FFTShift[T Scalar](a *Array[T], axes []int) error {
	normalized, err := NormalizeAxes(axes, len(a.shape))
	if err != nil {
		return err
	}

	for _, ax := range normalized {
		if err := Roll(a, a.shape[ax]/2, ax); err != nil {
			return err
		}
	}

	return nil
}

// IFFTShift is the exact inverse of FFTShift, also for odd axis lengths.
func IFFTShift[T Scalar](a *Array[T], axes []int) error {
	normalized, err := NormalizeAxes(axes, len(a.shape))
	if err != nil {
		return err
	}

	for _, ax := range normalized {
		if err := Roll(a, -(a.shape[ax] / 2), ax); err != nil {
			return err
		}
	}

	return nil
}
