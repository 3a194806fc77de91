package narray

import "fmt"

// Resize returns a copy of a embedded centered in an array of the given
// shape. Axes that grow are zero-padded on both sides; axes that shrink are
// cropped around the center. Growing and shrinking axes may be mixed. The
// center convention matches the FFT shift convention: the element at index
// n/2 stays at index m/2.
//
// The requested shape must have the same rank as a; otherwise Resize returns
// ErrRankMismatch.
func Resize[T Scalar](a *Array[T], shape []int) (*Array[T], error) {
	if len(shape) != len(a.shape) {
		return nil, fmt.Errorf("%w: resize %v to %v", ErrRankMismatch, a.shape, shape)
	}

	if err := validateShape(shape); err != nil {
		return nil, err
	}

	out := New[T](shape...)

	ndim := len(shape)
	if ndim == 0 {
		out.data[0] = a.data[0]
		return out, nil
	}

	srcOff := make([]int, ndim)
	dstOff := make([]int, ndim)
	count := make([]int, ndim)

	for i := range shape {
		si, so := a.shape[i], shape[i]
		srcOff[i] = max(si/2-so/2, 0)
		dstOff[i] = max(so/2-si/2, 0)
		count[i] = min(si-srcOff[i], so-dstOff[i])
	}

	copyRegion(out, a, dstOff, srcOff, count)

	return out, nil
}

// copyRegion copies a rectangular block of count elements per axis, one
// contiguous last-axis run at a time.
func copyRegion[T Scalar](dst, src *Array[T], dstOff, srcOff, count []int) {
	ndim := len(count)
	last := ndim - 1
	runLen := count[last]

	idx := make([]int, ndim-1)

	for {
		so := srcOff[last] * src.strides[last]
		do := dstOff[last] * dst.strides[last]

		for i := 0; i < ndim-1; i++ {
			so += (srcOff[i] + idx[i]) * src.strides[i]
			do += (dstOff[i] + idx[i]) * dst.strides[i]
		}

		copy(dst.data[do:do+runLen], src.data[so:so+runLen])

		// Odometer over the leading axes of the copy region.
		i := ndim - 2
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < count[i] {
				break
			}

			idx[i] = 0
		}

		if i < 0 {
			return
		}
	}
}
