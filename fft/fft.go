package fft

import (
	"fmt"

	"github.com/cwbudde/algo-nufft/narray"
)

// ForwardAxes computes the forward DFT of a along each listed axis, in
// place. A nil axis list selects all axes; negative axes count from the
// end. The transform is unnormalized.
func ForwardAxes(a *narray.Array[complex128], axes []int) error {
	return transform(a, axes, false)
}

// InverseAxes computes the inverse DFT of a along each listed axis, in
// place, scaling by 1/n along every transformed axis.
func InverseAxes(a *narray.Array[complex128], axes []int) error {
	return transform(a, axes, true)
}

func transform(a *narray.Array[complex128], axes []int, inverse bool) error {
	normalized, err := narray.NormalizeAxes(axes, a.NDim())
	if err != nil {
		return fmt.Errorf("fft: %w", err)
	}

	// Axes of equal length share one engine within a call.
	engines := make(map[int]engine, len(normalized))

	for _, ax := range normalized {
		n := a.Dim(ax)
		if n == 1 {
			continue
		}

		eng, ok := engines[n]
		if !ok {
			eng, err = newEngine(n)
			if err != nil {
				return err
			}
			engines[n] = eng
		}

		if err := transformAxis(a, ax, eng, inverse); err != nil {
			return err
		}
	}

	return nil
}

// transformAxis applies eng to every 1-D line of a along axis ax. In
// row-major layout the lines along ax start at offsets o*block+i for
// o < outer, i < inner, with elements inner apart.
func transformAxis(a *narray.Array[complex128], ax int, eng engine, inverse bool) error {
	data := a.Data()
	n := a.Dim(ax)
	inner := a.Strides()[ax]
	block := n * inner
	outer := len(data) / block

	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			line := data[o*block+i:]

			var err error
			if inverse {
				err = eng.inverse(line, inner)
			} else {
				err = eng.forward(line, inner)
			}
			if err != nil {
				return fmt.Errorf("fft: axis %d: %w", ax, err)
			}
		}
	}

	return nil
}
