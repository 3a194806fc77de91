package nufft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/narray"
)

// ApodizationWindow returns the length-n signal-domain correction window
// for a Kaiser-Bessel kernel of the given width and shape parameter beta on
// an oversampled axis of length osn.
//
// Entry i is s/sinh(s) with s = sqrt(beta^2 - (pi*width*(i - n/2)/osn)^2),
// the reciprocal of the kernel's signal-domain taper. At s = 0 the limiting
// value 1 is used. A negative radicand would make the window complex; it is
// reported as ErrDomain instead of being propagated as NaN.
func ApodizationWindow(n, osn int, width, beta float64) ([]float64, error) {
	if n < 1 || osn < n {
		return nil, fmt.Errorf("%w: window length %d for oversampled length %d", ErrShapeMismatch, n, osn)
	}

	win := make([]float64, n)
	for i := range win {
		x := math.Pi * width * float64(i-n/2) / float64(osn)

		radicand := beta*beta - x*x
		if radicand < 0 {
			return nil, fmt.Errorf("%w: apodization radicand %v at index %d (n=%d osn=%d width=%v beta=%v)",
				ErrDomain, radicand, i, n, osn, width, beta)
		}

		s := math.Sqrt(radicand)
		if s == 0 {
			win[i] = 1
			continue
		}
		win[i] = s / math.Sinh(s)
	}

	return win, nil
}

// apodize multiplies the trailing d axes of a by their apodization windows,
// in place. The trailing axes carry their original (non-oversampled)
// lengths; the oversampled lengths derive from oversamp per axis.
func apodize(a *narray.Array[complex128], d int, oversamp, width, beta float64) error {
	ndim := a.NDim()
	for ax := ndim - d; ax < ndim; ax++ {
		n := a.Dim(ax)
		osn := int(math.Ceil(oversamp * float64(n)))

		win, err := ApodizationWindow(n, osn, width, beta)
		if err != nil {
			return err
		}

		applyAxisWindow(a, ax, win)
	}

	return nil
}

// applyAxisWindow broadcast-multiplies win along axis ax of a, in place.
func applyAxisWindow(a *narray.Array[complex128], ax int, win []float64) {
	data := a.Data()
	n := a.Dim(ax)
	inner := a.Strides()[ax]
	block := n * inner
	outer := len(data) / block

	for o := 0; o < outer; o++ {
		base := o * block
		for i := 0; i < n; i++ {
			f := complex(win[i], 0)
			seg := data[base+i*inner : base+(i+1)*inner]
			for j := range seg {
				seg[j] *= f
			}
		}
	}
}
