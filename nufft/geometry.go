package nufft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/narray"
)

// OversampledShape returns shape with its trailing d axes enlarged by the
// oversampling factor: os_i = ceil(oversamp * n_i). Leading axes pass
// through unchanged, so os_i >= n_i holds on every transformed axis.
func OversampledShape(shape []int, d int, oversamp float64) ([]int, error) {
	if d < 1 || d > len(shape) {
		return nil, fmt.Errorf("%w: %d transform axes for shape %v", ErrShapeMismatch, d, shape)
	}
	for _, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("%w: non-positive dimension in shape %v", ErrShapeMismatch, shape)
		}
	}
	if oversamp < 1 {
		return nil, fmt.Errorf("%w: oversampling factor %v must be >= 1", ErrDomain, oversamp)
	}

	out := make([]int, len(shape))
	copy(out, shape)
	for i := len(shape) - d; i < len(shape); i++ {
		out[i] = int(math.Ceil(oversamp * float64(shape[i])))
	}

	return out, nil
}

// KaiserBesselBeta returns the kernel shape parameter matched to the
// oversampling factor and kernel width, after Beatty et al. (2005):
// beta = pi * sqrt((width/oversamp * (oversamp-0.5))^2 - 0.8).
//
// The radicand is negative for narrow kernels at low oversampling (for
// example width 1 at oversamp 1.0); such pairs have no valid shape
// parameter and yield ErrDomain.
func KaiserBesselBeta(oversamp, width float64) (float64, error) {
	r := width / oversamp * (oversamp - 0.5)

	radicand := r*r - 0.8
	if radicand < 0 {
		return 0, fmt.Errorf("%w: beta radicand %v for oversamp=%v width=%v", ErrDomain, radicand, oversamp, width)
	}

	return math.Pi * math.Sqrt(radicand), nil
}

// ScaleCoord maps coordinates from original-grid units into oversampled-grid
// index space: component j is scaled by os_j/n_j and shifted by os_j/2
// (integer halving) so the frequency origin lands on the center index of
// the oversampled grid. shape supplies the original trailing axis lengths.
// The input is never modified.
func ScaleCoord(coord *narray.Array[float64], shape []int, oversamp float64) (*narray.Array[float64], error) {
	coordShape := coord.Shape()
	if len(coordShape) == 0 {
		return nil, fmt.Errorf("%w: coord must have shape (..., d)", ErrShapeMismatch)
	}

	d := coordShape[len(coordShape)-1]
	if d > len(shape) {
		return nil, fmt.Errorf("%w: %d coordinate components for shape %v", ErrShapeMismatch, d, shape)
	}

	scale := make([]float64, d)
	shift := make([]float64, d)
	for j := 0; j < d; j++ {
		n := shape[len(shape)-d+j]
		osn := int(math.Ceil(oversamp * float64(n)))
		scale[j] = float64(osn) / float64(n)
		shift[j] = float64(osn / 2)
	}

	out := coord.Clone()
	data := out.Data()
	for p := 0; p < len(data); p += d {
		for j := 0; j < d; j++ {
			data[p+j] = data[p+j]*scale[j] + shift[j]
		}
	}

	return out, nil
}
