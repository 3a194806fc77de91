package testutil

import "math/rand"

// RandomComplex generates a reproducible complex test signal with real and
// imaginary parts uniform in [-1, 1).
func RandomComplex(seed int64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// RandomCoords generates reproducible Fourier-domain coordinates for a grid
// with the given trailing shape: npts points, where the coordinate of point
// p along axis i is uniform in [-shape[i]/2, shape[i]/2). The result is flat
// row-major with npts*len(shape) entries.
func RandomCoords(seed int64, npts int, shape []int) []float64 {
	out := make([]float64, npts*len(shape))
	rng := rand.New(rand.NewSource(seed))
	for p := 0; p < npts; p++ {
		for i, n := range shape {
			half := float64(n) / 2
			out[p*len(shape)+i] = rng.Float64()*2*half - half
		}
	}
	return out
}

// GridCoords generates the full set of integer grid coordinates for the
// given trailing shape, indexed the way a centered transform indexes
// frequencies: axis i runs over -n_i/2 .. n_i/2-1. The result is flat
// row-major with prod(shape)*len(shape) entries.
func GridCoords(shape []int) []float64 {
	d := len(shape)
	npts := 1
	for _, n := range shape {
		npts *= n
	}

	out := make([]float64, npts*d)
	idx := make([]int, d)
	for p := 0; p < npts; p++ {
		for i, n := range shape {
			out[p*d+i] = float64(idx[i] - n/2)
		}
		for i := d - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
		}
	}
	return out
}

// Impulse generates a complex unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
