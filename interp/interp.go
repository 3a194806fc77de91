// Package interp provides kernel-weighted interpolation from a uniform grid
// to arbitrary (non-integer) coordinates, and its exact adjoint, gridding.
//
// Coordinates index the trailing axes of the grid: a coordinate array of
// shape (..., d) addresses the last d grid axes, and all leading grid axes
// are independent batch axes. Positions outside the grid wrap around modulo
// the axis length, matching the periodicity of the DFT.
//
// Gridding enumerates exactly the same taps and weights as Interpolate, so
// the two are transposes of each other up to floating-point rounding, not
// merely approximately.
package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/kernel"
	"github.com/cwbudde/algo-nufft/narray"
)

// Interpolate gathers grid values at the given coordinates.
//
// coord has shape (..., d) with component j addressing trailing grid axis j.
// The result's shape is the grid's leading batch axes followed by coord's
// shape without its last axis: each output sample is the kernel-weighted sum
// of grid values within width/2 of the coordinate along every axis.
func Interpolate(grid *narray.Array[complex128], coord *narray.Array[float64], k kernel.Kernel, width, param float64) (*narray.Array[complex128], error) {
	g, err := newGeometry(grid.Shape(), coord, k, width)
	if err != nil {
		return nil, err
	}

	out := narray.New[complex128](g.outShape()...)

	gridData := grid.Data()
	outData := out.Data()
	coordData := coord.Data()

	ts := newTapSet(g.d, g.ntaps)

	for p := 0; p < g.npts; p++ {
		ts.fill(coordData[p*g.d:(p+1)*g.d], g.dims, g.strides, k, width, param)
		ts.visit(func(w float64, off int) {
			cw := complex(w, 0)
			for b := 0; b < g.nbatch; b++ {
				outData[b*g.npts+p] += cw * gridData[b*g.gridSize+off]
			}
		})
	}

	return out, nil
}

// Gridding scatter-accumulates samples onto a uniform grid of the given
// shape; it is the adjoint of Interpolate.
//
// coord has shape (..., d) and samples carries shape's leading batch axes
// followed by coord's shape without its last axis. The result has the given
// shape, whose trailing d axes form the grid and whose leading axes are
// batch axes.
func Gridding(samples *narray.Array[complex128], coord *narray.Array[float64], shape []int, k kernel.Kernel, width, param float64) (*narray.Array[complex128], error) {
	g, err := newGeometry(shape, coord, k, width)
	if err != nil {
		return nil, err
	}

	if err := g.checkSamples(samples); err != nil {
		return nil, err
	}

	out := narray.New[complex128](shape...)

	sampleData := samples.Data()
	outData := out.Data()
	coordData := coord.Data()

	ts := newTapSet(g.d, g.ntaps)

	for p := 0; p < g.npts; p++ {
		ts.fill(coordData[p*g.d:(p+1)*g.d], g.dims, g.strides, k, width, param)
		ts.visit(func(w float64, off int) {
			cw := complex(w, 0)
			for b := 0; b < g.nbatch; b++ {
				outData[b*g.gridSize+off] += cw * sampleData[b*g.npts+p]
			}
		})
	}

	return out, nil
}

// geometry splits a grid shape into batch and transform parts and carries
// the flattened loop bounds shared by Interpolate and Gridding.
type geometry struct {
	d        int
	ntaps    int
	batch    []int
	dims     []int // trailing d axis lengths, coordinate component order
	strides  []int // block-local strides per component
	pts      []int // coord shape without its last axis
	npts     int
	nbatch   int
	gridSize int
}

func newGeometry(gridShape []int, coord *narray.Array[float64], k kernel.Kernel, width float64) (*geometry, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrWidth, width)
	}

	coordShape := coord.Shape()
	if len(coordShape) == 0 {
		return nil, fmt.Errorf("%w: coord must have shape (..., d)", ErrCoordShape)
	}

	d := coordShape[len(coordShape)-1]
	if d > len(gridShape) {
		return nil, fmt.Errorf("%w: %d coordinate components, grid rank %d", ErrCoordShape, d, len(gridShape))
	}

	g := &geometry{
		d:       d,
		ntaps:   int(width) + 1,
		batch:   gridShape[:len(gridShape)-d],
		dims:    gridShape[len(gridShape)-d:],
		strides: make([]int, d),
		pts:     coordShape[:len(coordShape)-1],
	}

	stride := 1
	for j := d - 1; j >= 0; j-- {
		g.strides[j] = stride
		stride *= g.dims[j]
	}
	g.gridSize = stride

	g.npts = 1
	for _, n := range g.pts {
		g.npts *= n
	}

	g.nbatch = 1
	for _, n := range g.batch {
		g.nbatch *= n
	}

	return g, nil
}

func (g *geometry) outShape() []int {
	out := make([]int, 0, len(g.batch)+len(g.pts))
	out = append(out, g.batch...)
	out = append(out, g.pts...)
	return out
}

// checkSamples verifies that samples has batch dims matching the target
// grid's batch dims followed by the coordinate point dims.
func (g *geometry) checkSamples(samples *narray.Array[complex128]) error {
	want := g.outShape()
	got := samples.Shape()

	if len(got) != len(want) {
		return fmt.Errorf("%w: samples rank %d, want %d", ErrShapeMismatch, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: samples shape %v, want %v", ErrShapeMismatch, got, want)
		}
	}

	return nil
}

// tapSet holds per-axis tap weights and wrapped, stride-scaled grid offsets
// for one coordinate point.
type tapSet struct {
	d       int
	ntaps   int
	weights []float64
	offsets []int
	combo   []int
}

func newTapSet(d, ntaps int) *tapSet {
	return &tapSet{
		d:       d,
		ntaps:   ntaps,
		weights: make([]float64, d*ntaps),
		offsets: make([]int, d*ntaps),
		combo:   make([]int, d),
	}
}

// fill computes the taps for the point at c: along component j the taps
// start at ceil(c[j] - width/2) and cover int(width)+1 consecutive grid
// positions, wrapped modulo the axis length. Taps outside the kernel
// support get weight zero.
func (ts *tapSet) fill(c []float64, dims, strides []int, k kernel.Kernel, width, param float64) {
	for j, n := range dims {
		start := int(math.Ceil(c[j] - width/2))
		for t := 0; t < ts.ntaps; t++ {
			pos := start + t

			idx := pos % n
			if idx < 0 {
				idx += n
			}

			ts.weights[j*ts.ntaps+t] = k.Evaluate(float64(pos)-c[j], width, param)
			ts.offsets[j*ts.ntaps+t] = idx * strides[j]
		}
	}
}

// visit calls fn once per tap combination with the separable weight product
// and the summed grid offset, skipping zero-weight combinations.
func (ts *tapSet) visit(fn func(w float64, off int)) {
	for j := range ts.combo {
		ts.combo[j] = 0
	}

	for {
		w := 1.0
		off := 0
		for j := 0; j < ts.d; j++ {
			w *= ts.weights[j*ts.ntaps+ts.combo[j]]
			off += ts.offsets[j*ts.ntaps+ts.combo[j]]
		}

		if w != 0 {
			fn(w, off)
		}

		j := ts.d - 1
		for ; j >= 0; j-- {
			ts.combo[j]++
			if ts.combo[j] < ts.ntaps {
				break
			}
			ts.combo[j] = 0
		}
		if j < 0 {
			return
		}
	}
}
