package nufft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/interp"
	"github.com/cwbudde/algo-nufft/kernel"
	"github.com/cwbudde/algo-nufft/narray"
)

const (
	// DefaultOversampling is the default grid oversampling factor.
	DefaultOversampling = 1.25

	// DefaultWidth is the default kernel full width in oversampled-grid
	// units.
	DefaultWidth = 4.0
)

// Option configures a Transform.
type Option func(*Transform)

// WithOversampling sets the oversampling factor. Values below 1 leave the
// configuration unchanged.
func WithOversampling(oversamp float64) Option {
	return func(t *Transform) {
		if oversamp >= 1 {
			t.oversamp = oversamp
		}
	}
}

// WithWidth sets the kernel full width in oversampled-grid units. Values
// below 1 leave the configuration unchanged.
func WithWidth(width float64) Option {
	return func(t *Transform) {
		if width >= 1 {
			t.width = width
		}
	}
}

// WithKernel replaces the interpolation kernel. The default Kaiser-Bessel
// kernel is the one the apodization correction is derived for; substituting
// another kernel changes the accuracy characteristics but not the pipeline.
func WithKernel(k kernel.Kernel) Option {
	return func(t *Transform) {
		if k != nil {
			t.kernel = k
		}
	}
}

// Transform is a stateless NUFFT operator with a fixed oversampling factor,
// kernel width, and derived Kaiser-Bessel shape parameter. Methods never
// modify their inputs, so a Transform is safe for concurrent use.
type Transform struct {
	oversamp float64
	width    float64
	beta     float64
	kernel   kernel.Kernel
}

// New returns a Transform configured by opts. It fails with ErrDomain when
// the oversampling/width combination admits no valid shape parameter.
func New(opts ...Option) (*Transform, error) {
	t := &Transform{
		oversamp: DefaultOversampling,
		width:    DefaultWidth,
		kernel:   kernel.KaiserBessel{},
	}
	for _, opt := range opts {
		opt(t)
	}

	beta, err := KaiserBesselBeta(t.oversamp, t.width)
	if err != nil {
		return nil, err
	}
	t.beta = beta

	return t, nil
}

// Oversampling returns the configured oversampling factor.
func (t *Transform) Oversampling() float64 { return t.oversamp }

// Width returns the configured kernel full width.
func (t *Transform) Width() float64 { return t.width }

// Beta returns the derived Kaiser-Bessel shape parameter.
func (t *Transform) Beta() float64 { return t.beta }

// Forward maps a signal-domain array to Fourier-domain samples at the given
// coordinates.
//
// coord has shape (..., d); its last axis addresses the trailing d axes of
// input, and coordinates along axis i must lie within [-n_i/2, n_i/2).
// The result carries input's leading batch axes followed by coord's shape
// without its last axis. The input is never modified.
func (t *Transform) Forward(input *narray.Array[complex128], coord *narray.Array[float64]) (*narray.Array[complex128], error) {
	d, err := coordDim(coord, input.NDim())
	if err != nil {
		return nil, err
	}

	shape := input.Shape()
	osShape, err := OversampledShape(shape, d, t.oversamp)
	if err != nil {
		return nil, err
	}

	output := input.Clone()
	if err := apodize(output, d, t.oversamp, t.width, t.beta); err != nil {
		return nil, err
	}
	output.Scale(complex(1/math.Sqrt(trailingSize(shape, d)), 0))

	output, err = FFT(output, WithShape(osShape), WithAxes(trailingAxes(input.NDim(), d)))
	if err != nil {
		return nil, err
	}

	scaled, err := ScaleCoord(coord, shape, t.oversamp)
	if err != nil {
		return nil, err
	}

	samples, err := interp.Interpolate(output, scaled, t.kernel, t.width, t.beta)
	if err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}
	samples.Scale(complex(1/math.Pow(t.width, float64(d)), 0))

	return samples, nil
}

// Adjoint maps Fourier-domain samples back to a signal-domain array of
// shape oshape. It is the exact adjoint of Forward over the standard
// complex inner product, which iterative least-squares reconstructions
// rely on.
//
// input carries oshape's leading batch axes followed by coord's shape
// without its last axis. The input is never modified.
func (t *Transform) Adjoint(input *narray.Array[complex128], coord *narray.Array[float64], oshape []int) (*narray.Array[complex128], error) {
	d, err := coordDim(coord, len(oshape))
	if err != nil {
		return nil, err
	}

	osShape, err := OversampledShape(oshape, d, t.oversamp)
	if err != nil {
		return nil, err
	}

	if err := checkAdjointShape(input, coord, oshape, d); err != nil {
		return nil, err
	}

	scaled, err := ScaleCoord(coord, oshape, t.oversamp)
	if err != nil {
		return nil, err
	}

	grid, err := interp.Gridding(input, scaled, osShape, t.kernel, t.width, t.beta)
	if err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}
	grid.Scale(complex(1/math.Pow(t.width, float64(d)), 0))

	output, err := IFFT(grid, WithAxes(trailingAxes(len(oshape), d)))
	if err != nil {
		return nil, err
	}

	output, err = narray.Resize(output, oshape)
	if err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}
	output.Scale(complex(trailingSize(osShape, d)/math.Sqrt(trailingSize(oshape, d)), 0))

	if err := apodize(output, d, t.oversamp, t.width, t.beta); err != nil {
		return nil, err
	}

	return output, nil
}

// Forward computes a one-shot NUFFT; see Transform.Forward.
func Forward(input *narray.Array[complex128], coord *narray.Array[float64], opts ...Option) (*narray.Array[complex128], error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return t.Forward(input, coord)
}

// Adjoint computes a one-shot adjoint NUFFT; see Transform.Adjoint.
func Adjoint(input *narray.Array[complex128], coord *narray.Array[float64], oshape []int, opts ...Option) (*narray.Array[complex128], error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return t.Adjoint(input, coord, oshape)
}

// coordDim validates the coordinate array against an array rank and returns
// the transform dimensionality d = coord.Shape()[-1].
func coordDim(coord *narray.Array[float64], ndim int) (int, error) {
	shape := coord.Shape()
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: coord must have shape (..., d)", ErrShapeMismatch)
	}

	d := shape[len(shape)-1]
	if d > ndim {
		return 0, fmt.Errorf("%w: %d coordinate components, array rank %d", ErrShapeMismatch, d, ndim)
	}

	return d, nil
}

// checkAdjointShape verifies that input carries oshape's batch axes
// followed by coord's point axes.
func checkAdjointShape(input *narray.Array[complex128], coord *narray.Array[float64], oshape []int, d int) error {
	coordShape := coord.Shape()
	want := make([]int, 0, len(oshape)-d+len(coordShape)-1)
	want = append(want, oshape[:len(oshape)-d]...)
	want = append(want, coordShape[:len(coordShape)-1]...)

	got := input.Shape()
	if len(got) != len(want) {
		return fmt.Errorf("%w: input rank %d, want %d (batch %v + points %v)",
			ErrShapeMismatch, len(got), len(want), oshape[:len(oshape)-d], coordShape[:len(coordShape)-1])
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: input shape %v, want %v", ErrShapeMismatch, got, want)
		}
	}

	return nil
}

func trailingAxes(ndim, d int) []int {
	axes := make([]int, d)
	for i := range axes {
		axes[i] = ndim - d + i
	}
	return axes
}

func trailingSize(shape []int, d int) float64 {
	size := 1.0
	for _, n := range shape[len(shape)-d:] {
		size *= float64(n)
	}
	return size
}
