package nufft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/fft"
	"github.com/cwbudde/algo-nufft/narray"
)

// Norm selects the normalization of the centered transforms.
type Norm int

const (
	// NormBackward leaves the forward transform unscaled and scales the
	// inverse by 1/n per transformed axis.
	NormBackward Norm = iota

	// NormOrtho scales both directions by 1/sqrt(n) per transformed axis,
	// making the transform unitary.
	NormOrtho
)

// FFTOption configures FFT and IFFT.
type FFTOption func(*fftConfig)

type fftConfig struct {
	oshape []int
	axes   []int
	norm   Norm
}

// WithShape zero-pads or crops the input, centered, to the given shape
// before transforming. The shape must have the same rank as the input.
// Default: the input's own shape.
func WithShape(oshape []int) FFTOption {
	return func(c *fftConfig) { c.oshape = oshape }
}

// WithAxes restricts the transform to the given axes. Negative axes count
// from the end. Default: all axes.
func WithAxes(axes []int) FFTOption {
	return func(c *fftConfig) { c.axes = axes }
}

// WithNorm selects the normalization mode. Default: NormBackward.
func WithNorm(norm Norm) FFTOption {
	return func(c *fftConfig) { c.norm = norm }
}

// FFT computes the centered forward DFT of a: the zero-frequency term ends
// up at index n/2 of every transformed axis rather than index 0. The input
// is never modified.
func FFT(a *narray.Array[complex128], opts ...FFTOption) (*narray.Array[complex128], error) {
	return centeredTransform(a, false, opts)
}

// IFFT computes the centered inverse DFT of a, the exact inverse of FFT for
// matching shape, axes, and norm. The input is never modified.
func IFFT(a *narray.Array[complex128], opts ...FFTOption) (*narray.Array[complex128], error) {
	return centeredTransform(a, true, opts)
}

func centeredTransform(a *narray.Array[complex128], inverse bool, opts []FFTOption) (*narray.Array[complex128], error) {
	var cfg fftConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	oshape := cfg.oshape
	if oshape == nil {
		oshape = a.Shape()
	}

	axes, err := narray.NormalizeAxes(cfg.axes, a.NDim())
	if err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}

	out, err := narray.Resize(a, oshape)
	if err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}

	if err := narray.IFFTShift(out, axes); err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}

	if inverse {
		err = fft.InverseAxes(out, axes)
	} else {
		err = fft.ForwardAxes(out, axes)
	}
	if err != nil {
		return nil, err
	}

	if err := narray.FFTShift(out, axes); err != nil {
		return nil, fmt.Errorf("nufft: %w", err)
	}

	if cfg.norm == NormOrtho {
		applyOrtho(out, axes, inverse)
	}

	return out, nil
}

// applyOrtho rescales a backward-normalized result to the unitary
// convention: forward results shrink by 1/sqrt(n) per axis; inverse results
// grow back by sqrt(n) per axis on top of the 1/n the engine applied.
func applyOrtho(a *narray.Array[complex128], axes []int, inverse bool) {
	size := 1.0
	for _, ax := range axes {
		size *= float64(a.Dim(ax))
	}

	scale := 1 / math.Sqrt(size)
	if inverse {
		scale = math.Sqrt(size)
	}

	a.Scale(complex(scale, 0))
}
