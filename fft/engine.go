package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// engine transforms one strided line of fixed length in place.
type engine interface {
	forward(line []complex128, stride int) error
	inverse(line []complex128, stride int) error
}

func newEngine(n int) (engine, error) {
	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fft: failed to create FFT plan: %w", err)
		}

		return &radixEngine{plan: plan}, nil
	}

	return &mixedRadixEngine{
		cfft: fourier.NewCmplxFFT(n),
		in:   make([]complex128, n),
		out:  make([]complex128, n),
	}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// radixEngine wraps a power-of-two plan. Plan inverses already apply the
// 1/n scaling.
type radixEngine struct {
	plan *algofft.Plan[complex128]
}

func (e *radixEngine) forward(line []complex128, stride int) error {
	return e.plan.ForwardStrided(line, line, stride)
}

func (e *radixEngine) inverse(line []complex128, stride int) error {
	return e.plan.InverseStrided(line, line, stride)
}

// mixedRadixEngine handles arbitrary lengths with gonum's complex FFT,
// which is unnormalized in both directions; the inverse applies 1/n here.
// Lines are gathered into contiguous scratch since gonum has no strided
// entry point.
type mixedRadixEngine struct {
	cfft *fourier.CmplxFFT
	in   []complex128
	out  []complex128
}

func (e *mixedRadixEngine) forward(line []complex128, stride int) error {
	n := e.cfft.Len()
	for i := 0; i < n; i++ {
		e.in[i] = line[i*stride]
	}

	e.cfft.Coefficients(e.out, e.in)

	for i := 0; i < n; i++ {
		line[i*stride] = e.out[i]
	}

	return nil
}

func (e *mixedRadixEngine) inverse(line []complex128, stride int) error {
	n := e.cfft.Len()
	for i := 0; i < n; i++ {
		e.in[i] = line[i*stride]
	}

	e.cfft.Sequence(e.out, e.in)

	scale := complex(1/float64(n), 0)
	for i := 0; i < n; i++ {
		line[i*stride] = e.out[i] * scale
	}

	return nil
}
