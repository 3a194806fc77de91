package narray

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |a| element-wise as a real array of the same shape.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output array.
func Magnitude(a *Array[complex128]) *Array[float64] {
	out := New[float64](a.shape...)
	if len(a.data) == 0 {
		return out
	}

	re, im, buf := getScratch(len(a.data))

	for i, c := range a.data {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out.data, re, im)
	putScratch(buf)

	return out
}

// Power returns |a|^2 element-wise as a real array of the same shape.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output array.
func Power(a *Array[complex128]) *Array[float64] {
	out := New[float64](a.shape...)
	if len(a.data) == 0 {
		return out
	}

	re, im, buf := getScratch(len(a.data))

	for i, c := range a.data {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out.data, re, im)
	putScratch(buf)

	return out
}
