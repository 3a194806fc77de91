package fft

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-nufft/internal/testutil"
	"github.com/cwbudde/algo-nufft/narray"
)

func BenchmarkForwardAxes(b *testing.B) {
	// 128 exercises the radix plans, 160 (= ceil(1.25*128)) the
	// mixed-radix fallback used for oversampled grids.
	for _, n := range []int{128, 160} {
		data := testutil.RandomComplex(1, n*n)

		b.Run("2d/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			a := narray.New[complex128](n, n)
			for i := 0; i < b.N; i++ {
				copy(a.Data(), data)
				if err := ForwardAxes(a, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip1D(b *testing.B) {
	for _, n := range []int{1024, 1280} {
		data := testutil.RandomComplex(2, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			a, _ := narray.FromSlice(data, n)
			for i := 0; i < b.N; i++ {
				if err := ForwardAxes(a, nil); err != nil {
					b.Fatal(err)
				}
				if err := InverseAxes(a, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
