package nufft

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-nufft/internal/testutil"
	"github.com/cwbudde/algo-nufft/narray"
)

func BenchmarkForward2D(b *testing.B) {
	for _, n := range []int{32, 64} {
		const npts = 1024

		img, _ := narray.FromSlice(testutil.RandomComplex(1, n*n), n, n)
		coord, _ := narray.FromSlice(testutil.RandomCoords(2, npts, []int{n, n}), npts, 2)

		tr, err := New()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tr.Forward(img, coord); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAdjoint2D(b *testing.B) {
	for _, n := range []int{32, 64} {
		const npts = 1024

		samples, _ := narray.FromSlice(testutil.RandomComplex(3, npts), npts)
		coord, _ := narray.FromSlice(testutil.RandomCoords(4, npts, []int{n, n}), npts, 2)
		oshape := []int{n, n}

		tr, err := New()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tr.Adjoint(samples, coord, oshape); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
