package nufft

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-nufft/internal/testutil"
	"github.com/cwbudde/algo-nufft/narray"
)

func TestOversampledShape(t *testing.T) {
	cases := []struct {
		shape    []int
		d        int
		oversamp float64
		want     []int
	}{
		{[]int{8}, 1, 1.25, []int{10}},
		{[]int{5}, 1, 2.0, []int{10}},
		{[]int{2, 3, 4}, 1, 1.25, []int{2, 3, 5}},
		{[]int{2, 3, 4}, 2, 1.25, []int{2, 4, 5}},
		{[]int{2, 3, 4}, 3, 1.25, []int{3, 4, 5}},
		{[]int{7}, 1, 1.0, []int{7}},
	}

	for _, tc := range cases {
		got, err := OversampledShape(tc.shape, tc.d, tc.oversamp)
		if err != nil {
			t.Fatalf("OversampledShape(%v, %d, %v): %v", tc.shape, tc.d, tc.oversamp, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("OversampledShape(%v, %d, %v) = %v, want %v", tc.shape, tc.d, tc.oversamp, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("OversampledShape(%v, %d, %v) = %v, want %v", tc.shape, tc.d, tc.oversamp, got, tc.want)
			}
		}
	}
}

func TestOversampledShapeRejectsBadInput(t *testing.T) {
	if _, err := OversampledShape([]int{4, 4}, 0, 1.25); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("d=0: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := OversampledShape([]int{4, 4}, 3, 1.25); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("d>rank: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := OversampledShape([]int{4, 0}, 1, 1.25); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("zero dim: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := OversampledShape([]int{4}, 1, 0.9); !errors.Is(err, ErrDomain) {
		t.Fatalf("oversamp<1: err = %v, want ErrDomain", err)
	}
}

func TestKaiserBesselBeta(t *testing.T) {
	beta, err := KaiserBesselBeta(1.25, 4)
	if err != nil {
		t.Fatalf("KaiserBesselBeta(1.25, 4): %v", err)
	}
	if math.Abs(beta-6.99665901) > 1e-6 {
		t.Fatalf("beta(1.25, 4) = %v, want about 6.9967", beta)
	}

	wider, err := KaiserBesselBeta(1.25, 6)
	if err != nil {
		t.Fatalf("KaiserBesselBeta(1.25, 6): %v", err)
	}
	if wider <= beta {
		t.Fatalf("beta should grow with width: beta(1.25, 6) = %v <= beta(1.25, 4) = %v", wider, beta)
	}
}

func TestKaiserBesselBetaDomainError(t *testing.T) {
	if _, err := KaiserBesselBeta(1.0, 1); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestScaleCoordMapsGridToOversampledGrid(t *testing.T) {
	// shape [4] at oversamp 2 gives length 8, scale 2, shift 4.
	coord, _ := narray.FromSlice([]float64{-2, -1, 0, 1}, 4, 1)

	scaled, err := ScaleCoord(coord, []int{4}, 2.0)
	if err != nil {
		t.Fatalf("ScaleCoord: %v", err)
	}

	want := []float64{0, 2, 4, 6}
	for i, v := range scaled.Data() {
		if v != want[i] {
			t.Fatalf("scaled[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestScaleCoordPerAxis(t *testing.T) {
	// shape [3,4] at oversamp 1.25 gives lengths [4,5], scales [4/3, 5/4],
	// shifts [2, 2].
	coord, _ := narray.FromSlice([]float64{-1.5, -2, 0.75, 1.6}, 2, 2)

	scaled, err := ScaleCoord(coord, []int{3, 4}, 1.25)
	if err != nil {
		t.Fatalf("ScaleCoord: %v", err)
	}

	want := []float64{
		-1.5*4.0/3.0 + 2, -2*5.0/4.0 + 2,
		0.75*4.0/3.0 + 2, 1.6*5.0/4.0 + 2,
	}
	testutil.RequireSliceNearlyEqual(t, scaled.Data(), want, 1e-14)
}

func TestScaleCoordDoesNotMutateInput(t *testing.T) {
	coord, _ := narray.FromSlice([]float64{-1, 0.5}, 2, 1)

	if _, err := ScaleCoord(coord, []int{4}, 1.25); err != nil {
		t.Fatalf("ScaleCoord: %v", err)
	}

	if coord.Data()[0] != -1 || coord.Data()[1] != 0.5 {
		t.Fatalf("input coordinates mutated: %v", coord.Data())
	}
}

func TestScaleCoordRejectsDimensionMismatch(t *testing.T) {
	coord, _ := narray.FromSlice([]float64{0, 0, 0}, 1, 3)

	if _, err := ScaleCoord(coord, []int{4, 4}, 1.25); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}
