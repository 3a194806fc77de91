package kernel

import (
	"errors"
	"math"
	"testing"
)

// Reference values from Abramowitz & Stegun, table 9.8.
var besselI0Table = []struct {
	x    float64
	want float64
}{
	{0, 1},
	{0.5, 1.0634833707413236},
	{1, 1.2660658777520084},
	{2, 2.2795853023360673},
	{3.75, 9.118945761795349},
	{5, 27.239871823604442},
	{10, 2815.716628466254},
}

func TestBesselI0(t *testing.T) {
	// The polynomial approximation is good to a few 1e-7 relative; the
	// tolerance sits above its guaranteed error, not above rounding.
	for _, tc := range besselI0Table {
		got := besselI0(tc.x)
		if relErr := math.Abs(got-tc.want) / tc.want; relErr > 1e-6 {
			t.Fatalf("besselI0(%v)=%v want=%v (rel err %v)", tc.x, got, tc.want, relErr)
		}
	}
}

func TestBesselI0BranchContinuity(t *testing.T) {
	below := besselI0(3.75 - 1e-9)
	above := besselI0(3.75 + 1e-9)

	if math.Abs(below-above)/above > 1e-4 {
		t.Fatalf("besselI0 discontinuous at 3.75: below=%v above=%v", below, above)
	}
}

func TestKaiserBesselCenter(t *testing.T) {
	const (
		width = 4.0
		beta  = 7.0
	)

	got := KaiserBessel{}.Evaluate(0, width, beta)
	want := besselI0(beta)

	if got != want {
		t.Fatalf("Evaluate(0)=%v want I0(beta)=%v", got, want)
	}
}

func TestKaiserBesselEdge(t *testing.T) {
	const (
		width = 4.0
		beta  = 7.0
	)

	got := KaiserBessel{}.Evaluate(width/2, width, beta)
	if got != 1 {
		t.Fatalf("Evaluate(width/2)=%v want 1 (I0(0))", got)
	}

	if out := (KaiserBessel{}).Evaluate(width/2+1e-9, width, beta); out != 0 {
		t.Fatalf("Evaluate outside support=%v want 0", out)
	}

	if out := (KaiserBessel{}).Evaluate(-width, width, beta); out != 0 {
		t.Fatalf("Evaluate far outside=%v want 0", out)
	}
}

func TestKaiserBesselSymmetric(t *testing.T) {
	const (
		width = 4.0
		beta  = 7.0
	)

	k := KaiserBessel{}
	for _, x := range []float64{0.1, 0.5, 1, 1.5, 1.9} {
		l, r := k.Evaluate(-x, width, beta), k.Evaluate(x, width, beta)
		if l != r {
			t.Fatalf("asymmetric at x=%v: %v vs %v", x, l, r)
		}
	}
}

func TestKaiserBesselMonotoneDecay(t *testing.T) {
	const (
		width = 4.0
		beta  = 7.0
	)

	k := KaiserBessel{}
	prev := k.Evaluate(0, width, beta)
	for x := 0.1; x <= width/2; x += 0.1 {
		cur := k.Evaluate(x, width, beta)
		if cur > prev {
			t.Fatalf("weight increased away from center at x=%v: %v > %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestSplineOrders(t *testing.T) {
	const width = 4.0

	s0, err := NewSpline(0)
	if err != nil {
		t.Fatalf("NewSpline(0): %v", err)
	}
	if got := s0.Evaluate(1.5, width, 0); got != 1 {
		t.Fatalf("order 0 inside support=%v want 1", got)
	}
	if got := s0.Evaluate(2.5, width, 0); got != 0 {
		t.Fatalf("order 0 outside support=%v want 0", got)
	}

	s1, err := NewSpline(1)
	if err != nil {
		t.Fatalf("NewSpline(1): %v", err)
	}
	if got := s1.Evaluate(0, width, 0); got != 1 {
		t.Fatalf("order 1 center=%v want 1", got)
	}
	if got := s1.Evaluate(1, width, 0); got != 0.5 {
		t.Fatalf("order 1 at half support=%v want 0.5", got)
	}

	s2, err := NewSpline(2)
	if err != nil {
		t.Fatalf("NewSpline(2): %v", err)
	}
	if got := s2.Evaluate(0, width, 0); got != 0.75 {
		t.Fatalf("order 2 center=%v want 0.75", got)
	}

	// The two quadratic branches meet at u = 1/3.
	u := 1.0 / 3.0
	x := u * width / 2
	inner := s2.Evaluate(x-1e-9, width, 0)
	outer := s2.Evaluate(x+1e-9, width, 0)
	if math.Abs(inner-outer) > 1e-6 {
		t.Fatalf("order 2 branches disagree at u=1/3: %v vs %v", inner, outer)
	}
	if math.Abs(inner-0.5) > 1e-6 {
		t.Fatalf("order 2 at u=1/3: %v want 0.5", inner)
	}
}

func TestNewSplineRejectsBadOrder(t *testing.T) {
	for _, order := range []int{-1, 3, 10} {
		if _, err := NewSpline(order); !errors.Is(err, ErrSplineOrder) {
			t.Fatalf("order %d: expected ErrSplineOrder, got %v", order, err)
		}
	}
}
