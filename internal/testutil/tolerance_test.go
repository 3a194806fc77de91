package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1, 2 + 2i}
	b := []complex128{1, 2 - 1i}

	d, err := MaxAbsDiffComplex(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiffComplex error: %v", err)
	}

	if math.Abs(d-3) > 1e-15 {
		t.Fatalf("MaxAbsDiffComplex = %v, want 3", d)
	}
}

func TestDot(t *testing.T) {
	a := []complex128{1 + 1i, 2}
	b := []complex128{1 - 1i, 1i}

	got, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot error: %v", err)
	}

	// (1+i)*conj(1-i) + 2*conj(i) = (1+i)*(1+i) + 2*(-i) = 2i - 2i = 0.
	if got != 0 {
		t.Fatalf("Dot = %v, want 0", got)
	}
}

func TestDotLengthMismatch(t *testing.T) {
	if _, err := Dot([]complex128{1}, []complex128{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
