package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrSplineOrder reports a spline order outside the supported range.
var ErrSplineOrder = errors.New("kernel: spline order must be 0, 1, or 2")

// Spline is a B-spline interpolation kernel of order 0 (nearest neighbor),
// 1 (linear), or 2 (quadratic), rescaled so its support covers the full
// kernel width. It ignores the shape parameter.
type Spline struct {
	order int
}

// NewSpline returns a spline kernel of the given order.
func NewSpline(order int) (Spline, error) {
	if order < 0 || order > 2 {
		return Spline{}, fmt.Errorf("%w: %d", ErrSplineOrder, order)
	}

	return Spline{order: order}, nil
}

// Order returns the spline order.
func (s Spline) Order() int { return s.order }

func (s Spline) Evaluate(x, width, _ float64) float64 {
	u := math.Abs(2 * x / width)
	if u > 1 {
		return 0
	}

	switch s.order {
	case 1:
		return 1 - u
	case 2:
		if u > 1.0/3.0 {
			return 9.0 / 8.0 * (1 - u) * (1 - u)
		}

		return 3.0/4.0 - 9.0/4.0*u*u
	default:
		return 1
	}
}
