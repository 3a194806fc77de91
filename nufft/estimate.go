package nufft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nufft/narray"
)

// EstimateShape suggests a grid shape for the given coordinates: per axis,
// the ceiling of the spread between the largest and smallest coordinate.
// It is a convenience for callers that have no target shape of their own;
// degenerate spreads (all points equal along an axis) yield zero entries
// the caller must replace.
func EstimateShape(coord *narray.Array[float64]) ([]int, error) {
	coordShape := coord.Shape()
	if len(coordShape) == 0 {
		return nil, fmt.Errorf("%w: coord must have shape (..., d)", ErrShapeMismatch)
	}

	d := coordShape[len(coordShape)-1]
	data := coord.Data()

	shape := make([]int, d)
	for j := 0; j < d; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for p := j; p < len(data); p += d {
			lo = math.Min(lo, data[p])
			hi = math.Max(hi, data[p])
		}
		shape[j] = int(math.Ceil(hi - lo))
	}

	return shape, nil
}
