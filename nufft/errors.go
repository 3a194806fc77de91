package nufft

import "errors"

var (
	// ErrDomain reports parameter combinations outside the valid domain of
	// the Kaiser-Bessel derivations, such as an oversampling/width pair
	// whose beta radicand is negative.
	ErrDomain = errors.New("nufft: parameter outside valid domain")

	// ErrShapeMismatch reports inconsistent array, coordinate, or output
	// shapes.
	ErrShapeMismatch = errors.New("nufft: shape mismatch")
)
