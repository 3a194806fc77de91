package narray

import "errors"

var (
	// ErrInvalidShape indicates a shape with a non-positive dimension.
	ErrInvalidShape = errors.New("narray: shape dimensions must be positive")

	// ErrRankMismatch indicates two shapes of different rank where equal rank
	// is required.
	ErrRankMismatch = errors.New("narray: rank mismatch")

	// ErrLengthMismatch indicates a data slice whose length does not match the
	// product of the requested shape.
	ErrLengthMismatch = errors.New("narray: data length does not match shape")

	// ErrInvalidAxis indicates an axis outside [-ndim, ndim) or a duplicate
	// axis in an axis list.
	ErrInvalidAxis = errors.New("narray: invalid axis")
)
