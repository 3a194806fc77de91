package interp

import "errors"

var (
	ErrNilKernel     = errors.New("interp: kernel must not be nil")
	ErrWidth         = errors.New("interp: width must be positive")
	ErrCoordShape    = errors.New("interp: invalid coordinate shape")
	ErrShapeMismatch = errors.New("interp: shape mismatch")
)
