// Package kernel provides compactly supported interpolation kernels for
// gridding and interpolation on oversampled Fourier grids.
//
// A kernel maps the signed distance between a non-uniform sample location
// and a grid point, expressed in oversampled-grid units, to an interpolation
// weight. Every kernel has full support width: the weight is zero wherever
// |x| > width/2.
package kernel

// Kernel evaluates interpolation weights over a compact support.
type Kernel interface {
	// Evaluate returns the weight for a grid point at signed distance x
	// from the sample location, for a kernel of full support width and
	// shape parameter param. Kernels that need no shape parameter ignore
	// param.
	Evaluate(x, width, param float64) float64
}
