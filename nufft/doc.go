// Package nufft implements the non-uniform fast Fourier transform (NUFFT)
// pair: a forward transform from a uniformly sampled signal-domain array to
// Fourier-domain samples at arbitrary (non-grid) coordinates, and its exact
// adjoint. It is the standard building block for reconstructing images from
// irregularly sampled frequency data such as radial or spiral MRI k-space.
//
// The forward transform apodizes the input, zero-pads it onto an oversampled
// grid, applies a centered FFT, and gathers the requested off-grid samples
// with a Kaiser-Bessel interpolation kernel. The adjoint runs the same
// pipeline backwards, scattering samples onto the oversampled grid before
// the inverse transform. Oversampling factor and kernel width trade memory
// and time for interpolation accuracy; the kernel shape parameter beta and
// the apodization correction window are derived from them.
//
// # Usage
//
// For one-shot transforms, use the package-level functions:
//
//	samples, err := nufft.Forward(img, coord)
//	recon, err := nufft.Adjoint(samples, coord, img.Shape())
//
// For repeated transforms with the same parameters, create a reusable
// operator:
//
//	op, err := nufft.New(nufft.WithOversampling(1.25), nufft.WithWidth(4))
//	samples, err := op.Forward(img, coord)
//	recon, err := op.Adjoint(samples, coord, img.Shape())
//
// Coordinates have shape (..., d); the last axis addresses the trailing d
// axes of the signal array and coordinate j along axis i must lie within
// [-n_i/2, n_i/2). All leading axes of the signal array are independent
// batch axes. Real-valued inputs are promoted with narray.ToComplex.
//
// # Centered transforms
//
// FFT and IFFT provide the centered uniform transforms the pipeline is
// built on: the zero-frequency term sits at index n/2 of every transformed
// axis instead of index 0, and an optional output shape zero-pads or crops
// around that center. NormBackward (the default) leaves the forward
// transform unscaled and scales the inverse by 1/n; NormOrtho makes both
// directions unitary.
//
// # Accuracy
//
// Forward(x) evaluated at coordinates exactly on the original integer grid
// approximates the unitary centered DFT of x (FFT with NormOrtho); the
// approximation error decreases as the oversampling factor or the kernel
// width grows. Forward and Adjoint
// are exact adjoints of each other up to floating-point rounding for every
// parameter choice, which is what iterative least-squares reconstructions
// rely on.
//
// References:
//
//	Fessler, J. A., & Sutton, B. P. (2003).
//	Nonuniform fast Fourier transforms using min-max interpolation.
//	IEEE Transactions on Signal Processing, 51(2), 560-574.
//
//	Beatty, P. J., Nishimura, D. G., & Pauly, J. M. (2005).
//	Rapid gridding reconstruction with a minimal oversampling ratio.
//	IEEE Transactions on Medical Imaging, 24(6), 799-808.
package nufft
