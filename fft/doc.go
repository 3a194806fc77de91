// Package fft provides in-place, axis-wise discrete Fourier transforms over
// N-dimensional complex arrays.
//
// Power-of-two axis lengths use precomputed radix plans from
// github.com/MeKo-Christian/algo-fft; all other lengths fall back to gonum's
// mixed-radix complex FFT. Forward transforms are unnormalized; inverse
// transforms scale by 1/n along every transformed axis (the usual "backward"
// convention), so a forward/inverse round trip reproduces the input.
//
// Transforms mutate the array in place and allocate only per-length engine
// state. Neither ForwardAxes nor InverseAxes is safe for concurrent use on
// the same array.
package fft
