// Package narray provides dense n-dimensional arrays over float64 and
// complex128 elements, plus the array utilities the NUFFT pipeline is built
// on: centered resize (zero-pad/crop), circular shifts for FFT centering, and
// magnitude/power extraction.
//
// Arrays are stored flat in row-major order. The last axis is contiguous,
// which keeps line-wise FFTs and kernel loops cache-friendly. All functions
// either mutate the receiver explicitly (documented) or return fresh arrays;
// none of them retain references to caller slices except where stated.
package narray
