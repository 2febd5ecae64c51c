// Package fourier implements the discrete Fourier transform two ways: a
// direct O(N^2) evaluation of the defining sum ([DFT]) and a recursive
// radix-2 Cooley-Tukey decimation-in-time transform ([FFT]).
//
// Both compute
//
//	X[k] = sum_{n=0}^{N-1} x[n] * exp(-2*pi*i*k*n/N),  k = 0..N-1
//
// and agree to within floating-point rounding for every power-of-two N.
// [FFT] rejects other lengths with an [*InvalidLengthError] instead of
// silently producing wrong bins; use [Transform] when the length is not
// known to be a power of two.
//
// The package also wraps several production FFT engines behind the
// [Transformer] interface so the textbook kernels can be timed and checked
// against them.
package fourier
