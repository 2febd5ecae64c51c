// Package conv computes linear and circular convolution and
// cross-correlation of real sequences.
//
// [Direct] evaluates the defining sum in O(N·M). [FFT] applies the
// convolution theorem on a zero-padded power-of-two grid, and [Convolve]
// picks between the two by kernel length.
//
//	y, err := conv.Convolve(signal, kernel)
//	corr, err := conv.Correlate(a, b)
package conv
