// Package quantize maps continuous amplitudes onto a finite set of evenly
// spaced levels and measures the resulting quantisation noise.
package quantize
