// Package sampling turns continuous-time waveforms into sample sequences
// and demonstrates aliasing and zero-order-hold reconstruction.
package sampling
