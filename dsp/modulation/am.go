package modulation

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
	"github.com/cwbudde/dsp-course/dsp/spectrum"
)

var (
	ErrInvalidRate      = errors.New("modulation: sample rate must be > 0")
	ErrInvalidDeviation = errors.New("modulation: deviation must be > 0")
	ErrInvalidIndex     = errors.New("modulation: modulation index must be > 0")
	ErrEmptyInput       = errors.New("modulation: input must not be empty")
)

// AM returns the double-sideband full-carrier signal
// (1 + index·x[n])·cos(2π·carrierHz·n/fs).
func AM(message []float64, carrierHz, sampleRate, index float64) ([]float64, error) {
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRate, sampleRate)
	}

	if !(index > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidIndex, index)
	}

	step := 2 * math.Pi * carrierHz / sampleRate
	out := make([]float64, len(message))

	for n, x := range message {
		out[n] = (1 + index*x) * math.Cos(step*float64(n))
	}

	return out, nil
}

// Mix shifts x by shiftHz, multiplying it with exp(i·2π·shiftHz·n/fs).
func Mix(x []complex128, shiftHz, sampleRate float64) ([]complex128, error) {
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRate, sampleRate)
	}

	step := 2 * math.Pi * shiftHz / sampleRate
	out := make([]complex128, len(x))

	for n, v := range x {
		out[n] = v * cmplx.Rect(1, step*float64(n))
	}

	return out, nil
}

// Envelope returns |iq[n]|.
func Envelope(iq []complex128) []float64 {
	return spectrum.Magnitude(iq)
}

// Analytic returns the analytic signal of x, whose imaginary part is the
// Hilbert transform of x. Negative-frequency bins are zeroed in the DFT
// domain and positive ones doubled.
func Analytic(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	spec, err := fourier.Transform(core.ToComplex(x))
	if err != nil {
		return nil, err
	}

	n := len(spec)
	half := (n + 1) / 2

	for k := 1; k < half; k++ {
		spec[k] *= 2
	}

	for k := n/2 + 1; k < n; k++ {
		spec[k] = 0
	}

	return fourier.InverseTransform(spec)
}

// AMDemodulate recovers the message from a real AM signal by envelope
// detection: (|analytic(s)| - 1) / index.
func AMDemodulate(s []float64, index float64) ([]float64, error) {
	if !(index > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidIndex, index)
	}

	a, err := Analytic(s)
	if err != nil {
		return nil, err
	}

	env := Envelope(a)
	for i := range env {
		env[i] = (env[i] - 1) / index
	}

	return env, nil
}
