package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
)

// Apply filters x with taps from a zero initial state. The output has the
// same length as x.
func Apply(taps, x []float64) ([]float64, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyTaps
	}

	out := make([]float64, len(x))
	New(taps).ProcessBlockTo(out, x)

	return out, nil
}

// FrequencyResponse evaluates the filter at nPoints frequencies
// w[k] = π·k/nPoints rad/sample, covering [0, π).
func FrequencyResponse(taps []float64, nPoints int) (w []float64, h []complex128, err error) {
	if len(taps) == 0 {
		return nil, nil, ErrEmptyTaps
	}

	if nPoints <= 0 {
		return nil, nil, fmt.Errorf("fir: number of response points must be > 0: %d", nPoints)
	}

	w = make([]float64, nPoints)
	for k := range w {
		w[k] = math.Pi * float64(k) / float64(nPoints)
	}

	// A zero-padded transform of length 2·nPoints samples exactly this grid.
	if size := 2 * nPoints; core.IsPowerOfTwo(size) && size >= len(taps) {
		padded := make([]float64, size)
		copy(padded, taps)

		spec, err := fourier.RealFFT(padded)
		if err != nil {
			return nil, nil, err
		}

		return w, spec[:nPoints], nil
	}

	h = make([]complex128, nPoints)
	for k, wk := range w {
		h[k] = evalAt(taps, wk)
	}

	return w, h, nil
}

// ResponseDB returns 20·log10|H| for every point of h.
func ResponseDB(h []complex128) []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = core.AmplitudeToDB(cmplx.Abs(v))
	}

	return out
}

// BinFrequencies converts rad/sample to Hz.
func BinFrequencies(w []float64, sampleRate float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v * sampleRate / (2 * math.Pi)
	}

	return out
}
