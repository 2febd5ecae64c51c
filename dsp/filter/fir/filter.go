package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsp-course/dsp/core"
)

// Filter is a direct-form FIR filter with a circular-buffer delay line.
// It keeps state between calls and is not safe for concurrent use.
type Filter struct {
	taps  []float64
	delay []float64
	pos   int
}

// New creates a filter from taps. The taps are copied.
func New(taps []float64) *Filter {
	return &Filter{
		taps:  append([]float64(nil), taps...),
		delay: make([]float64, len(taps)),
	}
}

// ProcessSample pushes x into the delay line and returns
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.taps)
	if n == 0 {
		return 0
	}

	f.delay[f.pos] = x

	// The newest sample sits at pos; walk backwards through the ring in
	// two contiguous runs.
	var y float64

	k := 0
	for p := f.pos; p >= 0; p-- {
		y += f.taps[k] * f.delay[p]
		k++
	}

	for p := n - 1; p > f.pos; p-- {
		y += f.taps[k] * f.delay[p]
		k++
	}

	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]

	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns len(taps)-1.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Coefficients returns a copy of the taps.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response evaluates H(e^{jw}) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return evalAt(f.taps, 2*math.Pi*freqHz/sampleRate)
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.AmplitudeToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// evalAt evaluates sum h[k]·e^{-jwk} with Horner's scheme in z^-1.
func evalAt(taps []float64, w float64) complex128 {
	zinv := cmplx.Rect(1, -w)

	var h complex128
	for k := len(taps) - 1; k >= 0; k-- {
		h = h*zinv + complex(taps[k], 0)
	}

	return h
}
