package sampling

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRate     = errors.New("sampling: rate must be > 0")
	ErrInvalidDuration = errors.New("sampling: duration must be > 0")
	ErrInvalidFactor   = errors.New("sampling: factor must be >= 1")
	ErrEmptyInput      = errors.New("sampling: input must not be empty")
	ErrLengthMismatch  = errors.New("sampling: inputs must have same length")
	ErrNotIncreasing   = errors.New("sampling: time axis must be strictly increasing")
)

// Waveform is a continuous-time signal evaluated at t seconds.
type Waveform func(t float64) float64

// SineWave returns amp·sin(2πft + phase).
func SineWave(freqHz, amp, phase float64) Waveform {
	return func(t float64) float64 {
		return amp * math.Sin(2*math.Pi*freqHz*t+phase)
	}
}

// Sum adds waveforms pointwise.
func Sum(ws ...Waveform) Waveform {
	return func(t float64) float64 {
		s := 0.0
		for _, w := range ws {
			s += w(t)
		}

		return s
	}
}

// Sample evaluates w at floor(rate·duration) instants n/rate.
func Sample(w Waveform, rate, duration float64) (t, x []float64, err error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidRate, rate)
	}

	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidDuration, duration)
	}

	n := int(math.Floor(rate*duration + 1e-9))
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: rate %g and duration %g give no samples", ErrInvalidDuration, rate, duration)
	}

	t = make([]float64, n)
	x = make([]float64, n)

	for i := range t {
		t[i] = float64(i) / rate
		x[i] = w(t[i])
	}

	return t, x, nil
}

// Nyquist returns half the sampling rate.
func Nyquist(rate float64) float64 {
	return rate / 2
}

// IsAliased reports whether a tone at freqHz lies above the Nyquist frequency.
func IsAliased(freqHz, rate float64) bool {
	return math.Abs(freqHz) > Nyquist(rate)
}

// AliasFrequency folds freqHz into [0, rate/2], the frequency an ideal
// reconstruction would produce.
func AliasFrequency(freqHz, rate float64) float64 {
	if rate <= 0 {
		return math.NaN()
	}

	f := math.Mod(math.Abs(freqHz), rate)
	if f > rate/2 {
		f = rate - f
	}

	return f
}
