package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/dsp-course/dsp/window"
)

var (
	ErrInvalidTaps   = errors.New("fir: number of taps must be > 0")
	ErrEvenTaps      = errors.New("fir: filter passing Nyquist needs an odd number of taps")
	ErrInvalidRate   = errors.New("fir: sample rate must be > 0")
	ErrInvalidCutoff = errors.New("fir: cutoff must lie in (0, fs/2)")
	ErrInvalidBand   = errors.New("fir: band edges must be increasing")
	ErrEmptyTaps     = errors.New("fir: taps must not be empty")
)

// band is a passband in units of the Nyquist frequency, 0 <= lo < hi <= 1.
type band struct{ lo, hi float64 }

// LowPass designs a linear-phase low-pass filter with unity gain at DC.
func LowPass(numTaps int, cutoffHz, sampleRate float64, win window.Type) ([]float64, error) {
	c, err := normalize(numTaps, sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}

	return design(numTaps, win, band{0, c[0]})
}

// HighPass designs a high-pass filter with unity gain at Nyquist.
// numTaps must be odd.
func HighPass(numTaps int, cutoffHz, sampleRate float64, win window.Type) ([]float64, error) {
	c, err := normalize(numTaps, sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}

	if numTaps%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenTaps, numTaps)
	}

	return design(numTaps, win, band{c[0], 1})
}

// BandPass designs a filter passing lowHz..highHz with unity gain at the
// band centre.
func BandPass(numTaps int, lowHz, highHz, sampleRate float64, win window.Type) ([]float64, error) {
	c, err := normalize(numTaps, sampleRate, lowHz, highHz)
	if err != nil {
		return nil, err
	}

	return design(numTaps, win, band{c[0], c[1]})
}

// BandStop designs a filter rejecting lowHz..highHz with unity gain at DC.
// numTaps must be odd.
func BandStop(numTaps int, lowHz, highHz, sampleRate float64, win window.Type) ([]float64, error) {
	c, err := normalize(numTaps, sampleRate, lowHz, highHz)
	if err != nil {
		return nil, err
	}

	if numTaps%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenTaps, numTaps)
	}

	return design(numTaps, win, band{0, c[0]}, band{c[1], 1})
}

// normalize validates the design inputs and returns cutoffs in units of Nyquist.
func normalize(numTaps int, sampleRate float64, cutoffsHz ...float64) ([]float64, error) {
	if numTaps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRate, sampleRate)
	}

	nyq := sampleRate / 2
	out := make([]float64, len(cutoffsHz))

	for i, f := range cutoffsHz {
		if !(f > 0 && f < nyq) {
			return nil, fmt.Errorf("%w: %g Hz at fs %g Hz", ErrInvalidCutoff, f, sampleRate)
		}

		if i > 0 && !(f > cutoffsHz[i-1]) {
			return nil, fmt.Errorf("%w: %g <= %g", ErrInvalidBand, f, cutoffsHz[i-1])
		}

		out[i] = f / nyq
	}

	return out, nil
}

func design(numTaps int, win window.Type, bands ...band) ([]float64, error) {
	alpha := 0.5 * float64(numTaps-1)
	h := make([]float64, numTaps)

	for i := range h {
		m := float64(i) - alpha
		for _, b := range bands {
			h[i] += b.hi*sinc(b.hi*m) - b.lo*sinc(b.lo*m)
		}
	}

	h, err := window.ApplyCoefficients(h, window.Generate(win, numTaps))
	if err != nil {
		return nil, err
	}

	// Normalise the gain at the reference frequency of the first band.
	first := bands[0]

	var ref float64

	switch {
	case first.lo == 0:
		ref = 0
	case first.hi == 1:
		ref = 1
	default:
		ref = 0.5 * (first.lo + first.hi)
	}

	gain := 0.0
	for i, v := range h {
		gain += v * math.Cos(math.Pi*(float64(i)-alpha)*ref)
	}

	for i := range h {
		h[i] /= gain
	}

	return h, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
