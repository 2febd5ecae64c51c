package window

import (
	"math"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
	"github.com/cwbudde/dsp-course/dsp/spectrum"
)

// Analysis holds leakage figures of a window.
type Analysis struct {
	// CoherentGain is sum(w)/N, the DC gain relative to a rectangular window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobeDB is the tallest sidelobe relative to the main lobe peak.
	HighestSidelobeDB float64
	// MainLobeWidthBins is the distance from DC to the first null, in bins.
	MainLobeWidthBins float64
}

// oversample sets how finely the zero-padded transform samples the window's spectrum.
const oversample = 32

// Analyze measures coeffs from a zero-padded FFT of the window.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, ErrEmptyCoeffs
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	a := Analysis{CoherentGain: sum / float64(n)}
	if sum != 0 {
		a.ENBW = float64(n) * sumSq / (sum * sum)
	}

	size := core.NextPowerOfTwo(n * oversample)
	padded := make([]complex128, size)

	for i, c := range coeffs {
		padded[i] = complex(c, 0)
	}

	spec, err := fourier.FFT(padded)
	if err != nil {
		return Analysis{}, err
	}

	mag := spectrum.Magnitude(spec[:size/2+1])
	if mag[0] == 0 {
		return a, nil
	}

	// Walk down the main lobe to its first local minimum.
	null := 1
	for null < len(mag)-1 && mag[null+1] < mag[null] {
		null++
	}

	a.MainLobeWidthBins = float64(null) * float64(n) / float64(size)

	peak := 0.0
	for _, m := range mag[null:] {
		peak = math.Max(peak, m)
	}

	a.HighestSidelobeDB = core.AmplitudeToDB(peak / mag[0])

	return a, nil
}
