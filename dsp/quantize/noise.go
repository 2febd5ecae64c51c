package quantize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Error returns quantized minus original, sample by sample.
func Error(original, quantized []float64) ([]float64, error) {
	if len(original) != len(quantized) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(original), len(quantized))
	}

	out := make([]float64, len(quantized))
	floats.SubTo(out, quantized, original)

	return out, nil
}

// SQNR returns the signal-to-quantisation-noise ratio in dB. A perfect
// reconstruction gives +Inf.
func SQNR(original, quantized []float64) (float64, error) {
	if len(original) == 0 {
		return 0, ErrEmptyInput
	}

	e, err := Error(original, quantized)
	if err != nil {
		return 0, err
	}

	signal := floats.Dot(original, original)
	noise := floats.Dot(e, e)

	if noise == 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(signal/noise), nil
}

// TheoreticalSQNR is the textbook 6.02·bits + 1.76 dB for a full-scale sine.
func TheoreticalSQNR(bits int) float64 {
	return 6.02*float64(bits) + 1.76
}
