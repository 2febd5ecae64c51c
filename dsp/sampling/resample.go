package sampling

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Decimate keeps every factor-th sample. No anti-alias filter is applied.
func Decimate(x []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	out := make([]float64, 0, (len(x)+factor-1)/factor)
	for i := 0; i < len(x); i += factor {
		out = append(out, x[i])
	}

	return out, nil
}

// Upsample inserts factor-1 zeros after each sample.
func Upsample(x []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	out := make([]float64, len(x)*factor)
	for i, v := range x {
		out[i*factor] = v
	}

	return out, nil
}

// ZeroOrderHold repeats each sample factor times.
func ZeroOrderHold(x []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	out := make([]float64, len(x)*factor)
	for i, v := range x {
		for j := range factor {
			out[i*factor+j] = v
		}
	}

	return out, nil
}

// ZeroOrderHoldAt evaluates the staircase through (t, x) at each query
// instant. Queries before t[0] take x[0].
func ZeroOrderHoldAt(t, x, query []float64) ([]float64, error) {
	if len(t) == 0 {
		return nil, ErrEmptyInput
	}

	if len(t) != len(x) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(t), len(x))
	}

	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}

	out := make([]float64, len(query))
	for i, q := range query {
		// First index with t[k] > q, so t[k-1] <= q.
		k := sort.Search(len(t), func(j int) bool { return t[j] > q })
		out[i] = x[max(0, k-1)]
	}

	return out, nil
}

// ReconstructionError returns the RMS difference of two equal-length signals.
func ReconstructionError(reference, reconstructed []float64) (float64, error) {
	if len(reference) == 0 {
		return 0, ErrEmptyInput
	}

	if len(reference) != len(reconstructed) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(reference), len(reconstructed))
	}

	return floats.Distance(reference, reconstructed, 2) / math.Sqrt(float64(len(reference))), nil
}
