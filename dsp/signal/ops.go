package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/dsp-course/dsp/core"
)

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrEmptyInput)
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	if maxAbs == 0 || targetPeak == 0 {
		return make([]float64, len(data)), nil
	}

	return Scale(data, targetPeak/maxAbs), nil
}

// Scale returns data multiplied by gain.
func Scale(data []float64, gain float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v * gain
	}

	return out
}

// Add returns the element-wise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// RemoveDC subtracts the mean.
func RemoveDC(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}

	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}

	return out
}

// Clip limits every sample to [-limit, limit].
func Clip(data []float64, limit float64) []float64 {
	limit = math.Abs(limit)

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = core.Clamp(v, -limit, limit)
	}

	return out
}

// ToComplex lifts a real signal to complex samples with zero imaginary part.
func ToComplex(data []float64) []complex128 {
	return core.ToComplex(data)
}
