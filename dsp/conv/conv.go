package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
)

var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Mode selects which part of the full result is returned.
type Mode int

const (
	// ModeFull returns all len(a)+len(b)-1 samples.
	ModeFull Mode = iota
	// ModeSame returns len(a) samples centred on the full result.
	ModeSame
	// ModeValid returns the samples where the inputs overlap completely.
	ModeValid
)

// directThreshold is the kernel length above which Convolve switches to FFT.
const directThreshold = 64

func check(a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}

	if len(b) == 0 {
		return ErrEmptyKernel
	}

	return nil
}

// Direct computes the linear convolution of a and b by the defining sum.
// The result has length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a)+len(b)-1)
	DirectTo(out, a, b)

	return out, nil
}

// DirectTo writes the convolution of a and b into dst, which must have
// length len(a)+len(b)-1.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	m := len(b)
	scaled := make([]float64, m)

	for i, v := range a {
		vecmath.ScaleBlock(scaled, b, v)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
}

// Circular computes the N-point circular convolution of equal-length a
// and b through the discrete Fourier transform.
func Circular(a, b []float64) ([]float64, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}

	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	fa, err := fourier.Transform(core.ToComplex(a))
	if err != nil {
		return nil, err
	}

	fb, err := fourier.Transform(core.ToComplex(b))
	if err != nil {
		return nil, err
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	y, err := fourier.InverseTransform(fa)
	if err != nil {
		return nil, err
	}

	return core.RealParts(y), nil
}

// Convolve computes the full linear convolution, using Direct for short
// kernels and FFT otherwise.
func Convolve(a, b []float64) ([]float64, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}

	if min(len(a), len(b)) <= directThreshold {
		return Direct(a, b)
	}

	return FFT(a, b)
}

// ConvolveMode computes the convolution and trims it to mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}

		return full[lenA-1 : lenB]
	default:
		return full
	}
}
