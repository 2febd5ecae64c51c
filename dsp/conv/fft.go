package conv

import (
	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
)

// FFT computes the linear convolution of a and b by multiplying their
// spectra. Both inputs are zero-padded to the next power of two at or
// above len(a)+len(b)-1, so the circular wrap never overlaps the result.
func FFT(a, b []float64) ([]float64, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}

	n := len(a) + len(b) - 1
	size := core.NextPowerOfTwo(n)

	fa, err := fourier.FFT(padded(a, size))
	if err != nil {
		return nil, err
	}

	fb, err := fourier.FFT(padded(b, size))
	if err != nil {
		return nil, err
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	y, err := fourier.IFFT(fa)
	if err != nil {
		return nil, err
	}

	return core.RealParts(y[:n]), nil
}

func padded(x []float64, size int) []complex128 {
	out := make([]complex128, size)
	for i, v := range x {
		out[i] = complex(v, 0)
	}

	return out
}
