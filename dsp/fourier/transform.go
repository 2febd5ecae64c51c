package fourier

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsp-course/dsp/core"
)

// Algorithm names one of the two in-repo transform kernels.
type Algorithm int

const (
	AlgorithmDFT Algorithm = iota
	AlgorithmFFT
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDFT:
		return "dft"
	case AlgorithmFFT:
		return "fft"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// OperationCount returns the number of complex multiply-adds the algorithm
// performs for an n-point transform: N^2 for the DFT and (N/2)*log2(N)
// butterflies for the FFT. It returns -1 when the FFT cannot handle n and 0
// for n <= 0.
func OperationCount(a Algorithm, n int) int {
	if n <= 0 {
		return 0
	}

	switch a {
	case AlgorithmDFT:
		return n * n
	case AlgorithmFFT:
		if !core.IsPowerOfTwo(n) {
			return -1
		}

		return n / 2 * core.Log2(n)
	default:
		return -1
	}
}

// Transform picks FFT for power-of-two lengths and DFT otherwise.
func Transform(x []complex128) ([]complex128, error) {
	if core.IsPowerOfTwo(len(x)) {
		return FFT(x)
	}

	return DFT(x)
}

// InverseTransform picks IFFT for power-of-two lengths and IDFT otherwise.
func InverseTransform(spectrum []complex128) ([]complex128, error) {
	if core.IsPowerOfTwo(len(spectrum)) {
		return IFFT(spectrum)
	}

	return IDFT(spectrum)
}

// RealDFT is DFT for real input.
func RealDFT(x []float64) ([]complex128, error) {
	return DFT(core.ToComplex(x))
}

// RealFFT is FFT for real input.
func RealFFT(x []float64) ([]complex128, error) {
	return FFT(core.ToComplex(x))
}

// MaxDeviation returns max_k |a[k] - b[k]|.
func MaxDeviation(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	worst := 0.0
	for i := range a {
		worst = math.Max(worst, cmplx.Abs(a[i]-b[i]))
	}

	return worst, nil
}
