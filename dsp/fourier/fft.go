package fourier

import "github.com/cwbudde/dsp-course/dsp/core"

// FFT computes the same bins as DFT with the recursive radix-2
// decimation-in-time algorithm in O(N log N).
//
// len(x) must be a power of two; other lengths return *InvalidLengthError.
// For N == 1 the single sample is returned unchanged.
func FFT(x []complex128) ([]complex128, error) {
	return fft(x, forwardSign)
}

// IFFT is the inverse of FFT with 1/N normalization. The same length rules apply.
func IFFT(spectrum []complex128) ([]complex128, error) {
	out, err := fft(spectrum, inverseSign)
	if err != nil {
		return nil, err
	}

	scaleInPlace(out, 1/float64(len(out)))

	return out, nil
}

// strided is a read-only view of every stride-th element of data starting at offset.
// Splitting into even and odd halves only changes offset and stride, so the
// recursion never copies the input.
type strided struct {
	data   []complex128
	offset int
	stride int
}

func (s strided) at(i int) complex128 { return s.data[s.offset+i*s.stride] }

func (s strided) even() strided {
	return strided{data: s.data, offset: s.offset, stride: 2 * s.stride}
}

func (s strided) odd() strided {
	return strided{data: s.data, offset: s.offset + s.stride, stride: 2 * s.stride}
}

func fft(x []complex128, sign float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if !core.IsPowerOfTwo(n) {
		return nil, &InvalidLengthError{Len: n}
	}

	out := make([]complex128, n)
	tw := twiddles(n, n/2, sign)
	radix2(out, strided{data: x, stride: 1}, tw, 1)

	return out, nil
}

// radix2 writes the len(dst)-point transform of src into dst.
//
// tw holds W_N^k for the top-level size N; a sub-transform of size n uses
// every (N/n)-th entry, which is twStep.
func radix2(dst []complex128, src strided, tw []complex128, twStep int) {
	n := len(dst)
	if n == 1 {
		dst[0] = src.at(0)
		return
	}

	half := n / 2
	evens, odds := dst[:half], dst[half:]

	radix2(evens, src.even(), tw, 2*twStep)
	radix2(odds, src.odd(), tw, 2*twStep)

	// Danielson-Lanczos butterfly. E[k] and O[k] sit exactly where X[k] and
	// X[k+N/2] go, so the combine step runs in place.
	for k := range half {
		t := tw[k*twStep] * odds[k]
		e := evens[k]
		evens[k] = e + t
		odds[k] = e - t
	}
}
