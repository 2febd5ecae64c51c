package fourier

// DFT evaluates the discrete Fourier transform directly from its definition
// in O(N^2) complex multiply-adds. Any length N >= 1 is accepted; x is not
// modified.
func DFT(x []complex128) ([]complex128, error) {
	return dft(x, forwardSign)
}

// IDFT is the inverse of DFT: conjugated kernel and 1/N normalization, so
// IDFT(DFT(x)) reproduces x within rounding.
func IDFT(spectrum []complex128) ([]complex128, error) {
	out, err := dft(spectrum, inverseSign)
	if err != nil {
		return nil, err
	}

	scaleInPlace(out, 1/float64(len(out)))

	return out, nil
}

func dft(x []complex128, sign float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// exp(-2*pi*i*k*m/N) only depends on k*m mod N, so one table of N roots
	// serves every bin and keeps the phase argument small.
	roots := twiddles(n, n, sign)
	out := make([]complex128, n)

	for k := range out {
		var acc complex128

		idx := 0
		for _, v := range x {
			acc += v * roots[idx]

			idx += k
			if idx >= n {
				idx -= n
			}
		}

		out[k] = acc
	}

	return out, nil
}
