package core

// ToComplex promotes a real sequence to complex with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	if x == nil {
		return nil
	}

	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}

	return out
}

// RealParts returns real(x[i]) for every element.
func RealParts(x []complex128) []float64 {
	if x == nil {
		return nil
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}

	return out
}

// ImagParts returns imag(x[i]) for every element.
func ImagParts(x []complex128) []float64 {
	if x == nil {
		return nil
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = imag(v)
	}

	return out
}

// EnsureComplexLen returns buf resliced to n, reusing capacity when possible.
func EnsureComplexLen(buf []complex128, n int) []complex128 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]complex128, n)
}
