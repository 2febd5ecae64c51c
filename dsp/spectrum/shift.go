package spectrum

// Shift reorders DFT output so the zero-frequency bin sits at index
// len(x)/2 with negative frequencies before it (fftshift).
func Shift[T any](x []T) []T {
	return rotate(x, (len(x)+1)/2)
}

// InverseShift undoes Shift (ifftshift).
func InverseShift[T any](x []T) []T {
	return rotate(x, len(x)/2)
}

// rotate returns out with out[j] = x[(j+by) mod n].
func rotate[T any](x []T, by int) []T {
	n := len(x)
	if n == 0 {
		return nil
	}

	out := make([]T, n)
	copy(out, x[by%n:])
	copy(out[n-by%n:], x[:by%n])

	return out
}

// Frequencies returns the centre frequency in Hz of each unshifted DFT bin
// (fftfreq ordering): 0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1, times
// sampleRate/n.
func Frequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	df := sampleRate / float64(n)
	positive := (n + 1) / 2

	for i := range out {
		k := i
		if i >= positive {
			k = i - n
		}

		out[i] = float64(k) * df
	}

	return out
}

// ShiftedFrequencies is Frequencies in ascending order, matching Shift.
func ShiftedFrequencies(n int, sampleRate float64) []float64 {
	return Shift(Frequencies(n, sampleRate))
}
