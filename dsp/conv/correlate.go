package conv

import "slices"

// Correlate computes the full cross-correlation of a and b. Output index
// k corresponds to lag k-(len(b)-1).
func Correlate(a, b []float64) ([]float64, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}

	rev := slices.Clone(b)
	slices.Reverse(rev)

	return Convolve(a, rev)
}

// AutoCorrelate returns the 2·len(a)-1 lag autocorrelation of a.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// FindPeak returns the index and value of the largest element, or -1 for
// an empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index, value = i, v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation index to a lag.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
