package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Max(lo, math.Min(hi, value))
}

// NearlyEqual reports whether a and b agree within eps, either absolutely
// or relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return largest > 0 && diff/largest <= eps
}

// ComplexNearlyEqual reports whether |a-b| <= eps.
func ComplexNearlyEqual(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	return math.Hypot(real(a)-real(b), imag(a)-imag(b)) <= eps
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Log2 returns log2(n) for a power of two n, or -1 otherwise.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}

	return bits.TrailingZeros(uint(n))
}

// AmplitudeToDB converts linear amplitude to dB (20*log10).
// Returns -Inf for zero and NaN for negative values.
func AmplitudeToDB(linear float64) float64 {
	return 2 * PowerToDB(linear)
}

// PowerToDB converts a linear power ratio to dB (10*log10).
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// DBToAmplitude is the inverse of AmplitudeToDB.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
