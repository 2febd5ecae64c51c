package fourier

import "math"

const (
	forwardSign = -1.0
	inverseSign = 1.0
)

// twiddles returns exp(sign*2*pi*i*k/n) for k in [0, count).
func twiddles(n, count int, sign float64) []complex128 {
	out := make([]complex128, count)
	step := 2 * math.Pi / float64(n)

	for k := range out {
		s, c := math.Sincos(step * float64(k))
		out[k] = complex(c, sign*s)
	}

	return out
}

func scaleInPlace(x []complex128, factor float64) {
	f := complex(factor, 0)
	for i := range x {
		x[i] *= f
	}
}
