package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Goertzel evaluates one DFT term with a second-order recursion instead of
// the full transform. After N samples at bin frequency k*fs/N, Power equals
// |X[k]|^2 and Bin equals X[k] of the N-point DFT.
type Goertzel struct {
	omega  float64
	coeff  float64
	s0, s1 float64
	n      int
}

// NewGoertzel targets frequency Hz at sampleRate. frequency must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return newGoertzelOmega(2 * math.Pi * frequency / sampleRate), nil
}

// NewGoertzelBin targets DFT bin k of an n-point block.
func NewGoertzelBin(k, n int) (*Goertzel, error) {
	if n <= 0 || k < 0 || k >= n {
		return nil, fmt.Errorf("goertzel: bin %d out of range for %d points", k, n)
	}

	return newGoertzelOmega(2 * math.Pi * float64(k) / float64(n)), nil
}

func newGoertzelOmega(omega float64) *Goertzel {
	return &Goertzel{omega: omega, coeff: 2 * math.Cos(omega)}
}

// Reset clears the recursion state and sample count.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock feeds samples into the recursion.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1, coeff := g.s0, g.s1, g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X|^2 for the samples processed since the last Reset.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Bin returns the complex DFT term, including its phase.
func (g *Goertzel) Bin() complex128 {
	if g.n == 0 {
		return 0
	}

	// y = s0 - e^{-iw} s1 equals e^{iw(N-1)} * X.
	y := complex(g.s0, 0) - cmplx.Exp(complex(0, -g.omega))*complex(g.s1, 0)

	return y * cmplx.Exp(complex(0, -g.omega*float64(g.n-1)))
}
