package modulation

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FMModulator turns a message into a unit-magnitude IQ stream whose
// instantaneous frequency is Deviation·m[n] Hz. The phase carries over
// between calls.
type FMModulator struct {
	Deviation  float64
	SampleRate float64

	phase float64
}

// NewFMModulator validates the parameters and returns a modulator.
func NewFMModulator(deviation, sampleRate float64) (*FMModulator, error) {
	if err := checkFM(deviation, sampleRate); err != nil {
		return nil, err
	}

	return &FMModulator{Deviation: deviation, SampleRate: sampleRate}, nil
}

// Modulate advances the phase accumulator by 2π·Deviation·m[n]/fs per
// sample and returns exp(i·phase).
func (m *FMModulator) Modulate(msg []float64) []complex128 {
	k := 2 * math.Pi * m.Deviation / m.SampleRate
	out := make([]complex128, len(msg))

	for n, v := range msg {
		m.phase = math.Remainder(m.phase+k*v, 2*math.Pi)
		out[n] = cmplx.Rect(1, m.phase)
	}

	return out
}

// Reset zeroes the phase accumulator.
func (m *FMModulator) Reset() { m.phase = 0 }

// FMDemodulator is a polar discriminator: the phase step between
// consecutive samples, arg(x[n]·conj(x[n-1])), scaled back to message
// units. The last sample of each block is kept for the next call.
type FMDemodulator struct {
	Deviation  float64
	SampleRate float64

	prev    complex128
	started bool
}

// NewFMDemodulator validates the parameters and returns a demodulator.
func NewFMDemodulator(deviation, sampleRate float64) (*FMDemodulator, error) {
	if err := checkFM(deviation, sampleRate); err != nil {
		return nil, err
	}

	return &FMDemodulator{Deviation: deviation, SampleRate: sampleRate}, nil
}

// Demodulate returns one message sample per IQ sample. Before the first
// sample the reference phase is zero.
func (d *FMDemodulator) Demodulate(iq []complex128) []float64 {
	if len(iq) == 0 {
		return nil
	}

	scale := d.SampleRate / (2 * math.Pi * d.Deviation)
	out := make([]float64, len(iq))

	prev := d.prev
	if !d.started {
		prev = 1
	}

	for n, cur := range iq {
		out[n] = cmplx.Phase(cur*cmplx.Conj(prev)) * scale
		prev = cur
	}

	d.prev = prev
	d.started = true

	return out
}

// Reset forgets the previous sample.
func (d *FMDemodulator) Reset() {
	d.prev = 0
	d.started = false
}

func checkFM(deviation, sampleRate float64) error {
	if !(sampleRate > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRate, sampleRate)
	}

	if !(deviation > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidDeviation, deviation)
	}

	return nil
}
