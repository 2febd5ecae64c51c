package signal

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cwbudde/dsp-course/dsp/core"
)

var (
	ErrInvalidLength  = errors.New("signal: sample count must be > 0")
	ErrInvalidRate    = errors.New("signal: sample rate must be > 0")
	ErrEmptyInput     = errors.New("signal: input must not be empty")
	ErrLengthMismatch = errors.New("signal: inputs must have same length")
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the noise seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator at the configured sample rate.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the current noise seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed updates the noise seed.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
}

func (g *Generator) check(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}

	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidRate, g.cfg.SampleRate)
	}

	return nil
}

// TimeAxis returns n sample instants in seconds.
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}

	return out, nil
}

// periodic fills samples from shape, evaluated at phase in cycles.
func (g *Generator) periodic(freqHz, amplitude float64, samples int, shape func(cycles float64) float64) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := freqHz / g.cfg.SampleRate

	for i := range out {
		out[i] = amplitude * shape(step*float64(i))
	}

	return out, nil
}

// Sine generates amplitude*sin(2*pi*f*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.periodic(freqHz, amplitude, samples, func(c float64) float64 {
		return math.Sin(2 * math.Pi * c)
	})
}

// Cosine generates amplitude*cos(2*pi*f*t).
func (g *Generator) Cosine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.periodic(freqHz, amplitude, samples, func(c float64) float64 {
		return math.Cos(2 * math.Pi * c)
	})
}

// Square generates a +-amplitude square wave, high for the first half cycle.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.periodic(freqHz, amplitude, samples, func(c float64) float64 {
		if _, frac := math.Modf(c); frac < 0.5 {
			return 1
		}

		return -1
	})
}

// Sawtooth ramps from -amplitude to amplitude once per cycle.
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.periodic(freqHz, amplitude, samples, func(c float64) float64 {
		_, frac := math.Modf(c)
		return 2*frac - 1
	})
}

// Tone generates the complex exponential amplitude*exp(i*2*pi*f*t).
func (g *Generator) Tone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	out := make([]complex128, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate

	for i := range out {
		out[i] = cmplx.Rect(amplitude, step*float64(i))
	}

	return out, nil
}

// Multisine sums equal-amplitude sines, scaled so the sum is bounded by amplitude.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multisine: %w", ErrEmptyInput)
	}

	if err := g.check(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	scale := amplitude / float64(len(freqsHz))

	for _, f := range freqsHz {
		step := 2 * math.Pi * f / g.cfg.SampleRate
		for i := range out {
			out[i] += scale * math.Sin(step*float64(i))
		}
	}

	return out, nil
}

// Impulse returns a unit-sample impulse of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}

	out := make([]float64, samples)
	out[pos] = amplitude

	return out, nil
}

// Step returns zeros before pos and amplitude from pos onwards.
func (g *Generator) Step(amplitude float64, samples, pos int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("step position out of range: %d", pos)
	}

	out := make([]float64, samples)
	for i := pos; i < samples; i++ {
		out[i] = amplitude
	}

	return out, nil
}

// LinearSweep generates a sine whose frequency moves linearly from
// startHz to endHz over the buffer.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	k := (endHz - startHz) / duration

	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*(startHz*t+0.5*k*t*t))
	}

	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude].
// The same seed always gives the same sequence.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewPCG(g.seed, g.seed^0x9e3779b97f4a7c15))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}
