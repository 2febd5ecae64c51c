package flowgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/filter/fir"
	"github.com/cwbudde/dsp-course/dsp/modulation"
	"github.com/cwbudde/dsp-course/dsp/signal"
	"github.com/cwbudde/dsp-course/dsp/window"
)

// Kind names of the built-in blocks.
const (
	KindSignalSource   = "signal_source"
	KindNoiseSource    = "noise_source"
	KindMultiply       = "multiply"
	KindAdd            = "add"
	KindMultiplyConst  = "multiply_const"
	KindFrequencyShift = "frequency_shift"
	KindLowPassFilter  = "low_pass_filter"
	KindAMModulator    = "am_modulator"
	KindFMModulator    = "fm_modulator"
	KindFMDemodulator  = "fm_demodulator"
	KindComplexToMag   = "complex_to_mag"
	KindComplexToReal  = "complex_to_real"
	KindSink           = "sink"
)

// funcBlock adapts a function to the Block interface.
type funcBlock struct {
	inputs int
	fn     func(in [][]complex128) ([]complex128, error)
}

func (b funcBlock) NumInputs() int { return b.inputs }

func (b funcBlock) Process(in [][]complex128) ([]complex128, error) { return b.fn(in) }

func source(out []complex128) Block {
	return funcBlock{fn: func([][]complex128) ([]complex128, error) {
		return out, nil
	}}
}

// unary maps every sample of a single input.
func unary(fn func(complex128) complex128) Block {
	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		out := make([]complex128, len(in[0]))
		for i, v := range in[0] {
			out[i] = fn(v)
		}

		return out, nil
	}}
}

// elementwise folds n equal-length inputs with op.
func elementwise(n int, op func(a, b complex128) complex128) Block {
	return funcBlock{inputs: n, fn: func(in [][]complex128) ([]complex128, error) {
		out := append([]complex128(nil), in[0]...)
		for _, s := range in[1:] {
			if len(s) != len(out) {
				return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(s), len(out))
			}

			for i, v := range s {
				out[i] = op(out[i], v)
			}
		}

		return out, nil
	}}
}

// maxInputs bounds the fan-in of multiply and add blocks.
const maxInputs = 64

// inputCount reads the inputs parameter of a combining block.
func inputCount(p Params) (int, error) {
	v := p.GetNum("inputs", 2)
	if v != math.Trunc(v) || v < 2 || v > maxInputs {
		return 0, fmt.Errorf("%w: %s.inputs must be an integer in [2, %d]: %v", ErrInvalidParameter, p.ID, maxInputs, v)
	}

	return int(v), nil
}

func registerBuiltins(r *Registry) {
	r.MustRegister(KindSignalSource, newSignalSource)
	r.MustRegister(KindNoiseSource, newNoiseSource)
	r.MustRegister(KindMultiply, func(p Params, _ Env) (Block, error) {
		n, err := inputCount(p)
		if err != nil {
			return nil, err
		}

		return elementwise(n, func(a, b complex128) complex128 { return a * b }), nil
	})
	r.MustRegister(KindAdd, func(p Params, _ Env) (Block, error) {
		n, err := inputCount(p)
		if err != nil {
			return nil, err
		}

		return elementwise(n, func(a, b complex128) complex128 { return a + b }), nil
	})
	r.MustRegister(KindMultiplyConst, func(p Params, _ Env) (Block, error) {
		k := complex(p.GetNum("const", 1), p.GetNum("const_imag", 0))
		return unary(func(v complex128) complex128 { return v * k }), nil
	})
	r.MustRegister(KindFrequencyShift, newFrequencyShift)
	r.MustRegister(KindLowPassFilter, newLowPassFilter)
	r.MustRegister(KindAMModulator, newAMModulator)
	r.MustRegister(KindFMModulator, newFMModulator)
	r.MustRegister(KindFMDemodulator, newFMDemodulator)
	r.MustRegister(KindComplexToMag, func(Params, Env) (Block, error) {
		return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
			return core.ToComplex(modulation.Envelope(in[0])), nil
		}}, nil
	})
	r.MustRegister(KindComplexToReal, func(Params, Env) (Block, error) {
		return unary(func(v complex128) complex128 { return complex(real(v), 0) }), nil
	})
	r.MustRegister(KindSink, func(Params, Env) (Block, error) {
		return unary(func(v complex128) complex128 { return v }), nil
	})
}

func newSignalSource(p Params, env Env) (Block, error) {
	g := signal.NewGenerator(core.WithSampleRate(env.SampleRate))
	freq := p.GetNum("frequency", 1000)
	amp := p.GetNum("amplitude", 1)

	var (
		x   []float64
		err error
	)

	switch w := strings.ToLower(p.GetStr("waveform", "sine")); w {
	case "sine":
		x, err = g.Sine(freq, amp, env.Samples)
	case "cosine":
		x, err = g.Cosine(freq, amp, env.Samples)
	case "square":
		x, err = g.Square(freq, amp, env.Samples)
	case "sawtooth":
		x, err = g.Sawtooth(freq, amp, env.Samples)
	case "constant":
		x = make([]float64, env.Samples)
		for i := range x {
			x[i] = amp
		}
	case "tone", "complex":
		tone, err := g.Tone(freq, amp, env.Samples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.ID, err)
		}

		return source(tone), nil
	default:
		return nil, fmt.Errorf("%w: %s.waveform %q", ErrInvalidParameter, p.ID, w)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	return source(core.ToComplex(x)), nil
}

func newNoiseSource(p Params, env Env) (Block, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(env.SampleRate)},
		signal.WithSeed(uint64(p.GetInt("seed", 1))),
	)

	x, err := g.WhiteNoise(p.GetNum("amplitude", 1), env.Samples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	return source(core.ToComplex(x)), nil
}

func newFrequencyShift(p Params, env Env) (Block, error) {
	shift := p.GetNum("frequency", 0)

	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		return modulation.Mix(in[0], shift, env.SampleRate)
	}}, nil
}

func newLowPassFilter(p Params, env Env) (Block, error) {
	win, err := window.ParseType(p.GetStr("window", "hamming"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	cutoff, err := p.positive("cutoff", env.SampleRate/8)
	if err != nil {
		return nil, err
	}

	taps, err := fir.LowPass(p.GetInt("taps", 63), cutoff, env.SampleRate, win)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		re, err := fir.Apply(taps, core.RealParts(in[0]))
		if err != nil {
			return nil, err
		}

		im, err := fir.Apply(taps, core.ImagParts(in[0]))
		if err != nil {
			return nil, err
		}

		out := make([]complex128, len(re))
		for i := range out {
			out[i] = complex(re[i], im[i])
		}

		return out, nil
	}}, nil
}

func newAMModulator(p Params, env Env) (Block, error) {
	carrier := p.GetNum("carrier", env.SampleRate/8)

	index, err := p.positive("index", 0.5)
	if err != nil {
		return nil, err
	}

	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		y, err := modulation.AM(core.RealParts(in[0]), carrier, env.SampleRate, index)
		if err != nil {
			return nil, err
		}

		return core.ToComplex(y), nil
	}}, nil
}

func newFMModulator(p Params, env Env) (Block, error) {
	dev, err := p.positive("deviation", 5000)
	if err != nil {
		return nil, err
	}

	mod, err := modulation.NewFMModulator(dev, env.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		return mod.Modulate(core.RealParts(in[0])), nil
	}}, nil
}

func newFMDemodulator(p Params, env Env) (Block, error) {
	dev, err := p.positive("deviation", 5000)
	if err != nil {
		return nil, err
	}

	demod, err := modulation.NewFMDemodulator(dev, env.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	return funcBlock{inputs: 1, fn: func(in [][]complex128) ([]complex128, error) {
		return core.ToComplex(demod.Demodulate(in[0])), nil
	}}, nil
}
