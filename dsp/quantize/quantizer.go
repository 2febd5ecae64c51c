package quantize

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	ErrInvalidRange   = errors.New("quantize: min must be less than max")
	ErrInvalidLevels  = errors.New("quantize: at least 2 levels required")
	ErrInvalidBits    = errors.New("quantize: bits must be in [1, 32]")
	ErrInvalidDither  = errors.New("quantize: invalid dither type")
	ErrLengthMismatch = errors.New("quantize: inputs must have same length")
	ErrEmptyInput     = errors.New("quantize: input must not be empty")
)

// Quantizer rounds values to the nearest of n evenly spaced levels
// spanning [min, max]. A dithering Quantizer keeps generator state and is
// not safe for concurrent use.
type Quantizer struct {
	lo, hi float64
	levels int
	step   float64
	dither DitherType
	rng    *rand.Rand
}

// NewUniform creates a quantizer with levels values from lo to hi inclusive.
func NewUniform(lo, hi float64, levels int, opts ...Option) (*Quantizer, error) {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}

	if levels < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevels, levels)
	}

	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Quantizer{
		lo:     lo,
		hi:     hi,
		levels: levels,
		step:   (hi - lo) / float64(levels-1),
		dither: cfg.dither,
		rng:    cfg.rng,
	}, nil
}

// NewBits creates a quantizer with 2^bits levels over [-fullScale, fullScale].
func NewBits(bits int, fullScale float64, opts ...Option) (*Quantizer, error) {
	if bits < 1 || bits > 32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBits, bits)
	}

	fullScale = math.Abs(fullScale)

	return NewUniform(-fullScale, fullScale, 1<<bits, opts...)
}

// NumLevels returns the number of output levels.
func (q *Quantizer) NumLevels() int { return q.levels }

// Step returns the spacing between adjacent levels (one LSB).
func (q *Quantizer) Step() float64 { return q.step }

// Range returns the lowest and highest level.
func (q *Quantizer) Range() (lo, hi float64) { return q.lo, q.hi }

// Dither returns the configured dither type.
func (q *Quantizer) Dither() DitherType { return q.dither }

// Levels returns every output level in ascending order.
func (q *Quantizer) Levels() []float64 {
	out := make([]float64, q.levels)
	for i := range out {
		out[i] = q.Level(i)
	}

	return out
}

// Level returns the value of level index i.
func (q *Quantizer) Level(i int) float64 {
	if i == q.levels-1 {
		return q.hi
	}

	return q.lo + float64(i)*q.step
}

// Index returns the level index v rounds to. Ties go to the upper level
// and out-of-range values clamp to the end levels.
func (q *Quantizer) Index(v float64) int {
	if math.IsNaN(v) {
		return 0
	}

	idx := math.Floor((v-q.lo)/q.step + 0.5)

	return int(max(0, min(float64(q.levels-1), idx)))
}

// Quantize returns the level nearest to v, after dither if configured.
func (q *Quantizer) Quantize(v float64) float64 {
	return q.Level(q.Index(v + q.noise()))
}

// QuantizeSlice quantizes every sample into a new slice.
func (q *Quantizer) QuantizeSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = q.Quantize(v)
	}

	return out
}

func (q *Quantizer) noise() float64 {
	if q.rng == nil {
		return 0
	}

	switch q.dither {
	case DitherRectangular:
		return q.step * (q.rng.Float64() - 0.5)
	case DitherTriangular:
		return q.step * (q.rng.Float64() - q.rng.Float64())
	default:
		return 0
	}
}
