package quantize

import (
	"fmt"
	"math/rand/v2"
)

type config struct {
	dither DitherType
	rng    *rand.Rand
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithDither enables triangular (TPDF) dither drawn from a PCG generator
// seeded with seed.
func WithDither(seed uint64) Option {
	return WithDitherType(DitherTriangular, seed)
}

// WithDitherType selects the dither distribution and seeds its generator.
func WithDitherType(dt DitherType, seed uint64) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidDither, dt)
		}

		cfg.dither = dt
		cfg.rng = rand.New(rand.NewPCG(seed, 0))

		return nil
	}
}
