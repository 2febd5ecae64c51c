package core

import "math"

// ProcessorConfig holds settings shared by signal generators and analyzers.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig uses 8 kHz, the rate the course exercises are built around.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: 8000}
}

// WithSampleRate sets the sample rate in Hz. Non-positive or non-finite values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies opts on top of DefaultProcessorConfig.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// SampleCount returns the number of whole samples that fit in seconds.
func (c ProcessorConfig) SampleCount(seconds float64) int {
	if seconds <= 0 || c.SampleRate <= 0 {
		return 0
	}

	// The epsilon keeps 0.3 s * 10 Hz at 3 samples despite rounding.
	return int(math.Floor(seconds*c.SampleRate + 1e-9))
}

// Duration returns the length of n samples in seconds.
func (c ProcessorConfig) Duration(n int) float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(n) / c.SampleRate
}
