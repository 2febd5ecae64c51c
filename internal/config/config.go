// Package config loads dspcourse settings from defaults, an optional YAML
// file, DSPCOURSE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/cwbudde/dsp-course/dsp/fourier"
	"github.com/cwbudde/dsp-course/dsp/window"
	"github.com/cwbudde/dsp-course/internal/logging"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "DSPCOURSE"

// Config is the resolved application configuration.
type Config struct {
	SampleRate float64        `mapstructure:"sample_rate"`
	LogLevel   string         `mapstructure:"log_level"`
	Backend    string         `mapstructure:"backend"`
	Window     window.Type    `mapstructure:"window"`
	NFFT       int            `mapstructure:"nfft"`
	Quantize   QuantizeConfig `mapstructure:"quantize"`
	Compare    CompareConfig  `mapstructure:"compare"`
	Output     OutputConfig   `mapstructure:"output"`
}

// QuantizeConfig configures the quantize command.
type QuantizeConfig struct {
	Bits   int    `mapstructure:"bits"`
	Dither bool   `mapstructure:"dither"`
	Seed   uint64 `mapstructure:"seed"`
}

// CompareConfig configures the backend comparison.
type CompareConfig struct {
	Sizes   []int         `mapstructure:"sizes"`
	Repeat  int           `mapstructure:"repeat"`
	Timeout time.Duration `mapstructure:"timeout"`
	Seed    uint64        `mapstructure:"seed"`
}

// OutputConfig controls printed and written results.
type OutputConfig struct {
	WavBitDepth int    `mapstructure:"wav_bit_depth"`
	Precision   int    `mapstructure:"precision"`
	Dir         string `mapstructure:"dir"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sample_rate", 8000.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("backend", "fft")
	v.SetDefault("window", "hann")
	v.SetDefault("nfft", 1024)

	v.SetDefault("quantize.bits", 8)
	v.SetDefault("quantize.dither", false)
	v.SetDefault("quantize.seed", 1)

	v.SetDefault("compare.sizes", []int{8, 64, 512})
	v.SetDefault("compare.repeat", 10)
	v.SetDefault("compare.timeout", 30*time.Second)
	v.SetDefault("compare.seed", 1)

	v.SetDefault("output.wav_bit_depth", 16)
	v.SetDefault("output.precision", 4)
	v.SetDefault("output.dir", ".")
}

// New creates a viper instance with defaults and environment binding and
// reads configFile. With an empty configFile, dspcourse.yaml is looked up
// in the working directory and in $HOME/.config/dspcourse; not finding
// one there is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("dspcourse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dspcourse"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("config: unable to decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if !(c.SampleRate > 0) {
		errs = append(errs, fmt.Errorf("sample_rate must be positive: %g", c.SampleRate))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if _, err := fourier.BackendByName(c.Backend); err != nil {
		errs = append(errs, err)
	}

	if c.NFFT <= 0 {
		errs = append(errs, fmt.Errorf("nfft must be positive: %d", c.NFFT))
	}

	if c.Quantize.Bits < 1 || c.Quantize.Bits > 32 {
		errs = append(errs, fmt.Errorf("quantize.bits must be in [1, 32]: %d", c.Quantize.Bits))
	}

	for _, n := range c.Compare.Sizes {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("compare.sizes must be positive: %d", n))
		}
	}

	if c.Compare.Repeat < 1 {
		errs = append(errs, fmt.Errorf("compare.repeat must be at least 1: %d", c.Compare.Repeat))
	}

	switch c.Output.WavBitDepth {
	case 16, 24, 32:
	default:
		errs = append(errs, fmt.Errorf("output.wav_bit_depth must be 16, 24 or 32: %d", c.Output.WavBitDepth))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}
