package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/internal/config"
	"github.com/cwbudde/dsp-course/internal/logging"
)

// configKeyAnnotation marks a flag with the config key it overrides.
const configKeyAnnotation = "dspcourse_config_key"

// app is the state shared by every subcommand of one invocation.
type app struct {
	configFile string

	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dspcourse",
		Short: "Digital signal processing lab",
		Long: `dspcourse runs the experiments of an introductory DSP course: discrete
Fourier transforms, spectra, sampling and aliasing, quantisation, FIR
filter design, window analysis and block-diagram signal flowgraphs.

Settings come from defaults, an optional dspcourse.yaml, DSPCOURSE_*
environment variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default is ./dspcourse.yaml or $HOME/.config/dspcourse/dspcourse.yaml)")
	pf.String("log-level", "info", "log level ("+strings.Join(logging.Levels, ", ")+")")
	pf.Float64("sample-rate", 8000, "sample rate in Hz")
	bindKey(pf, "log-level", "log_level")
	bindKey(pf, "sample-rate", "sample_rate")

	root.AddCommand(
		newTransformCmd(a),
		newCompareCmd(a),
		newSpectrumCmd(a),
		newSampleCmd(a),
		newQuantizeCmd(a),
		newFilterCmd(a),
		newWindowCmd(a),
		newFlowgraphCmd(a),
	)

	return root
}

// bindKey ties flag name on fs to a config key.
func bindKey(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

// initialize loads the configuration once flags are parsed and builds the
// logger for the run.
func (a *app) initialize(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logging.NewWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.v, a.cfg, a.log = v, cfg, log

	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("config loaded", zap.String("file", used))
	}

	log.Debug("starting",
		zap.String("command", cmd.CommandPath()),
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.String("backend", cfg.Backend),
		zap.Stringer("window", cfg.Window))

	return nil
}

// bindFlags binds every annotated flag of cmd, inherited ones included, to
// its config key so that an explicitly set flag wins over file and
// environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKeyAnnotation]
		if len(keys) == 0 {
			return
		}

		if err := v.BindPFlag(keys[0], f); err != nil {
			lastErr = fmt.Errorf("bind --%s: %w", f.Name, err)
		}
	})

	return lastErr
}

