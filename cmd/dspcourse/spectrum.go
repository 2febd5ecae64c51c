package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/signal"
	"github.com/cwbudde/dsp-course/dsp/spectrum"
	"github.com/cwbudde/dsp-course/dsp/window"
)

func newSpectrumCmd(a *app) *cobra.Command {
	var freq, amp float64

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the level spectrum of a windowed sine",
		Long: `Generate nfft samples of a sine at --freq, apply the configured window
and print the level of every non-negative frequency bin followed by the
strongest bin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg

			gen := signal.NewGenerator(core.WithSampleRate(cfg.SampleRate))

			x, err := gen.Sine(freq, amp, cfg.NFFT)
			if err != nil {
				return err
			}

			window.Apply(cfg.Window, x)

			res, err := spectrum.Analyze(x, cfg.NFFT, cfg.SampleRate)
			if err != nil {
				return err
			}

			pos := res.Positive()
			prec := cfg.Output.Precision

			t := newTable(cmd.OutOrStdout(), "Frequency [Hz]", "Level [dB]")
			for i, f := range pos.Frequencies {
				t.row(num(f, prec), num(pos.LevelDB[i], 2))
			}

			if err := t.flush(); err != nil {
				return err
			}

			peakHz, peakDB, err := res.Peak()
			if err != nil {
				return err
			}

			a.log.Debug("spectrum",
				zap.Int("nfft", cfg.NFFT), zap.Stringer("window", cfg.Window), zap.Float64("peak_hz", peakHz))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nPeak: %s Hz at %s dB\n", num(peakHz, prec), num(peakDB, 2))

			return err
		},
	}

	cmd.Flags().Float64Var(&freq, "freq", 1000, "sine frequency in Hz")
	cmd.Flags().Float64Var(&amp, "amp", 1, "sine amplitude")
	cmd.Flags().Int("nfft", 1024, "transform size")
	cmd.Flags().String("window", "hann", "window applied before the transform")
	bindKey(cmd.Flags(), "nfft", "nfft")
	bindKey(cmd.Flags(), "window", "window")

	return cmd
}
