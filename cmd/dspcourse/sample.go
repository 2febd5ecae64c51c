package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/sampling"
	"github.com/cwbudde/dsp-course/internal/wavio"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		freq, rate, duration float64
		wavPath              string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a sine and report aliasing",
		Long: `Sample a unit sine of --freq Hz at --rate Hz for --duration seconds and
report the Nyquist frequency and the apparent (aliased) frequency. The
samples are held (zero-order hold) on the --sample-rate grid, compared
with the densely sampled sine and optionally written to a WAV file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			w := sampling.SineWave(freq, 1, 0)

			ts, xs, err := sampling.Sample(w, rate, duration)
			if err != nil {
				return err
			}

			dense, ref, err := sampling.Sample(w, cfg.SampleRate, duration)
			if err != nil {
				return err
			}

			held, err := sampling.ZeroOrderHoldAt(ts, xs, dense)
			if err != nil {
				return err
			}

			rms, err := sampling.ReconstructionError(ref, held)
			if err != nil {
				return err
			}

			prec := cfg.Output.Precision
			t := newTable(cmd.OutOrStdout(), "Quantity", "Value")
			t.row("Signal frequency [Hz]", num(freq, prec))
			t.row("Sampling rate [Hz]", num(rate, prec))
			t.row("Samples", fmt.Sprint(len(xs)))
			t.row("Nyquist [Hz]", num(sampling.Nyquist(rate), prec))
			t.row("Aliased", fmt.Sprint(sampling.IsAliased(freq, rate)))
			t.row("Apparent frequency [Hz]", num(sampling.AliasFrequency(freq, rate), prec))
			t.row("Hold RMS error", num(rms, prec))

			if err := t.flush(); err != nil {
				return err
			}

			if wavPath == "" {
				return nil
			}

			outRate := int(math.Round(cfg.SampleRate))
			if err := wavio.Write(wavPath, held, outRate, cfg.Output.WavBitDepth); err != nil {
				return err
			}

			a.log.Info("wrote reconstruction",
				zap.String("path", wavPath), zap.Int("samples", len(held)), zap.Int("rate", outRate))

			return nil
		},
	}

	cmd.Flags().Float64Var(&freq, "freq", 300, "sine frequency in Hz")
	cmd.Flags().Float64Var(&rate, "rate", 1000, "sampling rate in Hz")
	cmd.Flags().Float64Var(&duration, "duration", 0.05, "duration in seconds")
	cmd.Flags().StringVar(&wavPath, "wav", "", "write the held signal to this WAV file")

	return cmd
}
