package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/quantize"
	"github.com/cwbudde/dsp-course/dsp/signal"
)

// maxListedLevels caps the level table; finer quantisers print a summary.
const maxListedLevels = 32

func newQuantizeCmd(a *app) *cobra.Command {
	var (
		freq    float64
		samples int
	)

	cmd := &cobra.Command{
		Use:   "quantize",
		Short: "Quantise a full-scale sine and measure the SQNR",
		Long: `Build a uniform quantiser with 2^bits levels over [-1, 1], print its
levels and compare the measured signal-to-quantisation-noise ratio of a
full-scale sine with the 6.02·b + 1.76 dB rule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg

			var opts []quantize.Option
			if cfg.Quantize.Dither {
				opts = append(opts, quantize.WithDither(cfg.Quantize.Seed))
			}

			q, err := quantize.NewBits(cfg.Quantize.Bits, 1, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prec := cfg.Output.Precision

			if q.NumLevels() <= maxListedLevels {
				t := newTable(out, "Index", "Level")
				for i, v := range q.Levels() {
					t.row(strconv.Itoa(i), num(v, prec))
				}

				if err := t.flush(); err != nil {
					return err
				}
			} else {
				lo, hi := q.Range()
				if _, err := fmt.Fprintf(out, "%d levels from %s to %s\n", q.NumLevels(), num(lo, prec), num(hi, prec)); err != nil {
					return err
				}
			}

			gen := signal.NewGenerator(core.WithSampleRate(cfg.SampleRate))

			x, err := gen.Sine(freq, 1, samples)
			if err != nil {
				return err
			}

			measured, err := quantize.SQNR(x, q.QuantizeSlice(x))
			if err != nil {
				return err
			}

			a.log.Debug("quantized",
				zap.Int("bits", cfg.Quantize.Bits), zap.Stringer("dither", q.Dither()), zap.Int("samples", samples))

			_, err = fmt.Fprintf(out, "\nStep: %s\nDither: %s\nSQNR measured: %.2f dB\nSQNR theoretical: %.2f dB\n",
				num(q.Step(), prec+2), q.Dither(), measured, quantize.TheoreticalSQNR(cfg.Quantize.Bits))

			return err
		},
	}

	cmd.Flags().Int("bits", 8, "quantiser resolution in bits")
	cmd.Flags().Bool("dither", false, "add triangular dither before rounding")
	cmd.Flags().Float64Var(&freq, "freq", 441, "test sine frequency in Hz")
	cmd.Flags().IntVar(&samples, "samples", 8000, "test signal length")
	bindKey(cmd.Flags(), "bits", "quantize.bits")
	bindKey(cmd.Flags(), "dither", "quantize.dither")

	return cmd
}
