package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/filter/fir"
	"github.com/cwbudde/dsp-course/dsp/window"
)

var errUnknownFilter = errors.New("unknown filter type")

var filterTypes = []string{"lowpass", "highpass", "bandpass", "bandstop"}

func newFilterCmd(a *app) *cobra.Command {
	var (
		kind             string
		taps, points     int
		cutoff, upper    float64
		showCoefficients bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Design a windowed-sinc FIR filter and print its response",
		Long: `Design a linear-phase FIR filter with the window method and print its
magnitude response in dB at --points frequencies from 0 Hz up to the
Nyquist frequency. Band filters take the lower edge from --cutoff and
the upper edge from --upper.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg

			h, err := designFilter(kind, taps, cutoff, upper, cfg.SampleRate, cfg.Window)
			if err != nil {
				return err
			}

			w, resp, err := fir.FrequencyResponse(h, points)
			if err != nil {
				return err
			}

			a.log.Debug("designed filter",
				zap.String("type", kind), zap.Int("taps", len(h)), zap.Stringer("window", cfg.Window))

			out := cmd.OutOrStdout()
			prec := cfg.Output.Precision

			if showCoefficients {
				t := newTable(out, "n", "h[n]")
				for i, v := range h {
					t.row(strconv.Itoa(i), num(v, prec+2))
				}

				if err := t.flush(); err != nil {
					return err
				}

				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}

			t := newTable(out, "Frequency [Hz]", "Magnitude [dB]")
			db := fir.ResponseDB(resp)

			for i, f := range fir.BinFrequencies(w, cfg.SampleRate) {
				t.row(num(f, 1), num(db[i], 2))
			}

			return t.flush()
		},
	}

	cmd.Flags().StringVar(&kind, "type", "lowpass", "filter type ("+strings.Join(filterTypes, ", ")+")")
	cmd.Flags().IntVar(&taps, "taps", 31, "number of taps, odd for highpass and bandstop")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 1000, "cutoff or lower band edge in Hz")
	cmd.Flags().Float64Var(&upper, "upper", 2000, "upper band edge in Hz for band filters")
	cmd.Flags().IntVar(&points, "points", 16, "number of response points")
	cmd.Flags().BoolVar(&showCoefficients, "coefficients", false, "also print the taps")
	cmd.Flags().String("window", "hann", "design window")
	bindKey(cmd.Flags(), "window", "window")

	return cmd
}

func designFilter(kind string, taps int, cutoff, upper, fs float64, win window.Type) ([]float64, error) {
	switch strings.ToLower(kind) {
	case "lowpass":
		return fir.LowPass(taps, cutoff, fs, win)
	case "highpass":
		return fir.HighPass(taps, cutoff, fs, win)
	case "bandpass":
		return fir.BandPass(taps, cutoff, upper, fs, win)
	case "bandstop":
		return fir.BandStop(taps, cutoff, upper, fs, win)
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", errUnknownFilter, kind, strings.Join(filterTypes, ", "))
	}
}
