package main

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/fourier"
)

func newTransformCmd(a *app) *cobra.Command {
	var inverse bool

	cmd := &cobra.Command{
		Use:   "transform [flags] [--] values...",
		Short: "Print the discrete Fourier transform of a sequence",
		Long: `Transform the given sequence with the selected backend and print every
bin. Values are real ("0.5") or complex ("1+2i"). Put "--" before the
values when the first one is negative.

--inverse always uses the textbook kernels: IDFT for backend "dft" and
IFFT or IDFT by length otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseValues(args)
			if err != nil {
				return err
			}

			var (
				out  []complex128
				name string
			)

			switch {
			case inverse && a.cfg.Backend == "dft":
				name = "idft"
				out, err = fourier.IDFT(x)
			case inverse:
				name = "inverse"
				out, err = fourier.InverseTransform(x)
			default:
				var b fourier.Transformer

				b, err = fourier.BackendByName(a.cfg.Backend)
				if err != nil {
					return err
				}

				name = b.Name()
				out, err = b.Forward(x)
			}

			if err != nil {
				return fmt.Errorf("transform: %w", err)
			}

			a.log.Debug("transformed", zap.String("backend", name), zap.Int("n", len(x)))

			prec := a.cfg.Output.Precision
			t := newTable(cmd.OutOrStdout(), "k", "Re", "Im", "|X|", "Phase [rad]")

			for k, v := range out {
				t.row(strconv.Itoa(k), num(real(v), prec), num(imag(v), prec),
					num(cmplx.Abs(v), prec), num(cmplx.Phase(v), prec))
			}

			return t.flush()
		},
	}

	cmd.Flags().String("backend", "fft", "transform backend ("+strings.Join(fourier.BackendNames(), ", ")+")")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "compute the inverse transform")
	bindKey(cmd.Flags(), "backend", "backend")

	return cmd
}

// parseValues reads real or complex command-line numbers.
func parseValues(args []string) ([]complex128, error) {
	x := make([]complex128, len(args))

	for i, s := range args {
		v, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}

		x[i] = v
	}

	return x, nil
}
