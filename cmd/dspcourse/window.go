package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/dsp-course/dsp/window"
)

func newWindowCmd(a *app) *cobra.Command {
	var (
		size     int
		beta     float64
		periodic bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "window [names...]",
		Short: "Print spectral properties of window functions",
		Long: `Generate each named window (all of them when none is named) and print
its coherent gain, equivalent noise bandwidth, highest sidelobe and main
lobe half-width.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				for _, t := range window.Types() {
					if _, err := fmt.Fprintln(out, t); err != nil {
						return err
					}
				}

				return nil
			}

			types, err := resolveWindows(args)
			if err != nil {
				return err
			}

			opts := []window.Option{window.WithBeta(beta)}
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}

			prec := a.cfg.Output.Precision
			t := newTable(out, "Window", "Size", "Coherent Gain", "ENBW [bins]", "Sidelobe [dB]", "1st Null [bins]")

			for _, typ := range types {
				an, err := window.Analyze(window.Generate(typ, size, opts...))
				if err != nil {
					return fmt.Errorf("analyze %s: %w", typ, err)
				}

				label := typ.String()
				if typ == window.TypeKaiser {
					label = fmt.Sprintf("%s (beta=%.2f)", typ, beta)
				}

				t.row(label, strconv.Itoa(size), num(an.CoherentGain, prec), num(an.ENBW, prec),
					num(an.HighestSidelobeDB, 2), num(an.MainLobeWidthBins, prec))
			}

			return t.flush()
		},
	}

	cmd.Flags().IntVar(&size, "size", 1024, "window length in samples")
	cmd.Flags().Float64Var(&beta, "beta", window.DefaultKaiserBeta, "Kaiser shape parameter")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "use the periodic form instead of the symmetric one")
	cmd.Flags().BoolVar(&list, "list", false, "list the available window names")

	return cmd
}

func resolveWindows(names []string) ([]window.Type, error) {
	if len(names) == 0 {
		return window.Types(), nil
	}

	types := make([]window.Type, 0, len(names))

	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}
