package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
	"github.com/cwbudde/dsp-course/dsp/signal"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare transform backends against the direct DFT",
		Long: `For every size, transform the same deterministic noise block with each
backend and print the mean time per transform, the textbook operation
count and the largest deviation from the direct DFT. A backend that
rejects a size is reported in its row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Compare.Timeout)
			defer cancel()

			rows, err := compareBackends(ctx, a.cfg.Compare.Sizes, a.cfg.Compare.Repeat, a.cfg.Compare.Seed)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "N", "Backend", "Time/op", "Ops", "Max Deviation", "Status")

			for _, r := range rows {
				ops := "-"
				if r.ops > 0 {
					ops = strconv.Itoa(r.ops)
				}

				if r.err != nil {
					a.log.Warn("backend rejected size",
						zap.String("backend", r.backend), zap.Int("n", r.n), zap.Error(r.err))
					t.row(strconv.Itoa(r.n), r.backend, "-", ops, "-", r.err.Error())

					continue
				}

				t.row(strconv.Itoa(r.n), r.backend, r.elapsed.String(), ops,
					strconv.FormatFloat(r.deviation, 'e', 2, 64), "ok")
			}

			return t.flush()
		},
	}

	cmd.Flags().IntSlice("sizes", []int{8, 64, 512}, "transform sizes")
	cmd.Flags().Int("repeat", 10, "transforms per measurement")
	cmd.Flags().Duration("timeout", 30*time.Second, "overall time limit")
	bindKey(cmd.Flags(), "sizes", "compare.sizes")
	bindKey(cmd.Flags(), "repeat", "compare.repeat")
	cmd.Flags().Uint64("seed", 1, "noise seed for the test blocks")
	bindKey(cmd.Flags(), "timeout", "compare.timeout")
	bindKey(cmd.Flags(), "seed", "compare.seed")

	return cmd
}

type comparison struct {
	n         int
	backend   string
	elapsed   time.Duration
	ops       int
	deviation float64
	err       error
}

// compareBackends measures every backend on every size. Backend errors
// are recorded per row; only a cancelled ctx or a failing reference
// aborts the run.
func compareBackends(ctx context.Context, sizes []int, repeat int, seed uint64) ([]comparison, error) {
	gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(seed))
	backends := fourier.Backends()

	var rows []comparison

	for _, n := range sizes {
		noise, err := gen.WhiteNoise(1, n)
		if err != nil {
			return nil, err
		}

		x := core.ToComplex(noise)

		ref, err := fourier.DFT(x)
		if err != nil {
			return nil, fmt.Errorf("reference DFT of size %d: %w", n, err)
		}

		for _, b := range backends {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("compare: %w", err)
			}

			rows = append(rows, measure(b, x, ref, repeat))
		}
	}

	return rows, nil
}

func measure(b fourier.Transformer, x, ref []complex128, repeat int) comparison {
	r := comparison{n: len(x), backend: b.Name(), ops: operationCount(b, len(x))}

	var out []complex128

	start := time.Now()

	for range repeat {
		var err error

		out, err = b.Forward(x)
		if err != nil {
			r.err = err
			return r
		}
	}

	r.elapsed = time.Since(start) / time.Duration(repeat)

	r.deviation, r.err = fourier.MaxDeviation(out, ref)

	return r
}

// operationCount returns the textbook cost of b, or 0 when it has none.
func operationCount(b fourier.Transformer, n int) int {
	algo := fourier.AlgorithmFFT
	if _, ok := b.(fourier.Direct); ok {
		algo = fourier.AlgorithmDFT
	}

	return max(fourier.OperationCount(algo, n), 0)
}
