package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/flowgraph"
	"github.com/cwbudde/dsp-course/internal/wavio"
)

func newFlowgraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowgraph",
		Short: "Run block-diagram signal flowgraphs",
	}

	cmd.AddCommand(newFlowgraphRunCmd(a), newFlowgraphBlocksCmd())

	return cmd
}

func newFlowgraphRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run file.yaml",
		Short: "Evaluate a flowgraph and write every sink to a WAV file",
		Long: `Parse and compile the flowgraph in file.yaml, evaluate it once and write
each sink to <wav-dir>/<sink id>.wav. Real streams become mono files,
complex streams two-channel I/Q files. A graph without sample_rate or
samples options takes --sample-rate and the configured nfft.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			g, err := flowgraph.ParseFile(args[0])
			if err != nil {
				return err
			}

			if g.Options.SampleRate == 0 {
				g.Options.SampleRate = cfg.SampleRate
			}

			if g.Options.Samples == 0 {
				g.Options.Samples = cfg.NFFT
			}

			flow, err := g.Compile()
			if err != nil {
				return err
			}

			a.log.Debug("compiled flowgraph",
				zap.String("file", args[0]), zap.Strings("order", flow.Order()), zap.Strings("sinks", flow.Sinks()))

			start := time.Now()

			streams, err := flow.Run(cmd.Context())
			if err != nil {
				return err
			}

			a.log.Info("flowgraph finished",
				zap.Int("blocks", len(flow.Order())), zap.Duration("elapsed", time.Since(start)))

			dir := cfg.Output.Dir
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			rate := int(math.Round(flow.Env().SampleRate))
			prec := cfg.Output.Precision
			t := newTable(cmd.OutOrStdout(), "Sink", "Samples", "Channels", "Peak", "File")

			for _, id := range flow.Sinks() {
				stream := streams[id]
				path := filepath.Join(dir, id+".wav")

				channels := 1
				if isReal(stream) {
					err = wavio.Write(path, core.RealParts(stream), rate, cfg.Output.WavBitDepth)
				} else {
					channels = 2
					err = wavio.WriteIQ(path, stream, rate, cfg.Output.WavBitDepth)
				}

				if err != nil {
					return fmt.Errorf("sink %s: %w", id, err)
				}

				a.log.Debug("wrote sink", zap.String("sink", id), zap.String("path", path))
				t.row(id, strconv.Itoa(len(stream)), strconv.Itoa(channels), num(peak(stream), prec), path)
			}

			return t.flush()
		},
	}

	cmd.Flags().String("wav-dir", ".", "directory for the sink WAV files")
	bindKey(cmd.Flags(), "wav-dir", "output.dir")

	return cmd
}

func newFlowgraphBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List the built-in block kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range flowgraph.DefaultRegistry().Kinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func isReal(x []complex128) bool {
	for _, v := range x {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

func peak(x []complex128) float64 {
	p := 0.0
	for _, v := range x {
		p = math.Max(p, cmplx.Abs(v))
	}

	return p
}
