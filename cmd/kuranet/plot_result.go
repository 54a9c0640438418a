// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/phase"
	"github.com/katalvlaran/kuranet/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlotResultCmd(a *app) *cobra.Command {
	var (
		lim   []float64
		style string
	)
	cmd := &cobra.Command{
		Use:   "plot-result <folder> <network> <control> <file-number>",
		Short: "Render one simulation trace",
		Long: `plot-result reads the file-number-th trace (lexical order) of a
(network, control) pair and draws it in the selected style:

  wave   sin(theta) of every oscillator
  order  order parameter of every cluster
  phase  wrapped phase of every oscillator
  max    largest pairwise phase difference of every cluster`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := intArg("file-number", args[3])
			if err != nil {
				return err
			}
			if len(lim) != 2 {
				return fmt.Errorf("--lim takes two values, got %d", len(lim))
			}
			l := a.layout(args[0])
			net, err := params.LoadNetwork(l.NetworkFile(args[1]))
			if err != nil {
				return err
			}
			p, err := net.Partition()
			if err != nil {
				return err
			}
			files, err := l.Results(args[1], args[2])
			if err != nil {
				return err
			}
			if idx >= len(files) {
				return fmt.Errorf("file-number %d out of range: %d traces in %s", idx, len(files), l.ResultDir(args[1], args[2]))
			}

			tr, err := readTraceFile(filepath.Join(l.ResultDir(args[1], args[2]), files[idx]), net.StateDim)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("result_%s_%s_%s_%s.png",
				params.FileStem(args[1]), params.FileStem(args[2]), params.FileStem(files[idx]), style)
			path := filepath.Join(l.PlotDir(), name)
			err = renderFile(path, func(w io.Writer) error {
				return plot.TraceChart(w, tr, p, plot.Style(style), plot.Lim{Lo: lim[0], Hi: lim[1]})
			})
			if err != nil {
				return err
			}
			a.log.Info("chart written",
				zap.String("trace", files[idx]),
				zap.Int("samples", tr.Len()),
				zap.String("path", path))

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&lim, "lim", []float64{plot.DefaultLim.Lo, plot.DefaultLim.Hi}, "time window as two values: lo,hi")
	cmd.Flags().StringVar(&style, "style", string(plot.StyleMax), "trace style (wave, order, phase, max)")

	return cmd
}

func readTraceFile(path string, width int) (*phase.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return phase.ReadTrace(f, width)
}
