// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"io"
	"path/filepath"

	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// chartJob renders one PNG named <stem>_<suffix>.png.
type chartJob struct {
	suffix string
	render func(io.Writer) error
}

func newPlotNetworkCmd(a *app) *cobra.Command {
	var (
		freq     bool
		coords   string
		cellSize int
	)
	cmd := &cobra.Command{
		Use:   "plot-network <folder> <network>",
		Short: "Render a network document as a graph and a weight heatmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.layout(args[0])
			net, err := params.LoadNetwork(l.NetworkFile(args[1]))
			if err != nil {
				return err
			}
			p, err := net.Partition()
			if err != nil {
				return err
			}
			adj, err := net.Matrix()
			if err != nil {
				return err
			}

			layout := plot.Layout(coords)
			if _, err = plot.Coordinates(p, layout); err != nil {
				return err
			}

			stem := params.FileStem(args[1])
			jobs := []chartJob{
				{"network", func(w io.Writer) error { return plot.NetworkChart(w, adj, p, layout) }},
				{"heatmap", func(w io.Writer) error { return plot.Heatmap(w, adj, cellSize) }},
			}
			if freq {
				jobs = append(jobs, chartJob{"frequency", func(w io.Writer) error { return plot.FrequencyChart(w, net.Frequency) }})
			}
			for _, job := range jobs {
				path := filepath.Join(l.PlotDir(), stem+"_"+job.suffix+".png")
				if err = renderFile(path, job.render); err != nil {
					return err
				}
				a.log.Info("chart written", zap.String("path", path))
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&freq, "freq", "f", false, "also render the natural frequencies")
	cmd.Flags().StringVar(&coords, "coords", string(plot.LayoutCylinder), "node placement (line, cylinder)")
	cmd.Flags().IntVar(&cellSize, "cell", plot.DefaultCellSize, "heatmap cell size in pixels")

	return cmd
}
