// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/kuranet/bound"
	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckConditionCmd(a *app) *cobra.Command {
	var (
		csvPath    string
		noPlot     bool
		step       float64
		sizeScaled bool
	)
	cmd := &cobra.Command{
		Use:   "check-condition <folder> <network> <control> <k>",
		Short: "Evaluate the synchronization bound of cluster k",
		Long: `check-condition derives the bound parameters of every cluster from a network
and a control document, prints them, evaluates the bound curves of cluster k
over [0, pi) and renders them to <folder>/plot.

The control document's input_weight is used as the per-node gain.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := intArg("k", args[3])
			if err != nil {
				return err
			}
			l := a.layout(args[0])
			net, err := params.LoadNetwork(l.NetworkFile(args[1]))
			if err != nil {
				return err
			}
			ctl, err := params.LoadControl(l.ControlFile(args[2]))
			if err != nil {
				return err
			}
			if err = ctl.ValidateFor(net); err != nil {
				return err
			}
			p, err := net.Partition()
			if err != nil {
				return err
			}
			conn, err := net.Matrix()
			if err != nil {
				return err
			}

			var opts []bound.Option
			if sizeScaled {
				opts = append(opts, bound.WithSizeScaledCoefficients())
			}
			set, err := bound.Analyze(net.Frequency, conn, ctl.InputWeight, p, opts...)
			if err != nil {
				return err
			}
			psi, err := bound.Domain(step)
			if err != nil {
				return err
			}
			curves, err := set.Curves(k, psi)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = writeParamsTable(out, set.All()); err != nil {
				return err
			}
			at, gap, idx := curves.MinGap()
			if idx >= 0 {
				fmt.Fprintf(out, "cluster %d: min gap %.6g at psi=%.4g\n", k, gap, at)
			}
			a.log.Info("bound evaluated",
				zap.String("network", args[1]),
				zap.String("control", args[2]),
				zap.Int("cluster", k),
				zap.Float64("min_gap", gap),
				zap.Float64("psi", at))

			if csvPath != "" {
				if err = writeCurvesFile(csvPath, curves); err != nil {
					return err
				}
				a.log.Info("curves written", zap.String("path", csvPath))
			}
			if noPlot {
				return nil
			}
			name := fmt.Sprintf("condition_%s_%s_%d.png", params.FileStem(args[1]), params.FileStem(args[2]), k)
			path := filepath.Join(l.PlotDir(), name)
			if err = renderFile(path, func(w io.Writer) error { return plot.BoundChart(w, curves) }); err != nil {
				return err
			}
			a.log.Info("chart written", zap.String("path", path))

			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the curves of cluster k to this CSV file")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the PNG chart")
	cmd.Flags().Float64Var(&step, "step", bound.DefaultStep, "grid step over [0, pi)")
	cmd.Flags().BoolVar(&sizeScaled, "size-scaled", false, "use (n_k, n_k-1) as intra-curve coefficients")

	return cmd
}

func writeParamsTable(w io.Writer, all []bound.Params) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "k\tn\ta_max\ta_min\td_min\tD_min\tD_max\tg_max\tg_min\tepsilon\tdel_freq\tf_intra_min")
	for _, p := range all {
		fmt.Fprintf(tw, "%d\t%d\t%.4g\t%.4g\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
			p.Cluster, p.Size, p.AMax, p.AMin, p.DegMin, p.DMin, p.DMax,
			p.GMax, p.GMin, p.Epsilon, p.DelFreq, p.FIntraMin)
	}

	return tw.Flush()
}

// writeCurves emits one row per grid point with a header line.
func writeCurves(w io.Writer, c *bound.Curves) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"psi", "intra", "inter", "input", "demand", "gap"}); err != nil {
		return err
	}
	rec := make([]string, 6)
	for i := range c.Psi {
		for j, v := range []float64{c.Psi[i], c.Intra[i], c.Inter[i], c.Input[i], c.Demand[i], c.Gap[i]} {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeCurvesFile(path string, c *bound.Curves) error {
	return renderFile(path, func(w io.Writer) error { return writeCurves(w, c) })
}

// renderFile creates path (and its directory) and hands it to fn. A failed
// render removes the partial file.
func renderFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}

	return f.Close()
}
