// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/kuranet/kuramoto"
	"github.com/katalvlaran/kuranet/params"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		stepper  string
		networks []string
		controls []string
		progress int
	)
	cmd := &cobra.Command{
		Use:   "simulate <folder>",
		Short: "Integrate every network/control pair for every seed in common.json",
		Long: `simulate runs the controlled Kuramoto model for each network document,
each control document and each random seed listed in common.json, writing
one space-separated trace per seed to <folder>/result/<network>/<control>/.

--network and --control restrict the run to the named documents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := kuramoto.NewStepper(stepper)
			if err != nil {
				return err
			}
			l := a.layout(args[0])
			common, err := params.LoadCommon(l.CommonFile())
			if err != nil {
				return err
			}
			if len(networks) == 0 {
				if networks, err = l.Networks(); err != nil {
					return err
				}
			}
			if len(controls) == 0 {
				if controls, err = l.Controls(); err != nil {
					return err
				}
			}
			if len(networks) == 0 || len(controls) == 0 {
				return fmt.Errorf("simulate: %s has %d networks and %d controls", l.Dir(), len(networks), len(controls))
			}

			runs := 0
			for _, netName := range networks {
				net, err := params.LoadNetwork(l.NetworkFile(netName))
				if err != nil {
					return err
				}
				for _, ctlName := range controls {
					ctl, err := params.LoadControl(l.ControlFile(ctlName))
					if err != nil {
						return err
					}
					md, err := kuramoto.NewModel(net, ctl)
					if err != nil {
						return fmt.Errorf("%s/%s: %w", netName, ctlName, err)
					}
					log := a.log.With(zap.String("network", netName), zap.String("control", ctlName))
					opts := []kuramoto.SimOption{kuramoto.WithLogger(log)}
					if progress > 0 {
						opts = append(opts, kuramoto.WithProgressEvery(progress))
					}
					for _, seed := range common.RandomSeeds {
						path := l.ResultFile(netName, ctlName, seed)
						err = renderFile(path, func(w io.Writer) error {
							return kuramoto.RunSeed(cmd.Context(), md, *common, seed, st, w, opts...)
						})
						if err != nil {
							return err
						}
						runs++
						log.Info("trace written", zap.Uint64("seed", seed), zap.String("path", path))
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d traces written to %s\n", runs, l.Dir())

			return nil
		},
	}
	cmd.Flags().StringVar(&stepper, "stepper", "rk4", "integrator (euler, rk4)")
	cmd.Flags().StringSliceVar(&networks, "network", nil, "network documents to run (default: all)")
	cmd.Flags().StringSliceVar(&controls, "control", nil, "control documents to run (default: all)")
	cmd.Flags().IntVar(&progress, "progress", 0, "log progress every n steps (0 keeps the default)")

	return cmd
}
