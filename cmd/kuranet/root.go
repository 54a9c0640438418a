// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/kuranet/logging"
	"github.com/katalvlaran/kuranet/params"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	dataDir  string
	logLevel string
	env      string

	log *zap.Logger
	// ready is set once the configured logger replaced the no-op one.
	ready bool
}

func newApp() *app {
	return &app{log: logging.Nop()}
}

func (a *app) layout(folder string) params.Layout {
	return params.NewLayout(a.dataDir, folder)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kuranet",
		Short: "Clustered Kuramoto oscillator network toolkit",
		Long: `kuranet builds clustered weighted networks of phase oscillators, evaluates
the intra-cluster synchronization bound of every cluster, integrates the
controlled Kuramoto model and plots networks, bounds and phase traces.

Parameter folders live under --data-dir:
  <folder>/param/network/*.json   network documents
  <folder>/param/control/*.json   control documents
  <folder>/result/<net>/<ctl>/    one CSV trace per random seed
  <folder>/plot/                  rendered charts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(logging.Config{Env: a.env, Level: a.logLevel})
			if err != nil {
				return err
			}
			a.log = log.With(zap.String("command", cmd.Name()))
			a.ready = true

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", params.DefaultRoot, "root directory of parameter folders")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.env, "env", logging.EnvDevelopment, "logging environment (development, production)")

	root.AddCommand(
		newCreateParamsCmd(a),
		newCheckConditionCmd(a),
		newPlotNetworkCmd(a),
		newPlotResultCmd(a),
		newSimulateCmd(a),
		newSpanningTreeCmd(a),
	)

	return root
}

// intArg parses a non-negative positional integer.
func intArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, s)
	}

	return v, nil
}
