// SPDX-License-Identifier: MIT
// Package: kuranet/cmd/kuranet
//
// Command kuranet generates clustered oscillator networks, checks the
// per-cluster synchronization bounds, runs Kuramoto simulations and renders
// the results.
//
// Usage:
//
//	kuranet create-params demo
//	kuranet check-condition demo damaged average 1 --csv bound.csv
//	kuranet simulate demo --stepper rk4
//	kuranet plot-result demo damaged average 0 --style order --lim 0,10
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	err := newRootCmd(a).ExecuteContext(ctx)
	if err != nil {
		if a.ready {
			a.log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "kuranet:", err)
		}
	}
	_ = a.log.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
