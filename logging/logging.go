// SPDX-License-Identifier: MIT
// Package: kuranet/logging
//
// Package logging builds the zap loggers used by the kuranet command line.
// Library packages never log on their own; they accept a *zap.Logger through
// an option where a long-running operation benefits from progress output.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environments understood by New.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config selects the encoder and the minimum level.
type Config struct {
	// Env is "production" for JSON output; anything else gives the
	// development console encoder.
	Env string
	// Level is a zap level name ("debug", "info", "warn", "error"); empty
	// keeps the environment default.
	Level string
}

// New builds a logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Env, EnvProduction) {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zc.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
