package logging_test

import (
	"testing"

	"github.com/katalvlaran/kuranet/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     logging.Config
		enabled zapcore.Level
		off     zapcore.Level
		wantErr bool
	}{
		{"development default", logging.Config{}, zapcore.DebugLevel, zapcore.DebugLevel - 1, false},
		{"production default", logging.Config{Env: logging.EnvProduction}, zapcore.InfoLevel, zapcore.DebugLevel, false},
		{"production warn", logging.Config{Env: "PRODUCTION", Level: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel, false},
		{"bad level", logging.Config{Level: "loud"}, 0, 0, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			log, err := logging.New(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, log.Core().Enabled(tc.enabled))
			require.False(t, log.Core().Enabled(tc.off))
		})
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	require.False(t, logging.Nop().Core().Enabled(zapcore.FatalLevel))
}
