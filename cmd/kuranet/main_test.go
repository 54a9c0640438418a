package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/kuranet/bound"
	"github.com/katalvlaran/kuranet/params"
	"github.com/katalvlaran/kuranet/plot"
	"github.com/stretchr/testify/require"
)

const smallExperiment = `
comment: two small complete clusters
cluster_sizes: [4, 4]
frequency:
  means: [1, 2]
  sigma: 0.1
intra:
  model: complete
  lower: 1
  upper: 2
inter:
  links: [[0, 1]]
common:
  dt: 0.01
  simulation_time: 0.2
  random_range: 1
  random_seeds: [0, 1]
seed: 7
`

// execute runs the root command against dataDir and returns stdout.
func execute(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(newApp())
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--data-dir", dataDir, "--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func setup(t *testing.T) (dir string, l params.Layout) {
	t.Helper()
	dir = t.TempDir()
	cfg := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(smallExperiment), 0o644))
	_, err := execute(t, dir, "create-params", "demo", "--config", cfg)
	require.NoError(t, err)

	return dir, params.NewLayout(dir, "demo")
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "%s is not a PNG", path)
}

func TestCLI_Workflow(t *testing.T) {
	t.Parallel()
	dir, l := setup(t)

	nets, err := l.Networks()
	require.NoError(t, err)
	require.Equal(t, []string{params.NetworkDamaged, params.NetworkOriginal}, nets)
	ctls, err := l.Controls()
	require.NoError(t, err)
	require.Equal(t, []string{"average"}, ctls)
	require.FileExists(t, l.CommonFile())
	require.FileExists(t, l.ManifestFile())

	t.Run("check-condition", func(t *testing.T) {
		csvPath := filepath.Join(dir, "curves.csv")
		out, err := execute(t, dir, "check-condition", "demo", "damaged", "average", "1", "--csv", csvPath)
		require.NoError(t, err)
		require.Contains(t, out, "a_max")
		require.Contains(t, out, "cluster 1: min gap")

		data, err := os.ReadFile(csvPath)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Equal(t, "psi,intra,inter,input,demand,gap", lines[0])
		psi, err := bound.Domain(bound.DefaultStep)
		require.NoError(t, err)
		require.Len(t, lines, len(psi)+1)

		requirePNG(t, filepath.Join(l.PlotDir(), "condition_damaged_average_1.png"))
	})

	t.Run("simulate", func(t *testing.T) {
		out, err := execute(t, dir, "simulate", "demo", "--stepper", "euler")
		require.NoError(t, err)
		require.Contains(t, out, "4 traces written")
		for _, net := range nets {
			files, err := l.Results(net, "average")
			require.NoError(t, err)
			require.Equal(t, []string{"0.csv", "1.csv"}, files)
		}
	})

	t.Run("plot-result", func(t *testing.T) {
		_, err := execute(t, dir, "plot-result", "demo", "damaged", "average", "1", "--style", "order", "--lim", "0,0.1")
		require.NoError(t, err)
		requirePNG(t, filepath.Join(l.PlotDir(), "result_damaged_average_1_order.png"))

		_, err = execute(t, dir, "plot-result", "demo", "damaged", "average", "2")
		require.ErrorContains(t, err, "out of range")

		_, err = execute(t, dir, "plot-result", "demo", "damaged", "average", "0", "--style", "spiral")
		require.ErrorIs(t, err, plot.ErrUnknownStyle)
		require.NoFileExists(t, filepath.Join(l.PlotDir(), "result_damaged_average_0_spiral.png"))
	})

	t.Run("plot-network", func(t *testing.T) {
		_, err := execute(t, dir, "plot-network", "demo", "original", "--freq", "--coords", "line")
		require.NoError(t, err)
		for _, suffix := range []string{"network", "heatmap", "frequency"} {
			requirePNG(t, filepath.Join(l.PlotDir(), "original_"+suffix+".png"))
		}

		_, err = execute(t, dir, "plot-network", "demo", "damaged", "--coords", "spiral")
		require.ErrorIs(t, err, plot.ErrUnknownLayout)
	})

	t.Run("spanning-tree", func(t *testing.T) {
		out, err := execute(t, dir, "spanning-tree", "demo", "original", "--cluster", "0")
		require.NoError(t, err)
		require.Contains(t, out, "nodes 4, tree edges 3")
		require.Contains(t, out, "0 -> 1\n1 -> 2\n2 -> 3\n")
	})
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()
	dir, _ := setup(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad log level", []string{"--log-level", "loud", "simulate", "demo"}, "loud"},
		{"cluster not a number", []string{"check-condition", "demo", "original", "average", "x"}, "non-negative integer"},
		{"cluster out of range", []string{"check-condition", "demo", "original", "average", "5"}, "5"},
		{"missing network", []string{"check-condition", "demo", "nope", "average", "0"}, "nope"},
		{"unknown stepper", []string{"simulate", "demo", "--stepper", "leapfrog"}, "leapfrog"},
		{"missing folder", []string{"simulate", "absent"}, "absent"},
		{"wrong arg count", []string{"spanning-tree", "demo"}, "accepts 2 arg(s)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, dir, tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCreateParams_SeedOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := execute(t, dir, "create-params", "a", "--seed", "3")
	require.NoError(t, err)
	_, err = execute(t, dir, "create-params", "b", "--seed", "3")
	require.NoError(t, err)

	a, err := params.LoadNetwork(params.NewLayout(dir, "a").NetworkFile(params.NetworkDamaged))
	require.NoError(t, err)
	b, err := params.LoadNetwork(params.NewLayout(dir, "b").NetworkFile(params.NetworkDamaged))
	require.NoError(t, err)
	require.Equal(t, a.Connectivity, b.Connectivity)
	require.Equal(t, a.Frequency, b.Frequency)

	m, err := params.ReadManifest(params.NewLayout(dir, "a").ManifestFile())
	require.NoError(t, err)
	require.Equal(t, int64(3), m.Seed)
}
