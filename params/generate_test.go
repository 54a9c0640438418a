package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/kuranet/matrix"
	"github.com/katalvlaran/kuranet/params"
	"github.com/stretchr/testify/require"
)

func TestExperiment_Validate(t *testing.T) {
	t.Parallel()
	cfg := params.DefaultExperiment()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(c *params.ExperimentConfig)
	}{
		{"singleton cluster", func(c *params.ExperimentConfig) { c.ClusterSizes = []int{1, 10, 10} }},
		{"means length", func(c *params.ExperimentConfig) { c.Frequency.Means = []float64{1} }},
		{"unknown model", func(c *params.ExperimentConfig) { c.Intra.Model = "lattice" }},
		{"weight order", func(c *params.ExperimentConfig) { c.Intra.Lower, c.Intra.Upper = 2, 1 }},
		{"density", func(c *params.ExperimentConfig) { c.Inter.Density = 1.5 }},
		{"damage cluster", func(c *params.ExperimentConfig) { c.Damage.Cluster = 3 }},
		{"damage fraction", func(c *params.ExperimentConfig) { c.Damage.Fraction = -0.1 }},
		{"control name", func(c *params.ExperimentConfig) { c.Control.Name = "" }},
		{"common dt", func(c *params.ExperimentConfig) { c.Common.Dt = 0 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := params.DefaultExperiment()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), params.ErrInvalidParams)
		})
	}
}

func TestLoadExperiment_OverridesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cluster_sizes: [4, 5]
frequency:
  means: [1, 2]
  sigma: 0.5
intra:
  model: complete
  lower: 1
  upper: 1
inter:
  links: [[0, 1]]
damage:
  cluster: 0
seed: 12
`), 0o644))
	cfg, err := params.LoadExperiment(path)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, cfg.ClusterSizes)
	require.Equal(t, params.ModelComplete, cfg.Intra.Model)
	require.Equal(t, int64(12), cfg.Seed)
	// Untouched keys keep their defaults.
	require.Equal(t, 0.1, cfg.Inter.Min)
	require.Equal(t, 0.5, cfg.Damage.Fraction)
	require.Equal(t, "average", cfg.Control.Name)

	require.NoError(t, os.WriteFile(path, []byte("cluster_sizes: [1]\n"), 0o644))
	_, err = params.LoadExperiment(path)
	require.ErrorIs(t, err, params.ErrInvalidParams)

	require.NoError(t, os.WriteFile(path, []byte("cluster_sizes: {\n"), 0o644))
	_, err = params.LoadExperiment(path)
	require.ErrorIs(t, err, params.ErrInvalidParams)

	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, params.SaveExperiment(out, params.DefaultExperiment()))
	back, err := params.LoadExperiment(out)
	require.NoError(t, err)
	require.Equal(t, params.DefaultExperiment(), back)
}

// TestGenerate_Default reproduces the reference experiment: 30 oscillators,
// chained inter coupling and a damaged middle cluster.
func TestGenerate_Default(t *testing.T) {
	t.Parallel()
	g, err := params.Generate(params.DefaultExperiment())
	require.NoError(t, err)
	require.NoError(t, g.Original.Validate())
	require.NoError(t, g.Damaged.Validate())
	require.NoError(t, g.Control.ValidateFor(g.Original))
	require.Equal(t, 30, g.Original.StateDim)
	require.Equal(t, []string{params.NetworkOriginal, params.NetworkDamaged}, g.Manifest.Networks)

	orig, err := g.Original.Matrix()
	require.NoError(t, err)
	dmg, err := g.Damaged.Matrix()
	require.NoError(t, err)

	// No link between clusters 0 and 2.
	for i := 0; i < 10; i++ {
		for j := 20; j < 30; j++ {
			v, _ := orig.At(i, j)
			require.Zero(t, v)
		}
	}

	// Only cluster 1 intra edges change, each by the attenuation factor.
	require.NotEmpty(t, g.Report.Damaged)
	require.Len(t, g.Report.Damaged, g.Report.Eligible/2)
	damaged := map[matrix.Edge]bool{}
	for _, e := range g.Report.Damaged {
		damaged[e] = true
	}
	for i := 0; i < 30; i++ {
		for j := i + 1; j < 30; j++ {
			a, _ := orig.At(i, j)
			b, _ := dmg.At(i, j)
			if damaged[matrix.Edge{From: i, To: j}] {
				require.True(t, i >= 10 && j < 20)
				require.InDelta(t, a*0.1, b, 1e-12)
				continue
			}
			require.Equal(t, a, b)
		}
	}

	again, err := params.Generate(params.DefaultExperiment())
	require.NoError(t, err)
	require.Equal(t, g.Original.Connectivity, again.Original.Connectivity)
	require.Equal(t, g.Original.Frequency, again.Original.Frequency)
	require.NotEqual(t, g.Manifest.RunID, again.Manifest.RunID)
}

func TestGenerate_NoDamageAndModels(t *testing.T) {
	t.Parallel()
	for _, model := range []string{params.ModelComplete, params.ModelHolmeKim, params.ModelRandomSparse} {
		cfg := params.DefaultExperiment()
		cfg.Intra = params.IntraSpec{Model: model, K: 2, P: 0.7, N0: 3, Lower: 1, Upper: 2}
		cfg.Damage.Enabled = false
		g, err := params.Generate(cfg)
		require.NoError(t, err, model)
		require.Nil(t, g.Damaged)
		require.Nil(t, g.Report)
		require.NoError(t, g.Original.Validate())
	}
}

func TestGenerated_Write(t *testing.T) {
	t.Parallel()
	g, err := params.Generate(params.DefaultExperiment())
	require.NoError(t, err)
	l := params.NewLayout(t.TempDir(), "report1")
	require.NoError(t, g.Write(l))

	nets, err := l.Networks()
	require.NoError(t, err)
	require.Equal(t, []string{"damaged", "original"}, nets)
	ctl, err := params.LoadControl(l.ControlFile("average"))
	require.NoError(t, err)
	net, err := params.LoadNetwork(l.NetworkFile("original"))
	require.NoError(t, err)
	require.NoError(t, ctl.ValidateFor(net))
	common, err := params.LoadCommon(l.CommonFile())
	require.NoError(t, err)
	require.Equal(t, params.DefaultCommon(), *common)

	m, err := params.ReadManifest(l.ManifestFile())
	require.NoError(t, err)
	require.Equal(t, g.Manifest.RunID, m.RunID)
	require.Equal(t, g.Manifest.Networks, m.Networks)
	require.True(t, g.Manifest.Created.Equal(m.Created))

	// An existing common file is left alone.
	custom := params.CommonParam{Dt: 0.1, SimulationTime: 1, RandomRange: 0.5, RandomSeeds: []uint64{3}}
	require.NoError(t, params.Save(l.CommonFile(), custom))
	require.NoError(t, g.Write(l))
	common, err = params.LoadCommon(l.CommonFile())
	require.NoError(t, err)
	require.Equal(t, custom, *common)
}
