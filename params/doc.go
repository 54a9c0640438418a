// Package params defines the on-disk parameter files of a kuranet
// experiment and the generator that produces them.
//
// Three JSON documents drive a simulation:
//
//   - NetworkParam: oscillator count, cluster sizes, natural frequencies and
//     the symmetric coupling matrix.
//   - ControlParam: control law selector, input gains, input frequencies and
//     the per-cluster averaging weights.
//   - CommonParam: integration step, horizon, initial-phase range and seeds.
//
// Layout fixes where these live under a data root:
//
//	<root>/common.json
//	<root>/<folder>/param/network/<name>.json
//	<root>/<folder>/param/control/<name>.json
//	<root>/<folder>/result/<network>/<control>/<seed>.csv
//	<root>/<folder>/plot/
//
// ExperimentConfig (YAML) describes how to synthesize a network; Generate
// turns it into an original and a damaged NetworkParam plus a default
// ControlParam, recorded with a Manifest.
package params
