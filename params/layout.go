// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// layout.go — the data directory tree of an experiment.

package params

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultRoot is the data directory used when none is configured.
const DefaultRoot = "data"

const jsonExt = ".json"

// Layout resolves every path of one experiment folder.
type Layout struct {
	Root   string
	Folder string
}

// NewLayout returns a Layout, substituting DefaultRoot for an empty root.
func NewLayout(root, folder string) Layout {
	if root == "" {
		root = DefaultRoot
	}

	return Layout{Root: root, Folder: folder}
}

// Dir is <root>/<folder>.
func (l Layout) Dir() string { return filepath.Join(l.Root, l.Folder) }

// CommonFile is <root>/common.json, shared by every folder.
func (l Layout) CommonFile() string { return filepath.Join(l.Root, "common"+jsonExt) }

// NetworkDir is <root>/<folder>/param/network.
func (l Layout) NetworkDir() string { return filepath.Join(l.Dir(), "param", "network") }

// ControlDir is <root>/<folder>/param/control.
func (l Layout) ControlDir() string { return filepath.Join(l.Dir(), "param", "control") }

// PlotDir is <root>/<folder>/plot.
func (l Layout) PlotDir() string { return filepath.Join(l.Dir(), "plot") }

// ManifestFile is <root>/<folder>/manifest.yaml.
func (l Layout) ManifestFile() string { return filepath.Join(l.Dir(), "manifest.yaml") }

// NetworkFile resolves a network document by name (with or without .json).
func (l Layout) NetworkFile(name string) string {
	return filepath.Join(l.NetworkDir(), FileStem(name)+jsonExt)
}

// ControlFile resolves a control document by name (with or without .json).
func (l Layout) ControlFile(name string) string {
	return filepath.Join(l.ControlDir(), FileStem(name)+jsonExt)
}

// ResultDir is <root>/<folder>/result/<network>/<control>.
func (l Layout) ResultDir(network, control string) string {
	return filepath.Join(l.Dir(), "result", FileStem(network), FileStem(control))
}

// ResultFile is the trace of one seed.
func (l Layout) ResultFile(network, control string, seed uint64) string {
	return filepath.Join(l.ResultDir(network, control), strconv.FormatUint(seed, 10)+".csv")
}

// Ensure creates the param, result and plot directories.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.NetworkDir(), l.ControlDir(), filepath.Join(l.Dir(), "result"), l.PlotDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Layout.Ensure: %w", err)
		}
	}

	return nil
}

// Networks lists the network document stems in lexical order.
func (l Layout) Networks() ([]string, error) { return listFiles(l.NetworkDir(), true) }

// Controls lists the control document stems in lexical order.
func (l Layout) Controls() ([]string, error) { return listFiles(l.ControlDir(), true) }

// Results lists the trace file names of one (network, control) pair in
// lexical order.
func (l Layout) Results(network, control string) ([]string, error) {
	return listFiles(l.ResultDir(network, control), false)
}

// FileStem drops everything from the first dot of the base name.
func FileStem(name string) string {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}

	return base
}

func listFiles(dir string, stems bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("params: list %s: %w", dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if stems {
			out = append(out, FileStem(e.Name()))
		} else {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)

	return out, nil
}
