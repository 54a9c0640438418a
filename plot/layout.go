// SPDX-License-Identifier: MIT
// Package: kuranet/plot
//
// layout.go — node coordinates for NetworkChart.
//
// Cluster k is centred at (0, 1 − 3k/K).
//   line:     node i of n at x = −0.8 + 2i/n
//   cylinder: node i of n at (0.8·cos φ, 0.4·sin φ), φ = 2πi/n + 0.2

package plot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/cluster"
)

// Layout names a node placement.
type Layout string

// Supported layouts.
const (
	LayoutLine     Layout = "line"
	LayoutCylinder Layout = "cylinder"
)

// Point is a 2-D coordinate.
type Point struct{ X, Y float64 }

// Coordinates places every node of p.
func Coordinates(p cluster.Partition, layout Layout) ([]Point, error) {
	K := float64(p.Len())
	pts := make([]Point, 0, p.N())
	for k, r := range p.Ranges() {
		cy := 1.0 - float64(k)/K*3.0
		n := float64(r.Len())
		for i := 0; i < r.Len(); i++ {
			switch layout {
			case LayoutLine:
				pts = append(pts, Point{X: -0.8 + float64(i)/n*2.0, Y: cy})
			case LayoutCylinder:
				phi := float64(i)/n*2*math.Pi + 0.2
				pts = append(pts, Point{X: 0.8 * math.Cos(phi), Y: 0.4*math.Sin(phi) + cy})
			default:
				return nil, fmt.Errorf("Coordinates(%q): %w", layout, ErrUnknownLayout)
			}
		}
	}

	return pts, nil
}
