// SPDX-License-Identifier: MIT
// Package: kuranet/plot
//
// heatmap.go — colour map of a coupling matrix.
//
// Cell (i,j) is a cellSize square at column j, row i, shaded from the light
// end to the dark end of a blue ramp by A[i][j]/max(A). A zero matrix is
// painted in the light colour.

package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/kuranet/matrix"
)

// DefaultCellSize is the pixel size of one heatmap cell.
const DefaultCellSize = 16

var (
	rampLight = color.RGBA{R: 247, G: 251, B: 255, A: 255}
	rampDark  = color.RGBA{R: 8, G: 48, B: 107, A: 255}
)

// Shade maps t ∈ [0,1] onto the blue ramp; t is clamped.
func Shade(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }

	return color.RGBA{
		R: mix(rampLight.R, rampDark.R),
		G: mix(rampLight.G, rampDark.G),
		B: mix(rampLight.B, rampDark.B),
		A: 255,
	}
}

// HeatmapImage paints adj into an RGBA image.
func HeatmapImage(adj matrix.Matrix, cellSize int) (*image.RGBA, error) {
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("Heatmap: %w", err)
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	rows, cols := adj.Rows(), adj.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("Heatmap: %w", ErrNotEnoughData)
	}
	vals := make([]float64, rows*cols)
	maxV := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := adj.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Heatmap: %w", err)
			}
			vals[i*cols+j] = v
			if v > maxV {
				maxV = v
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t := 0.0
			if maxV > 0 {
				t = vals[i*cols+j] / maxV
			}
			c := Shade(t)
			for y := i * cellSize; y < (i+1)*cellSize; y++ {
				for x := j * cellSize; x < (j+1)*cellSize; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}

	return img, nil
}

// Heatmap writes the PNG colour map of adj.
func Heatmap(w io.Writer, adj matrix.Matrix, cellSize int) error {
	img, err := HeatmapImage(adj, cellSize)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("Heatmap: %w", err)
	}

	return nil
}
