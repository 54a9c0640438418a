// SPDX-License-Identifier: MIT
// Package: kuranet/phase
//
// phase.go — scalar measures of a phase vector.

package phase

import (
	"math"
)

// TwoPi is the period of a phase.
const TwoPi = 2 * math.Pi

// Wrap maps x into [0, 2π).
func Wrap(x float64) float64 {
	y := math.Mod(x, TwoPi)
	if y < 0 {
		y += TwoPi
	}
	if y >= TwoPi {
		// x slightly below a negative multiple of 2π rounds up to 2π.
		y = 0
	}

	return y
}

// WrapAll wraps every entry of phases in place and returns it.
func WrapAll(phases []float64) []float64 {
	for i, v := range phases {
		phases[i] = Wrap(v)
	}

	return phases
}

// Distance returns the circular distance |a − b| folded into [0, π].
func Distance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), TwoPi)
	if d > math.Pi {
		d = TwoPi - d
	}

	return d
}

// OrderParameter returns |Σ e^{iθ}| / n; 0 for an empty vector.
func OrderParameter(phases []float64) float64 {
	if len(phases) == 0 {
		return 0
	}
	var re, im float64
	for _, th := range phases {
		s, c := math.Sincos(th)
		re += c
		im += s
	}

	return math.Hypot(re, im) / float64(len(phases))
}

// MaxPhaseDifference returns the largest circular distance over all pairs;
// 0 for fewer than two phases.
func MaxPhaseDifference(phases []float64) float64 {
	best := 0.0
	for i := 0; i < len(phases); i++ {
		for j := i + 1; j < len(phases); j++ {
			if d := Distance(phases[i], phases[j]); d > best {
				best = d
			}
		}
	}

	return best
}
