// SPDX-License-Identifier: MIT
// Package: kuranet/cluster
//
// damage.go — random attenuation of edges inside one node range.
//
// Model:
//   1) Eligible edges: (i,j), i<j, both in r, weight > 0, collected row-major.
//   2) Sample ⌊fraction·count⌋ of them without replacement (partial Fisher–Yates).
//   3) Multiply (i,j) and (j,i) by the attenuation factor.
//
// The input is never mutated; a modified copy is returned.

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuranet/matrix"
)

const methodDamage = "Damage"

// DamageReport lists the attenuated edges (i<j) in sampling order.
type DamageReport struct {
	Eligible int
	Damaged  []matrix.Edge
}

// Damage attenuates a random fraction of the positive edges inside r.
//
// Errors:
//   - ErrInvalidParameter for fraction ∉ [0,1].
//   - matrix.ErrNonSquare / matrix.ErrOutOfRange for shape and range problems.
//   - ErrNeedRandSource when a proper subset must be sampled without an RNG.
func Damage(m matrix.Matrix, r Range, fraction float64, opts ...Option) (*matrix.Dense, error) {
	out, _, err := DamageWithReport(m, r, fraction, opts...)

	return out, err
}

// DamageWithReport is Damage that also returns which edges were attenuated.
func DamageWithReport(m matrix.Matrix, r Range, fraction float64, opts ...Option) (*matrix.Dense, *DamageReport, error) {
	cfg := newConfig(opts...)
	if !(fraction >= 0 && fraction <= 1) {
		return nil, nil, fmt.Errorf("%s: fraction=%g not in [0,1]: %w", methodDamage, fraction, ErrInvalidParameter)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
	}
	if r.Start < 0 || r.End > m.Rows() || r.Start > r.End {
		return nil, nil, fmt.Errorf("%s: range [%d,%d) in %d nodes: %w",
			methodDamage, r.Start, r.End, m.Rows(), matrix.ErrOutOfRange)
	}
	out, ok := m.Clone().(*matrix.Dense)
	if !ok {
		rows := make([][]float64, m.Rows())
		for i := range rows {
			rows[i] = make([]float64, m.Cols())
			for j := range rows[i] {
				v, err := m.At(i, j)
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
				}
				rows[i][j] = v
			}
		}
		var err error
		if out, err = matrix.NewDenseFromRows(rows); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
		}
	}

	// 1) Eligible edges.
	var eligible []matrix.Edge
	for i := r.Start; i < r.End; i++ {
		for j := i + 1; j < r.End; j++ {
			v, err := out.At(i, j)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
			}
			if v > 0 {
				eligible = append(eligible, matrix.Edge{From: i, To: j})
			}
		}
	}
	report := &DamageReport{Eligible: len(eligible)}
	take := int(math.Floor(fraction * float64(len(eligible))))
	if take == 0 {
		return out, report, nil
	}

	// 2) Partial Fisher–Yates: the first `take` slots become the sample.
	if take < len(eligible) {
		if cfg.rng == nil {
			return nil, nil, fmt.Errorf("%s: %w", methodDamage, ErrNeedRandSource)
		}
		for s := 0; s < take; s++ {
			pick := s + cfg.rng.Intn(len(eligible)-s)
			eligible[s], eligible[pick] = eligible[pick], eligible[s]
		}
	}

	// 3) Attenuate symmetrically.
	for _, e := range eligible[:take] {
		v, err := out.At(e.From, e.To)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
		}
		v *= cfg.attenuation
		if err = out.Set(e.From, e.To, v); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
		}
		if err = out.Set(e.To, e.From, v); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodDamage, err)
		}
		report.Damaged = append(report.Damaged, e)
	}

	return out, report, nil
}
