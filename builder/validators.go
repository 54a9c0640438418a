// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapped via builderErrorf
// when its precondition is violated.
package builder

// validateProbability enforces p ∈ [probMin, probMax]; NaN is rejected.
// Returns "<Method>: p=<p> not in [0.0,1.0]: builder: probability out of range ...".
func validateProbability(method string, p float64) error {
	if !(p >= probMin && p <= probMax) {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
