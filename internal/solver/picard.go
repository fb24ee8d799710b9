package solver

import "math"

// rmsNormed is the scalar convergence metric: the RMS of the elementwise
// difference normalized by the RMS of the candidate. An all-zero candidate
// falls back to the plain RMS difference so the trivial fixed point still
// reads as converged.
func rmsNormed(current, previous []float64) float64 {
	var diff, norm float64
	for i := range current {
		d := current[i] - previous[i]
		diff += d * d
		norm += current[i] * current[i]
	}
	if norm > 0 {
		return math.Sqrt(diff / norm)
	}
	return math.Sqrt(diff / float64(len(current)))
}

// picardMix writes the damped update mix*current + (1-mix)*previous into
// previous, which becomes the next iteration's starting state.
func picardMix(previous, current []float64, mix float64) {
	for i := range previous {
		previous[i] = mix*current[i] + (1-mix)*previous[i]
	}
}
