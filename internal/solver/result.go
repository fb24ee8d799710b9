package solver

import (
	"time"

	"github.com/san-kum/ozsim/internal/fluid"
)

// Result carries the correlation tensors of a solve together with the grid
// needed to interpret them. On success all tensors are populated. On
// failure the tensors computed up to the failure point remain readable for
// post-mortem inspection but do not constitute a valid solution; Converged
// reports which case holds.
type Result struct {
	Grid *fluid.Grid

	// G is the pair correlation g(r), C the direct correlation c(r), E the
	// indirect correlation e(r), H the total correlation h(r) = g(r)-1, and
	// S the structure factor S(k).
	G, C, E, H, S *fluid.PairTensor

	Iterations int
	Converged  bool
	FinalRMS   float64
	Elapsed    time.Duration
}
