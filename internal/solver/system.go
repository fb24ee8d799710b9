// Package solver owns the Ornstein-Zernike fixed-point iteration: closure
// evaluation in real space, forward radial transform, algebraic solve in
// reciprocal space, inverse transform, and the damped Picard update with
// convergence, divergence, and physicality checks.
package solver

import (
	"math"

	"github.com/san-kum/ozsim/internal/fluid"
)

// System couples an immutable grid with a growable interaction tensor.
// Interactions may be added any number of times before solving; Solve may
// be invoked repeatedly with different densities and closures, each call
// recomputing its state from scratch.
type System struct {
	grid         *fluid.Grid
	temperature  float64
	interactions *fluid.Interactions
}

func NewSystem(grid *fluid.Grid, temperature float64) *System {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &System{
		grid:         grid,
		temperature:  temperature,
		interactions: fluid.NewInteractions(grid),
	}
}

func (s *System) Grid() *fluid.Grid    { return s.grid }
func (s *System) Temperature() float64 { return s.temperature }
func (s *System) Components() int      { return s.interactions.Components() }

// SetInteraction tabulates the pair potential for components (i, j),
// growing the component set as needed.
func (s *System) SetInteraction(i, j int, values []float64, symmetric bool) error {
	return s.interactions.Set(i, j, values, symmetric)
}

// RemoveInteraction is not supported; see fluid.Interactions.Remove.
func (s *System) RemoveInteraction(i, j int) error {
	return s.interactions.Remove(i, j)
}

// densityMatrix builds rho_ij = sqrt(rho_i * rho_j), recomputed at the
// start of every solve call.
func densityMatrix(rhos []float64) [][]float64 {
	n := len(rhos)
	rho := make([][]float64, n)
	for i := range rho {
		rho[i] = make([]float64, n)
		for j := range rho[i] {
			rho[i][j] = math.Sqrt(rhos[i] * rhos[j])
		}
	}
	return rho
}
