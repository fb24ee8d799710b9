// Package thermo evaluates post-hoc thermodynamic integrals over a
// converged solve result. Nothing here participates in the iteration; the
// functions consume correlation tensors and the grid read-only.
package thermo

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/ozsim/internal/fluid"
)

// KirkwoodBuff computes G_ij = 4*pi * integral (g_ij(r)-1) r^2 dr for
// every component pair.
func KirkwoodBuff(grid *fluid.Grid, g *fluid.PairTensor) [][]float64 {
	nc := g.Components()
	out := make([][]float64, nc)
	integrand := make([]float64, grid.NPoints)

	for i := 0; i < nc; i++ {
		out[i] = make([]float64, nc)
		for j := 0; j < nc; j++ {
			pair := g.Pair(i, j)
			for n, r := range grid.R {
				integrand[n] = (pair[n] - 1) * r * r
			}
			out[i][j] = 4 * math.Pi * integrate.Simpsons(grid.R, integrand)
		}
	}
	return out
}

// Compressibility holds the excess isothermal compressibility relative to
// the ideal gas and its reciprocal.
type Compressibility struct {
	Excess           float64
	ExcessReciprocal float64
}

// ExcessCompressibility evaluates
//
//	1/chi_ex = 1 - 1/rho * sum_ij rho_i rho_j * integral c_ij(r) 4*pi*r^2 dr
//
// from the direct correlation. Zero total density (infinite dilution)
// gives the ideal value chi_ex = 1.
func ExcessCompressibility(grid *fluid.Grid, rhos []float64, c *fluid.PairTensor) Compressibility {
	total := 0.0
	for _, rho := range rhos {
		total += rho
	}
	if total == 0 {
		return Compressibility{Excess: 1, ExcessReciprocal: 1}
	}

	recip := 1.0
	integrand := make([]float64, grid.NPoints)
	prefactor := 4 * math.Pi / total

	for i := range rhos {
		for j := range rhos {
			pair := c.Pair(i, j)
			for n, r := range grid.R {
				integrand[n] = pair[n] * r * r
			}
			recip -= prefactor * rhos[i] * rhos[j] * integrate.Simpsons(grid.R, integrand)
		}
	}

	return Compressibility{Excess: 1 / recip, ExcessReciprocal: recip}
}

// ExcessChemicalPotential evaluates, per component, the HNC expression
//
//	beta*mu_i = sum_j 4*pi*rho_j * integral [ h_ij*e_ij/2 - c_ij ] r^2 dr
//
// Exponentiating gives the activity coefficient.
func ExcessChemicalPotential(grid *fluid.Grid, rhos []float64, h, e, c *fluid.PairTensor) []float64 {
	nc := len(rhos)
	out := make([]float64, nc)
	integrand := make([]float64, grid.NPoints)

	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			hp, ep, cp := h.Pair(i, j), e.Pair(i, j), c.Pair(i, j)
			for n, r := range grid.R {
				integrand[n] = (0.5*hp[n]*ep[n] - cp[n]) * r * r
			}
			out[i] += 4 * math.Pi * rhos[j] * integrate.Simpsons(grid.R, integrand)
		}
	}
	return out
}

// ActivityCoefficients exponentiates the excess chemical potentials.
func ActivityCoefficients(muex []float64) []float64 {
	out := make([]float64, len(muex))
	for i, mu := range muex {
		out[i] = math.Exp(mu)
	}
	return out
}
