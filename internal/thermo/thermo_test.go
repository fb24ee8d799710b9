package thermo

import (
	"math"
	"testing"

	"github.com/san-kum/ozsim/internal/fluid"
)

func unitGrid(t *testing.T) *fluid.Grid {
	t.Helper()
	g, err := fluid.NewGrid(2047, 0.005)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func TestKirkwoodBuffIdealGas(t *testing.T) {
	grid := unitGrid(t)
	g := fluid.NewPairTensor(1, grid.NPoints)
	g.Fill(1.0)

	kb := KirkwoodBuff(grid, g)
	if math.Abs(kb[0][0]) > 1e-10 {
		t.Errorf("g=1 should give zero KB integral, got %g", kb[0][0])
	}
}

func TestKirkwoodBuffStepFunction(t *testing.T) {
	// g-1 = 1 inside radius R, 0 outside: G = 4*pi*R^3/3.
	grid := unitGrid(t)
	g := fluid.NewPairTensor(1, grid.NPoints)
	pair := g.Pair(0, 0)
	R := 2.0
	for n, r := range grid.R {
		if r < R {
			pair[n] = 2.0
		} else {
			pair[n] = 1.0
		}
	}

	kb := KirkwoodBuff(grid, g)
	want := 4 * math.Pi * R * R * R / 3
	if math.Abs(kb[0][0]-want)/want > 1e-2 {
		t.Errorf("got %g, want %g", kb[0][0], want)
	}
}

func TestExcessCompressibilityIdeal(t *testing.T) {
	grid := unitGrid(t)
	c := fluid.NewPairTensor(1, grid.NPoints)

	chi := ExcessCompressibility(grid, []float64{0.8}, c)
	if math.Abs(chi.Excess-1) > 1e-12 || math.Abs(chi.ExcessReciprocal-1) > 1e-12 {
		t.Errorf("c=0 should give ideal compressibility, got %+v", chi)
	}
}

func TestExcessCompressibilityInfiniteDilution(t *testing.T) {
	grid := unitGrid(t)
	c := fluid.NewPairTensor(1, grid.NPoints)
	c.Fill(-1.0)

	chi := ExcessCompressibility(grid, []float64{0}, c)
	if chi.Excess != 1 {
		t.Errorf("zero density should give ideal value, got %g", chi.Excess)
	}
}

func TestExcessCompressibilityRepulsive(t *testing.T) {
	// Negative c(r) (repulsion) lowers the compressibility below ideal.
	grid := unitGrid(t)
	c := fluid.NewPairTensor(1, grid.NPoints)
	pair := c.Pair(0, 0)
	for n, r := range grid.R {
		if r < 1.0 {
			pair[n] = -1.0
		}
	}

	chi := ExcessCompressibility(grid, []float64{0.5}, c)
	if chi.ExcessReciprocal <= 1 {
		t.Errorf("repulsive c should raise 1/chi above 1, got %g", chi.ExcessReciprocal)
	}
	if chi.Excess >= 1 {
		t.Errorf("repulsive c should lower chi below 1, got %g", chi.Excess)
	}
}

func TestExcessChemicalPotentialZero(t *testing.T) {
	grid := unitGrid(t)
	zero := fluid.NewPairTensor(1, grid.NPoints)

	mu := ExcessChemicalPotential(grid, []float64{0.7}, zero, zero, zero)
	if mu[0] != 0 {
		t.Errorf("ideal gas should have zero excess mu, got %g", mu[0])
	}

	act := ActivityCoefficients(mu)
	if act[0] != 1 {
		t.Errorf("ideal activity coefficient should be 1, got %g", act[0])
	}
}

func TestExcessChemicalPotentialSign(t *testing.T) {
	// Pure repulsion (negative c, h) raises the chemical potential.
	grid := unitGrid(t)
	nc := 1
	h := fluid.NewPairTensor(nc, grid.NPoints)
	e := fluid.NewPairTensor(nc, grid.NPoints)
	c := fluid.NewPairTensor(nc, grid.NPoints)
	for n, r := range grid.R {
		if r < 1.0 {
			h.Set(0, 0, n, -1.0)
			c.Set(0, 0, n, -1.0)
		}
	}

	mu := ExcessChemicalPotential(grid, []float64{0.5}, h, e, c)
	if mu[0] <= 0 {
		t.Errorf("repulsive fluid should have positive excess mu, got %g", mu[0])
	}
}
