package potential

import "math"

// Params are the named parameters of one component under a potential.
type Params map[string]float64

// Func evaluates a pair potential at radius r, in thermal-energy units.
type Func func(r float64, p Params) float64

// LennardJones is the 12-6 potential with parameters epsilon and sigma:
//
//	u(r) = 4*eps*((sig/r)^12 - (sig/r)^6)
func LennardJones(r float64, p Params) float64 {
	sr := p["sigma"] / r
	sr6 := sr * sr * sr * sr * sr * sr
	return 4 * p["epsilon"] * (sr6*sr6 - sr6)
}

// WCA is the purely repulsive Weeks-Chandler-Andersen split of the m-n
// potential: the shifted core below the cutoff sig*(m/n)^(1/(m-n)), zero
// beyond. Parameters epsilon, sigma, m, n; m=12, n=6 gives the usual LJ
// core cut at 2^(1/6)*sigma.
func WCA(r float64, p Params) float64 {
	m, n := p["m"], p["n"]
	if m == 0 {
		m = 12
	}
	if n == 0 {
		n = 6
	}
	sig, eps := p["sigma"], p["epsilon"]
	cut := sig * math.Pow(m/n, 1/(m-n))
	if r >= cut {
		return 0
	}
	sr := sig / r
	sr6 := sr * sr * sr * sr * sr * sr
	return 4*eps*(sr6*sr6-sr6) + eps
}

// Coulomb returns the electrostatic pair potential for a given Bjerrum
// length. Components declare their charge as q and the table mixes it
// with the product rule, so the evaluated parameter is the pair's charge
// product and opposite charges give an attractive pair:
//
//	u(r) = bjerrum * q_i*q_j / r
func Coulomb(bjerrum float64) Func {
	return func(r float64, p Params) float64 {
		return bjerrum * p["q"] / r
	}
}

// Tabulate evaluates fn with fixed parameters at every grid radius.
func Tabulate(fn Func, r []float64, p Params) []float64 {
	out := make([]float64, len(r))
	for i, ri := range r {
		out[i] = fn(ri, p)
	}
	return out
}
