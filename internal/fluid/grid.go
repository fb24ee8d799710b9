package fluid

import (
	"fmt"
	"math"
)

// Grid is the uniform radial discretization shared by every tensor in a
// system. Dk is conjugate to Dr through the sine-transform relation
// dk = pi / (n * dr); both point sets start one spacing away from zero.
type Grid struct {
	NPoints int
	Dr      float64
	Dk      float64
	R       []float64
	K       []float64
}

func NewGrid(nPoints int, dr float64) (*Grid, error) {
	if nPoints <= 0 {
		return nil, fmt.Errorf("fluid: grid points must be positive, got %d", nPoints)
	}
	if dr <= 0 {
		return nil, fmt.Errorf("fluid: grid spacing must be positive, got %g", dr)
	}

	dk := math.Pi / (float64(nPoints) * dr)
	g := &Grid{
		NPoints: nPoints,
		Dr:      dr,
		Dk:      dk,
		R:       make([]float64, nPoints),
		K:       make([]float64, nPoints),
	}
	for i := 0; i < nPoints; i++ {
		g.R[i] = float64(i+1) * dr
		g.K[i] = float64(i+1) * dk
	}
	return g, nil
}

// MaxR is the largest tabulated radius.
func (g *Grid) MaxR() float64 {
	return g.R[g.NPoints-1]
}
