package fluid

import "fmt"

// Interactions stores the pairwise potential-energy tensor U for a system.
// The component count is derived from the tensor extent and only grows:
// referencing a component index beyond the current extent resizes the
// tensor, preserving stored pairs and zero-filling the rest.
type Interactions struct {
	grid *Grid
	u    *PairTensor
}

func NewInteractions(grid *Grid) *Interactions {
	return &Interactions{
		grid: grid,
		u:    NewPairTensor(0, grid.NPoints),
	}
}

func (in *Interactions) Components() int { return in.u.Components() }

// Tensor returns the potential tensor. Read-only during a solve.
func (in *Interactions) Tensor() *PairTensor { return in.u }

// Set writes a tabulated potential into slot (i, j), growing the tensor if
// either index exceeds the current component count. With symmetric set the
// values are mirrored into (j, i).
func (in *Interactions) Set(i, j int, values []float64, symmetric bool) error {
	if len(values) != in.grid.NPoints {
		return fmt.Errorf("%w: potential has %d points, grid has %d",
			ErrPointCount, len(values), in.grid.NPoints)
	}
	need := max(i, j) + 1
	if need > in.u.Components() {
		in.u = in.u.Grown(need)
	}
	in.u.SetPair(i, j, values)
	if symmetric && i != j {
		in.u.SetPair(j, i, values)
	}
	return nil
}

// Remove is intentionally absent: shrinking the component set would
// renumber every remaining pair.
func (in *Interactions) Remove(i, j int) error {
	return fmt.Errorf("%w: removing interaction (%d,%d)", ErrNotSupported, i, j)
}
