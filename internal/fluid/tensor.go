package fluid

import "math"

// PairTensor is a dense (components, components, points) array of radial
// functions, one per ordered component pair, backed by a single slice.
type PairTensor struct {
	nc   int
	np   int
	data []float64
}

func NewPairTensor(components, points int) *PairTensor {
	return &PairTensor{
		nc:   components,
		np:   points,
		data: make([]float64, components*components*points),
	}
}

func (t *PairTensor) Components() int { return t.nc }
func (t *PairTensor) Points() int     { return t.np }

// Pair returns the radial function for pair (i, j) as a view into the
// backing slice. Writes through the returned slice mutate the tensor.
func (t *PairTensor) Pair(i, j int) []float64 {
	off := (i*t.nc + j) * t.np
	return t.data[off : off+t.np]
}

func (t *PairTensor) At(i, j, n int) float64 {
	return t.data[(i*t.nc+j)*t.np+n]
}

func (t *PairTensor) Set(i, j, n int, v float64) {
	t.data[(i*t.nc+j)*t.np+n] = v
}

// SetPair copies values into slot (i, j).
func (t *PairTensor) SetPair(i, j int, values []float64) {
	copy(t.Pair(i, j), values)
}

func (t *PairTensor) Clone() *PairTensor {
	c := NewPairTensor(t.nc, t.np)
	copy(c.data, t.data)
	return c
}

// CopyFrom overwrites this tensor with src. Shapes must match.
func (t *PairTensor) CopyFrom(src *PairTensor) {
	copy(t.data, src.data)
}

func (t *PairTensor) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Grown returns a new tensor with the given component count, preserving
// every previously stored pair and zero-filling the new slots.
func (t *PairTensor) Grown(components int) *PairTensor {
	g := NewPairTensor(components, t.np)
	for i := 0; i < t.nc; i++ {
		for j := 0; j < t.nc; j++ {
			copy(g.Pair(i, j), t.Pair(i, j))
		}
	}
	return g
}

// IsFinite reports whether every entry is a finite number.
func (t *PairTensor) IsFinite() bool {
	for _, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Min returns the smallest entry. Zero-size tensors return 0.
func (t *PairTensor) Min() float64 {
	if len(t.data) == 0 {
		return 0
	}
	min := t.data[0]
	for _, v := range t.data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Raw exposes the backing slice for metric computations that fold over
// every entry regardless of pair structure.
func (t *PairTensor) Raw() []float64 { return t.data }
