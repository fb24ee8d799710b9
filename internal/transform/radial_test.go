package transform

import (
	"math"
	"testing"

	"github.com/san-kum/ozsim/internal/fluid"
)

func TestDSTIMatchesDirectSum(t *testing.T) {
	x := []float64{0.3, -1.2, 0.8, 2.1, -0.5, 0.05, 1.7}
	n := len(x)

	got := DSTI(x)

	for k := 0; k < n; k++ {
		want := 0.0
		for i := 0; i < n; i++ {
			want += 2 * x[i] * math.Sin(math.Pi*float64(i+1)*float64(k+1)/float64(n+1))
		}
		if math.Abs(got[k]-want) > 1e-12 {
			t.Errorf("bin %d: got %.15f, want %.15f", k, got[k], want)
		}
	}
}

func TestDSTISelfInverse(t *testing.T) {
	x := []float64{1.0, 0.5, -0.25, 0.125, 2.0, -1.5}
	n := len(x)

	back := DSTI(DSTI(x))

	// DST-I composed with itself scales by 2(N+1).
	scale := 2 * float64(n+1)
	for i := range x {
		if math.Abs(back[i]/scale-x[i]) > 1e-12 {
			t.Errorf("index %d: got %.15f, want %.15f", i, back[i]/scale, x[i])
		}
	}
}

func TestRadialRoundTrip(t *testing.T) {
	grid, err := fluid.NewGrid(511, 0.02)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	rho := [][]float64{{0.65}}
	f := fluid.NewPairTensor(1, grid.NPoints)
	in := f.Pair(0, 0)
	for n, r := range grid.R {
		in[n] = math.Exp(-(r - 3.0) * (r - 3.0))
	}

	tr := NewRadial(grid)
	fk := fluid.NewPairTensor(1, grid.NPoints)
	fr := fluid.NewPairTensor(1, grid.NPoints)

	tr.Forward(fk, f, rho)
	tr.Inverse(fr, fk, rho)

	out := fr.Pair(0, 0)
	for n := range in {
		if math.Abs(out[n]-in[n]) > 1e-9 {
			t.Fatalf("round trip diverged at r=%.3f: got %.12f, want %.12f",
				grid.R[n], out[n], in[n])
		}
	}
}

func TestRadialRoundTripMultiComponent(t *testing.T) {
	grid, err := fluid.NewGrid(255, 0.05)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	rho := [][]float64{
		{0.4, math.Sqrt(0.4 * 0.1)},
		{math.Sqrt(0.4 * 0.1), 0.1},
	}

	f := fluid.NewPairTensor(2, grid.NPoints)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			pair := f.Pair(i, j)
			for n, r := range grid.R {
				pair[n] = math.Sin(r*float64(i+1)) * math.Exp(-0.5*r) / float64(j+1)
			}
		}
	}

	tr := NewRadial(grid)
	fk := fluid.NewPairTensor(2, grid.NPoints)
	fr := fluid.NewPairTensor(2, grid.NPoints)

	tr.Forward(fk, f, rho)
	tr.Inverse(fr, fk, rho)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			in, out := f.Pair(i, j), fr.Pair(i, j)
			for n := range in {
				if math.Abs(out[n]-in[n]) > 1e-9 {
					t.Fatalf("pair (%d,%d) diverged at point %d: got %g, want %g",
						i, j, n, out[n], in[n])
				}
			}
		}
	}
}
