package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ozsim/internal/fluid"
)

// minSolveChunk keeps goroutine overhead below the cost of a chunk of
// small dense solves.
const minSolveChunk = 64

// solveOZ solves (I - C_n) H_n = C_n at every reciprocal grid index n and
// writes H into hk. The grid points are independent, so the solves run in
// parallel chunks. A singular or non-finite system fills its k-slice with
// NaN; the NaN reaches the convergence metric and surfaces as divergence
// rather than a distinct error.
func solveOZ(hk, ck *fluid.PairTensor) {
	nc := ck.Components()
	np := ck.Points()

	fluid.ParallelFor(np, minSolveChunk, func(start, end int) {
		a := mat.NewDense(nc, nc, nil)
		b := mat.NewDense(nc, nc, nil)
		var x mat.Dense

		for n := start; n < end; n++ {
			for i := 0; i < nc; i++ {
				for j := 0; j < nc; j++ {
					cv := ck.At(i, j, n)
					b.Set(i, j, cv)
					if i == j {
						a.Set(i, j, 1-cv)
					} else {
						a.Set(i, j, -cv)
					}
				}
			}

			if err := x.Solve(a, b); err != nil {
				for i := 0; i < nc; i++ {
					for j := 0; j < nc; j++ {
						hk.Set(i, j, n, math.NaN())
					}
				}
				continue
			}
			for i := 0; i < nc; i++ {
				for j := 0; j < nc; j++ {
					hk.Set(i, j, n, x.At(i, j))
				}
			}
		}
	})
}

// structureFactor writes S = I + H: identity on the diagonal pairs, the
// bare total correlation off the diagonal.
func structureFactor(sk, hk *fluid.PairTensor) {
	nc := hk.Components()
	np := hk.Points()
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			h := hk.Pair(i, j)
			s := sk.Pair(i, j)
			delta := 0.0
			if i == j {
				delta = 1.0
			}
			for n := 0; n < np; n++ {
				s[n] = delta + h[n]
			}
		}
	}
}

// indirectReciprocal writes E = H - C.
func indirectReciprocal(ek, hk, ck *fluid.PairTensor) {
	e, h, c := ek.Raw(), hk.Raw(), ck.Raw()
	for n := range e {
		e[n] = h[n] - c[n]
	}
}
