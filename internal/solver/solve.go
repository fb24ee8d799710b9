package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/ozsim/internal/closure"
	"github.com/san-kum/ozsim/internal/fluid"
	"github.com/san-kum/ozsim/internal/transform"
)

// Solve runs the OZ fixed-point iteration for the given per-component
// number densities. Configuration problems (no interactions, density count
// mismatch, unknown closure, missing references, bad mixing coefficient)
// fail before the first iteration. Inside the loop the only loop-carried
// state is the indirect correlation, double-buffered between the previous
// and candidate tensors; the context is checked once per iteration.
//
// Convergence is judged on the indirect correlation alone. After the loop
// accepts, the closure is evaluated one final time on the converged e to
// derive c, then g = c + e + 1 and h = g - 1; the structure factor is
// taken from the last loop iteration and checked for negative entries.
func (s *System) Solve(ctx context.Context, rhos []float64, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	nc := s.interactions.Components()
	if nc == 0 {
		return nil, fluid.ErrNoInteractions
	}
	if len(rhos) != nc {
		return nil, fmt.Errorf("%w: %d densities for %d components",
			fluid.ErrDensityCount, len(rhos), nc)
	}
	if opts.MixParam <= 0 || opts.MixParam > 1 {
		return nil, fmt.Errorf("fluid: mix parameter must be in (0, 1], got %g", opts.MixParam)
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("fluid: tolerance must be positive, got %g", opts.Tolerance)
	}
	if opts.MaxIterations <= 0 {
		return nil, fmt.Errorf("fluid: max iterations must be positive, got %d", opts.MaxIterations)
	}

	cl, err := closure.New(opts.Closure, opts.References)
	if err != nil {
		return nil, err
	}

	grid := s.grid
	u := s.interactions.Tensor()
	rho := densityMatrix(rhos)
	tr := transform.NewRadial(grid)

	eOld := fluid.NewPairTensor(nc, grid.NPoints)
	if opts.InitialE != nil {
		if opts.InitialE.Components() != nc || opts.InitialE.Points() != grid.NPoints {
			return nil, fmt.Errorf("%w: initial guess shaped (%d,%d), want (%d,%d)",
				fluid.ErrPointCount, opts.InitialE.Components(), opts.InitialE.Points(),
				nc, grid.NPoints)
		}
		eOld.CopyFrom(opts.InitialE)
	}

	c := fluid.NewPairTensor(nc, grid.NPoints)
	ck := fluid.NewPairTensor(nc, grid.NPoints)
	hk := fluid.NewPairTensor(nc, grid.NPoints)
	ek := fluid.NewPairTensor(nc, grid.NPoints)
	sk := fluid.NewPairTensor(nc, grid.NPoints)
	eNew := fluid.NewPairTensor(nc, grid.NPoints)

	result := &Result{Grid: grid}
	start := time.Now()
	converged := false

	var iter int
	for iter = 1; iter <= opts.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			result.Iterations = iter - 1
			result.Elapsed = time.Since(start)
			s.attachDiagnostics(result, c, eNew, sk)
			return result, ctx.Err()
		default:
		}
		iterStart := time.Now()

		cl.Compute(c, u, eOld, s.temperature)
		tr.Forward(ck, c, rho)
		solveOZ(hk, ck)
		structureFactor(sk, hk)
		indirectReciprocal(ek, hk, ck)
		tr.Inverse(eNew, ek, rho)

		rms := rmsNormed(eNew.Raw(), eOld.Raw())
		for _, obs := range opts.Observers {
			obs.OnIteration(iter, time.Since(iterStart), rms)
		}

		if math.IsNaN(rms) || math.IsInf(rms, 0) {
			result.Iterations = iter
			result.FinalRMS = rms
			result.Elapsed = time.Since(start)
			s.attachDiagnostics(result, c, eNew, sk)
			return result, &fluid.SolveError{Iteration: iter, RMS: rms, Wrapped: fluid.ErrDiverged}
		}
		result.FinalRMS = rms

		if rms < opts.Tolerance {
			// The candidate is accepted as-is; no mixing on the final value.
			converged = true
			break
		}

		picardMix(eOld.Raw(), eNew.Raw(), opts.MixParam)
	}

	if !converged {
		result.Iterations = opts.MaxIterations
		result.Elapsed = time.Since(start)
		s.attachDiagnostics(result, c, eNew, sk)
		return result, &fluid.SolveError{
			Iteration: opts.MaxIterations,
			RMS:       result.FinalRMS,
			Wrapped:   fluid.ErrMaxIterations,
		}
	}

	result.Iterations = iter
	result.Elapsed = time.Since(start)

	// Final closure pass on the converged indirect correlation; g and h
	// are derived once, after the fact.
	e := eNew
	cl.Compute(c, u, e, s.temperature)
	g := fluid.NewPairTensor(nc, grid.NPoints)
	h := fluid.NewPairTensor(nc, grid.NPoints)
	gv, hv, cv, ev := g.Raw(), h.Raw(), c.Raw(), e.Raw()
	for n := range gv {
		gv[n] = cv[n] + ev[n] + 1
		hv[n] = gv[n] - 1
	}

	result.G = g
	result.H = h
	result.C = c.Clone()
	result.E = e.Clone()
	result.S = sk.Clone()

	if result.S.Min() < 0 {
		return result, &fluid.SolveError{
			Iteration: iter,
			RMS:       result.FinalRMS,
			Wrapped:   fluid.ErrUnphysical,
		}
	}

	result.Converged = true
	return result, nil
}

// attachDiagnostics exposes the last computed intermediates on a failed
// result so callers can inspect where the iteration went wrong.
func (s *System) attachDiagnostics(result *Result, c, e, sk *fluid.PairTensor) {
	result.C = c.Clone()
	result.E = e.Clone()
	result.S = sk.Clone()
}
