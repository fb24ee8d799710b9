package fluid

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrNoInteractions indicates a solve on a system with no potentials set.
	ErrNoInteractions = errors.New("fluid: no interactions defined")

	// ErrDensityCount indicates the density list does not match the
	// component count of the interaction tensor.
	ErrDensityCount = errors.New("fluid: density count does not match components")

	// ErrPointCount indicates a tabulated function with the wrong length
	// for the grid.
	ErrPointCount = errors.New("fluid: point count does not match grid")

	// ErrUnknownClosure indicates an unregistered closure name.
	ErrUnknownClosure = errors.New("fluid: unsupported closure")

	// ErrMissingReference indicates a closure reference field required by
	// the selected closure was not supplied.
	ErrMissingReference = errors.New("fluid: missing closure reference")

	// ErrDiverged indicates the convergence metric became NaN or infinite.
	ErrDiverged = errors.New("fluid: iteration diverged")

	// ErrMaxIterations indicates the iteration budget ran out before the
	// tolerance was reached.
	ErrMaxIterations = errors.New("fluid: exceeded max iterations")

	// ErrUnphysical indicates a numerically converged solution with a
	// negative structure factor.
	ErrUnphysical = errors.New("fluid: converged to unphysical result")

	// ErrNotSupported marks operations that are intentionally absent.
	ErrNotSupported = errors.New("fluid: operation not supported")
)

// SolveError wraps a terminal solver error with loop context.
type SolveError struct {
	Iteration int
	RMS       float64
	Wrapped   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (iteration %d, rms %.3e)", e.Wrapped, e.Iteration, e.RMS)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
