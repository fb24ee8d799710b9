package solver

import (
	"time"

	"github.com/san-kum/ozsim/internal/closure"
	"github.com/san-kum/ozsim/internal/fluid"
)

// Solver defaults.
const (
	DefaultClosure   = "hnc"
	DefaultMixParam  = 0.8
	DefaultTolerance = 1e-9
	DefaultMaxIter   = 1000
)

// Observer receives one record per iteration: the iteration index, the
// wall time that iteration took, and the convergence metric. Observers
// must not mutate solver state.
type Observer interface {
	OnIteration(iteration int, elapsed time.Duration, rms float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(iteration int, elapsed time.Duration, rms float64)

func (f ObserverFunc) OnIteration(iteration int, elapsed time.Duration, rms float64) {
	f(iteration, elapsed, rms)
}

// Options control a single solve invocation.
type Options struct {
	// Closure names the registered closure relation. Default "hnc".
	Closure string
	// References supplies the auxiliary fields the closure requires.
	References closure.References
	// MixParam is the Picard damping coefficient in (0, 1]. Default 0.8.
	MixParam float64
	// Tolerance is the RMS convergence threshold. Default 1e-9.
	Tolerance float64
	// MaxIterations bounds the loop. Default 1000.
	MaxIterations int
	// InitialE seeds the indirect correlation; zero tensor when nil.
	InitialE *fluid.PairTensor
	// Observers receive per-iteration progress records.
	Observers []Observer
}

func (o Options) withDefaults() Options {
	if o.Closure == "" {
		o.Closure = DefaultClosure
	}
	if o.MixParam == 0 {
		o.MixParam = DefaultMixParam
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIter
	}
	return o
}
