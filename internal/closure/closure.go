// Package closure provides the approximate relations that close the OZ
// equation, mapping (potential, indirect correlation, temperature) to the
// direct correlation. Variants are looked up by name through [New]; each
// variant declares the reference fields it needs, and validation happens
// once at lookup, before the solver loop starts.
package closure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/ozsim/internal/fluid"
)

// Closure maps potential and indirect correlation to direct correlation.
// Implementations are pure: no state is retained between calls.
type Closure interface {
	Name() string
	// Compute writes c into dst. All tensors share one shape; dst must not
	// alias u or e.
	Compute(dst, u, e *fluid.PairTensor, temperature float64)
}

// References holds the named auxiliary fields a closure variant may
// require, e.g. the reference-system correlations for RHNC.
type References map[string]*fluid.PairTensor

// Reference field names.
const (
	RefPairCorrelation = "g_ref"
	RefIndirect        = "e_ref"
	RefPotential       = "u_ref"
)

type builder struct {
	required []string
	build    func(refs References) Closure
}

var registry = map[string]builder{
	"hnc": {
		build: func(References) Closure { return HNC{} },
	},
	"py": {
		build: func(References) Closure { return PercusYevick{} },
	},
	"rhnc": {
		required: []string{RefPairCorrelation, RefIndirect, RefPotential},
		build: func(r References) Closure {
			return &RHNC{
				GRef: r[RefPairCorrelation],
				ERef: r[RefIndirect],
				URef: r[RefPotential],
			}
		},
	},
}

// New resolves a closure by case-insensitive name and validates that every
// reference field the variant requires is present.
func New(name string, refs References) (Closure, error) {
	b, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", fluid.ErrUnknownClosure, name)
	}
	for _, req := range b.required {
		if refs[req] == nil {
			return nil, fmt.Errorf("%w: closure %q requires %q",
				fluid.ErrMissingReference, name, req)
		}
	}
	return b.build(refs), nil
}

// Names lists the registered closures.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
