package potential

import (
	"fmt"
	"sort"

	"github.com/san-kum/ozsim/internal/fluid"
)

// Target accepts tabulated pair potentials; solver.System satisfies it.
type Target interface {
	SetInteraction(i, j int, values []float64, symmetric bool) error
}

// Table builds the full pair matrix of one potential family from
// per-component parameters. Cross pairs take their parameters from the
// mixing rules; parameters without a rule make unrelated components
// non-interacting under this potential, as in the usual convention.
type Table struct {
	fn    Func
	names []string
	rules map[string]MixingRule
	comps []Params
}

// NewTable creates a table for fn with the given parameter names and
// rule assignment (parameter name -> rule name).
func NewTable(fn Func, paramNames []string, ruleNames map[string]string) (*Table, error) {
	known := make(map[string]bool, len(paramNames))
	for _, n := range paramNames {
		known[n] = true
	}

	rules := make(map[string]MixingRule)
	for parm, ruleName := range ruleNames {
		if !known[parm] {
			valid := append([]string(nil), paramNames...)
			sort.Strings(valid)
			return nil, fmt.Errorf("potential: mixing rule for unknown parameter %q, valid are %v", parm, valid)
		}
		rule, ok := Rules[ruleName]
		if !ok {
			return nil, fmt.Errorf("potential: unknown mixing rule %q", ruleName)
		}
		rules[parm] = rule
	}

	return &Table{fn: fn, names: paramNames, rules: rules}, nil
}

// NewLennardJones is a Table over the 12-6 potential with the
// Lorentz-Berthelot rules (geometric epsilon, arithmetic sigma).
func NewLennardJones() *Table {
	t, _ := NewTable(LennardJones, []string{"epsilon", "sigma"},
		map[string]string{"epsilon": "geometric", "sigma": "arithmetic"})
	return t
}

// NewWCA is a Table over the WCA core with Lorentz-Berthelot rules.
func NewWCA() *Table {
	t, _ := NewTable(WCA, []string{"epsilon", "sigma", "m", "n"},
		map[string]string{"epsilon": "geometric", "sigma": "arithmetic"})
	return t
}

// AddComponent registers one component's parameters and returns its
// index. Omitted parameters default to zero; unknown ones are rejected.
func (t *Table) AddComponent(p Params) (int, error) {
	for name := range p {
		found := false
		for _, known := range t.names {
			if name == known {
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("potential: unknown parameter %q, requires %v", name, t.names)
		}
	}
	t.comps = append(t.comps, p)
	return len(t.comps) - 1, nil
}

// PairParams returns the mixed parameter set for components (i, j). The
// rules apply on the diagonal too, so the product rule yields q^2 there;
// cross pairs with no mixing rule for a parameter get zero, while
// diagonal pairs keep the component's own value.
func (t *Table) PairParams(i, j int) Params {
	mixed := make(Params, len(t.names))
	for _, name := range t.names {
		if rule, ok := t.rules[name]; ok {
			mixed[name] = rule(t.comps[i][name], t.comps[j][name])
		} else if i == j {
			mixed[name] = t.comps[i][name]
		}
	}
	return mixed
}

// Apply tabulates every pair over the grid and installs the results on the
// target via its symmetric insertion contract.
func (t *Table) Apply(target Target, grid *fluid.Grid) error {
	nc := len(t.comps)
	if nc == 0 {
		return fmt.Errorf("potential: no components added")
	}
	for i := 0; i < nc; i++ {
		for j := i; j < nc; j++ {
			values := Tabulate(t.fn, grid.R, t.PairParams(i, j))
			if err := target.SetInteraction(i, j, values, true); err != nil {
				return err
			}
		}
	}
	return nil
}
