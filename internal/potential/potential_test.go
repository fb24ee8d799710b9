package potential

import (
	"math"
	"testing"

	"github.com/san-kum/ozsim/internal/fluid"
)

func TestLennardJonesZeroAtSigma(t *testing.T) {
	p := Params{"epsilon": 1.0, "sigma": 1.0}
	if v := LennardJones(1.0, p); math.Abs(v) > 1e-14 {
		t.Errorf("lj at r=sigma should be 0, got %g", v)
	}
	if v := LennardJones(math.Pow(2, 1.0/6.0), p); math.Abs(v+1.0) > 1e-12 {
		t.Errorf("lj minimum should be -epsilon, got %g", v)
	}
}

func TestWCAZeroBeyondCutoff(t *testing.T) {
	p := Params{"epsilon": 1.0, "sigma": 1.0, "m": 12, "n": 6}
	cut := math.Pow(2, 1.0/6.0)

	if v := WCA(cut+0.01, p); v != 0 {
		t.Errorf("wca beyond cutoff should be 0, got %g", v)
	}
	if v := WCA(cut-1e-9, p); v < 0 {
		t.Errorf("wca is purely repulsive, got %g", v)
	}
	// Shifted core is continuous at the cutoff.
	if v := WCA(cut*(1-1e-9), p); math.Abs(v) > 1e-6 {
		t.Errorf("wca should vanish approaching cutoff, got %g", v)
	}
}

func TestCoulomb(t *testing.T) {
	fn := Coulomb(0.7)
	v := fn(2.0, Params{"q": 9.0})
	want := 0.7 * 9.0 / 2.0
	if math.Abs(v-want) > 1e-14 {
		t.Errorf("got %g, want %g", v, want)
	}
}

func TestCoulombTableOppositeCharges(t *testing.T) {
	tab, err := NewTable(Coulomb(1.0), []string{"q"}, map[string]string{"q": "product"})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	tab.AddComponent(Params{"q": 1.0})
	tab.AddComponent(Params{"q": -1.0})

	fn := Coulomb(1.0)
	if v := fn(2.0, tab.PairParams(0, 0)); math.Abs(v-0.5) > 1e-14 {
		t.Errorf("like pair: got %g, want 0.5", v)
	}
	if v := fn(2.0, tab.PairParams(0, 1)); math.Abs(v+0.5) > 1e-14 {
		t.Errorf("unlike pair should attract: got %g, want -0.5", v)
	}
}

func TestMixingRules(t *testing.T) {
	if v := Arithmetic(1.0, 3.0); v != 2.0 {
		t.Errorf("arithmetic(1,3) = %g", v)
	}
	if v := Geometric(4.0, 9.0); v != 6.0 {
		t.Errorf("geometric(4,9) = %g", v)
	}
	if v := Product(2.0, -3.0); v != -6.0 {
		t.Errorf("product(2,-3) = %g", v)
	}
}

func TestNewTableRejectsUnknownRuleTarget(t *testing.T) {
	_, err := NewTable(LennardJones, []string{"epsilon", "sigma"},
		map[string]string{"charge": "geometric"})
	if err == nil {
		t.Error("expected error for rule on unknown parameter")
	}

	_, err = NewTable(LennardJones, []string{"epsilon", "sigma"},
		map[string]string{"epsilon": "harmonic"})
	if err == nil {
		t.Error("expected error for unknown rule name")
	}
}

func TestTablePairParamsMixed(t *testing.T) {
	tab := NewLennardJones()
	if _, err := tab.AddComponent(Params{"epsilon": 1.0, "sigma": 1.0}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := tab.AddComponent(Params{"epsilon": 4.0, "sigma": 3.0}); err != nil {
		t.Fatalf("add: %v", err)
	}

	cross := tab.PairParams(0, 1)
	if cross["epsilon"] != 2.0 {
		t.Errorf("geometric epsilon: got %g, want 2", cross["epsilon"])
	}
	if cross["sigma"] != 2.0 {
		t.Errorf("arithmetic sigma: got %g, want 2", cross["sigma"])
	}
}

type recordingTarget struct {
	calls [][2]int
	grid  *fluid.Grid
}

func (r *recordingTarget) SetInteraction(i, j int, values []float64, symmetric bool) error {
	if len(values) != r.grid.NPoints {
		return fluid.ErrPointCount
	}
	r.calls = append(r.calls, [2]int{i, j})
	return nil
}

func TestTableApply(t *testing.T) {
	grid, err := fluid.NewGrid(64, 0.05)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	tab := NewLennardJones()
	tab.AddComponent(Params{"epsilon": 1.0, "sigma": 1.0})
	tab.AddComponent(Params{"epsilon": 0.5, "sigma": 1.2})

	target := &recordingTarget{grid: grid}
	if err := tab.Apply(target, grid); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Upper triangle including the diagonal: (0,0), (0,1), (1,1).
	if len(target.calls) != 3 {
		t.Errorf("expected 3 insertions, got %d", len(target.calls))
	}
}

func TestTableApplyEmpty(t *testing.T) {
	grid, _ := fluid.NewGrid(16, 0.1)
	tab := NewLennardJones()
	if err := tab.Apply(&recordingTarget{grid: grid}, grid); err == nil {
		t.Error("expected error for table with no components")
	}
}
