package closure

import (
	"math"

	"github.com/san-kum/ozsim/internal/fluid"
)

// HNC is the hypernetted-chain closure:
//
//	c(r) = exp(-u/T + e) - e - 1
type HNC struct{}

func (HNC) Name() string { return "hnc" }

func (HNC) Compute(dst, u, e *fluid.PairTensor, temperature float64) {
	out, uv, ev := dst.Raw(), u.Raw(), e.Raw()
	for n := range out {
		out[n] = math.Exp(-uv[n]/temperature+ev[n]) - ev[n] - 1
	}
}

// PercusYevick is the Percus-Yevick closure:
//
//	c(r) = exp(-u/T) * (1 + e) - e - 1
type PercusYevick struct{}

func (PercusYevick) Name() string { return "py" }

func (PercusYevick) Compute(dst, u, e *fluid.PairTensor, temperature float64) {
	out, uv, ev := dst.Raw(), u.Raw(), e.Raw()
	for n := range out {
		out[n] = math.Exp(-uv[n]/temperature)*(1+ev[n]) - ev[n] - 1
	}
}

// RHNC is the reference hypernetted-chain closure. The bridge function of
// a reference system enters through its pair correlation, indirect
// correlation, and potential:
//
//	c(r) = gRef * exp(-(u-uRef)/T + (e-eRef)) - e - 1
type RHNC struct {
	GRef *fluid.PairTensor
	ERef *fluid.PairTensor
	URef *fluid.PairTensor
}

func (*RHNC) Name() string { return "rhnc" }

func (c *RHNC) Compute(dst, u, e *fluid.PairTensor, temperature float64) {
	out, uv, ev := dst.Raw(), u.Raw(), e.Raw()
	gr, er, ur := c.GRef.Raw(), c.ERef.Raw(), c.URef.Raw()
	for n := range out {
		du := uv[n] - ur[n]
		de := ev[n] - er[n]
		out[n] = gr[n]*math.Exp(-du/temperature+de) - ev[n] - 1
	}
}
