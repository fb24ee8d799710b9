// Package potential tabulates closed-form pair potentials over a radial
// grid and builds the full component-pair matrix from per-component
// parameters and mixing rules.
package potential

import "math"

// MixingRule combines a parameter of two components into the cross value.
type MixingRule func(a, b float64) float64

func Arithmetic(a, b float64) float64 { return 0.5 * (a + b) }
func Geometric(a, b float64) float64  { return math.Sqrt(a * b) }
func Product(a, b float64) float64    { return a * b }

// Rules maps rule names usable in configuration files.
var Rules = map[string]MixingRule{
	"arithmetic": Arithmetic,
	"geometric":  Geometric,
	"product":    Product,
}
