// Package fluid holds the shared data model for the Ornstein-Zernike
// solver: the radial discretization grid, dense per-pair tensors over that
// grid, the interaction container, and the domain error set.
//
// A [Grid] is immutable after construction and safe to share read-only.
// A [PairTensor] stores one radial function per ordered component pair.
// [Interactions] wraps the potential-energy tensor and grows it on demand
// when a new component index is referenced.
package fluid
