// Package scatter generates reproducible random problem instances for the
// capacity benchmark: points sampled on a normalized grid inside a disc
// centered in the unit square, with polar angles precomputed.
//
// Reproducibility is the whole point of this package. Generation is driven
// by a small linear congruential generator with fixed constants, so the
// instance produced for a given (n, gridSize, seed) triple is identical
// across runs and across platforms. Stochastic solvers keep their own RNG
// state; only instance sampling is pinned down here.
package scatter
