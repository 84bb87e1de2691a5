// Package geom provides the planar geometry shared by every tour solver:
// the sampled Point type, Euclidean distances, dense distance matrices,
// cyclic tour length and a Prim MST lower bound used as a quality reference.
//
// All functions are deterministic and side-effect free. Distance matrices
// are plain [][]float64 — square, symmetric, non-negative, zero diagonal —
// built once per problem instance and read-only thereafter.
package geom
