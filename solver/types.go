package solver

import "errors"

// Solution holds the outcome of an exact solve: the optimal tour as an open
// permutation of [0, n) and its total cyclic cost.
type Solution struct {
	Tour []int
	Cost float64
}

// ErrExactInfeasible is returned by SolveExact for instances larger than
// MaxExactSize. The O(2ⁿ·n) Held–Karp table makes anything beyond that a
// memory problem, not a patience problem, so the dispatcher refuses rather
// than attempts.
var ErrExactInfeasible = errors.New("solver: exact solve infeasible for this size")

// ErrDimensionMismatch is returned when a matrix is not square or a tour
// does not match the matrix order.
var ErrDimensionMismatch = errors.New("solver: dimension mismatch")

// ErrIncompleteGraph is returned when no Hamiltonian cycle exists because
// some required edge is missing (infinite distance).
var ErrIncompleteGraph = errors.New("solver: incomplete distance matrix")

// ErrStartOutOfRange is returned when a requested start city is outside
// [0, n).
var ErrStartOutOfRange = errors.New("solver: start city out of range")

// ErrInvalidTour is returned by ValidateTour when a tour is not a
// permutation of [0, n).
var ErrInvalidTour = errors.New("solver: tour is not a permutation")
