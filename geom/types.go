package geom

import "errors"

// ErrNonSquare is returned when a distance matrix is not n×n.
var ErrNonSquare = errors.New("geom: matrix is not square")

// ErrMalformedCoordinate is returned by BuildDistanceMatrix when a point
// carries a NaN or infinite coordinate. Malformed geometry is a fatal
// precondition violation: it must be rejected at construction time rather
// than allowed to corrupt downstream float comparisons.
var ErrMalformedCoordinate = errors.New("geom: non-finite point coordinate")

// ErrDisconnected is returned by MSTLowerBound when the matrix admits no
// spanning tree (some vertex is unreachable through finite edges).
var ErrDisconnected = errors.New("geom: matrix does not admit a spanning tree")
