package finitegraph

import "errors"

// ErrEmptyVertexSet indicates a FiniteGraph was constructed with n <= 0.
var ErrEmptyVertexSet = errors.New("finitegraph: vertex set is empty")

// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, n).
var ErrVertexOutOfRange = errors.New("finitegraph: vertex index out of range")
