package wordgraph

import "errors"

// Sentinel errors for the wordgraph package.
var (
	// ErrOutOfBounds indicates a node or label index outside its valid range.
	ErrOutOfBounds = errors.New("wordgraph: index out of bounds")

	// ErrInvalidArgument indicates a well-typed argument that violates a
	// precondition, e.g. a non-positive node count passed to Random.
	ErrInvalidArgument = errors.New("wordgraph: invalid argument")

	// ErrMismatch indicates two word graphs expected to share a dimension
	// (out-degree) do not.
	ErrMismatch = errors.New("wordgraph: dimension mismatch")
)
