package forest

import "errors"

// Sentinel errors for the forest package.
var (
	// ErrOutOfBounds indicates a node index outside [0, Size()).
	ErrOutOfBounds = errors.New("forest: node out of bounds")

	// ErrSelfParent indicates an attempt to set a node as its own parent.
	ErrSelfParent = errors.New("forest: node cannot be its own parent")

	// ErrNotAcyclic indicates a checked edit would close a cycle.
	ErrNotAcyclic = errors.New("forest: edit would close a cycle")
)
