package gabow

import "errors"

// ErrOutOfBounds is returned when a node or component index falls outside
// its valid range.
var ErrOutOfBounds = errors.New("gabow: index out of bounds")

// ErrIncomplete is returned by Run (and anything that triggers it) when the
// underlying graph has a node with an undefined out-edge: Gabow's algorithm
// requires every node to have exactly out-degree defined targets.
var ErrIncomplete = errors.New("gabow: graph has undefined targets")
