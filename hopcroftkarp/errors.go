package hopcroftkarp

import "errors"

// ErrMismatch is returned when x and y do not share the same out-degree.
var ErrMismatch = errors.New("hopcroftkarp: out-degree mismatch")

// ErrOutOfBounds is returned when a root node is invalid for its graph.
var ErrOutOfBounds = errors.New("hopcroftkarp: root out of bounds")
