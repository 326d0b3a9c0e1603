package paths

import "errors"

// ErrOutOfBounds is returned when a source or target node is invalid for
// its graph.
var ErrOutOfBounds = errors.New("paths: index out of bounds")

// ErrInvalidArgument is returned when a well-typed argument violates a
// precondition, such as min > max.
var ErrInvalidArgument = errors.New("paths: invalid argument")
