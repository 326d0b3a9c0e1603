package wgsources

import "errors"

// ErrOutOfBounds is returned when a node or label index falls outside its
// valid range.
var ErrOutOfBounds = errors.New("wgsources: index out of bounds")

// ErrInvalidState is returned when an operation would violate an
// in-progress invariant, such as SwapNodes touching a node currently
// pinned by an in-progress MergeNodes.
var ErrInvalidState = errors.New("wgsources: invalid state")

// ErrInvalidArgument is returned when a well-typed argument violates a
// precondition, such as MergeNodes requiring min < max.
var ErrInvalidArgument = errors.New("wgsources: invalid argument")
