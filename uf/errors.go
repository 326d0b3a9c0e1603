package uf

import "errors"

// Sentinel errors for the uf package.
var (
	// ErrOutOfBounds indicates an index outside [0, Size()) was used with
	// Find or Union.
	ErrOutOfBounds = errors.New("uf: index out of bounds")

	// ErrSizeMismatch indicates Join was called on two UnionFind instances
	// of different sizes.
	ErrSizeMismatch = errors.New("uf: size mismatch in join")
)
