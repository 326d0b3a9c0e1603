package pbr

import "errors"

// Sentinel errors for the pbr package.
var (
	// ErrInvalidArgument indicates a malformed adjacency description: an
	// out-of-range signed entry, mismatched left/right lengths, an
	// out-of-bounds point, or unsorted adjacencies.
	ErrInvalidArgument = errors.New("pbr: invalid argument")

	// ErrMismatchedDegree indicates a product was attempted between PBRs
	// of different degrees.
	ErrMismatchedDegree = errors.New("pbr: mismatched degree")

	// ErrOutOfBounds indicates a point index outside [0, NumberOfPoints())
	// was used with At.
	ErrOutOfBounds = errors.New("pbr: index out of bounds")
)
