package pbr

import "fmt"

// ValidateEvenLength reports whether x has an even number of points.
func ValidateEvenLength(x *PBR) error {
	if x.NumberOfPoints()%2 != 0 {
		return fmt.Errorf("pbr: expected argument of even length, found %d: %w", x.NumberOfPoints(), ErrInvalidArgument)
	}
	return nil
}

// ValidateEntriesInBounds reports whether every adjacency entry of x names
// a point within [0, NumberOfPoints()).
func ValidateEntriesInBounds(x *PBR) error {
	n := x.NumberOfPoints()
	for u := 0; u < n; u++ {
		for _, v := range x.adj[u] {
			if int(v) >= n {
				return fmt.Errorf("pbr: entry out of bounds, point %d is adjacent to %d, should be less than %d: %w", u, v, n, ErrInvalidArgument)
			}
		}
	}
	return nil
}

// ValidateAdjacenciesSorted reports whether every adjacency list of x is in
// strictly ascending order.
func ValidateAdjacenciesSorted(x *PBR) error {
	n := x.NumberOfPoints()
	for u := 0; u < n; u++ {
		adj := x.adj[u]
		for i := 1; i < len(adj); i++ {
			if adj[i-1] >= adj[i] {
				return fmt.Errorf("pbr: the adjacencies of point %d are unsorted: %w", u, ErrInvalidArgument)
			}
		}
	}
	return nil
}

// Validate composes ValidateEvenLength, ValidateEntriesInBounds, and
// ValidateAdjacenciesSorted.
func Validate(x *PBR) error {
	if err := ValidateEvenLength(x); err != nil {
		return err
	}
	if err := ValidateEntriesInBounds(x); err != nil {
		return err
	}
	return ValidateAdjacenciesSorted(x)
}
