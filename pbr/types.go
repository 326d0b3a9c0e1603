// Package pbr implements Partitioned Binary Relations: a degree-n bipartite
// reachability relation stored as 2n sorted adjacency lists, with a product
// defined by alternating reachability DFS over the union of two operands.
package pbr

import "fmt"

// PBR is a binary relation on the 2n points {0, ..., 2n-1} of degree n,
// where points below n are "left" points and points at or above n are
// "right" points. Each point's adjacency list is held in strictly
// ascending order.
type PBR struct {
	adj [][]uint32
}

// Degree returns n, half the number of points.
func (p *PBR) Degree() int { return len(p.adj) / 2 }

// NumberOfPoints returns 2n.
func (p *PBR) NumberOfPoints() int { return len(p.adj) }

// At returns the adjacency list of point i, bounds-checked.
func (p *PBR) At(i int) ([]uint32, error) {
	if i < 0 || i >= len(p.adj) {
		return nil, fmt.Errorf("pbr: At: index %d out of range [0,%d): %w", i, len(p.adj), ErrOutOfBounds)
	}
	return p.adj[i], nil
}

// Adjacency returns the adjacency list of point i without bounds checking.
func (p *PBR) Adjacency(i int) []uint32 { return p.adj[i] }

// Equal reports whether p and other have identical adjacency lists.
func (p *PBR) Equal(other *PBR) bool {
	if len(p.adj) != len(other.adj) {
		return false
	}
	for i := range p.adj {
		if !equalUint32(p.adj[i], other.adj[i]) {
			return false
		}
	}
	return true
}

// Less gives a total order over PBRs of possibly differing degree:
// fewer points first, then lexicographic comparison of adjacency lists.
func (p *PBR) Less(other *PBR) bool {
	if len(p.adj) != len(other.adj) {
		return len(p.adj) < len(other.adj)
	}
	for i := range p.adj {
		if c := compareUint32(p.adj[i], other.adj[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func equalUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func compareUint32(a, b []uint32) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
