package pbr

import (
	"fmt"
	"sort"
)

// New wraps adj directly as a PBR of degree len(adj)/2. Callers that cannot
// guarantee adj is well-formed (even length, sorted, in-bounds) should
// follow with Validate.
func New(adj [][]uint32) *PBR { return &PBR{adj: adj} }

// NewEmpty returns the PBR of degree n with every adjacency list empty.
func NewEmpty(n int) *PBR {
	adj := make([][]uint32, 2*n)
	for i := range adj {
		adj[i] = []uint32{}
	}
	return &PBR{adj: adj}
}

// FromLeftRight builds a PBR of degree len(left) from two signed adjacency
// descriptions, one per point. Within a single vec, a positive entry x
// names left point x-1 and a negative entry x names right point n-x-1, so
// callers can write right-hand points in the same natural ascending order
// regardless of sign. left and right must have equal length, and every
// entry must lie in [-n, -1] or [1, n].
func FromLeftRight(left, right [][]int32) (*PBR, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("pbr: FromLeftRight: left has %d entries, right has %d: %w", len(left), len(right), ErrInvalidArgument)
	}
	n := int32(len(left))
	if err := validateSide(left, n, "1st"); err != nil {
		return nil, err
	}
	if err := validateSide(right, n, "2nd"); err != nil {
		return nil, err
	}

	adj := make([][]uint32, 0, 2*len(left))
	adj = append(adj, processSide(left, n)...)
	adj = append(adj, processSide(right, n)...)
	return &PBR{adj: adj}, nil
}

func validateSide(side [][]int32, n int32, position string) error {
	for _, vec := range side {
		for _, x := range vec {
			if x == 0 || x < -n || x > n {
				return fmt.Errorf("pbr: FromLeftRight: value out of bounds in the %s argument, expected values in [-%d, -1] or [1, %d] but found %d: %w", position, n, n, x, ErrInvalidArgument)
			}
		}
	}
	return nil
}

// processSide sorts each adjacency list ascending by signed value, then
// rewrites positive entries x as left point x-1 (kept in ascending order)
// followed by negative entries x as right point n-x-1 (visited from least
// to most negative, which also comes out ascending).
func processSide(side [][]int32, n int32) [][]uint32 {
	out := make([][]uint32, len(side))
	for i, vec := range side {
		sorted := append([]int32(nil), vec...)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })

		v := make([]uint32, 0, len(sorted))
		for _, x := range sorted {
			if x > 0 {
				v = append(v, uint32(x-1))
			}
		}
		for j := len(sorted) - 1; j >= 0; j-- {
			if sorted[j] < 0 {
				v = append(v, uint32(n-sorted[j]-1))
			}
		}
		out[i] = v
	}
	return out
}

// One returns the identity PBR of degree n: left point i is related only to
// right point i+n, and right point i+n only to left point i.
func One(n int) *PBR {
	p := NewEmpty(n)
	for i := 0; i < n; i++ {
		p.adj[i] = append(p.adj[i], uint32(i+n))
		p.adj[i+n] = append(p.adj[i+n], uint32(i))
	}
	return p
}
