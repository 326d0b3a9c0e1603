package uf

import (
	"fmt"
	"sort"
)

// Find returns the canonical representative of i's class, compressing the
// path from i to the root as a side effect.
//
// Complexity: amortised near-constant.
func (u *UnionFind) Find(i int) (int, error) {
	if i < 0 || i >= len(u.parent) {
		return 0, fmt.Errorf("uf: Find(%d): %w", i, ErrOutOfBounds)
	}
	return u.find(i), nil
}

// find is the unchecked, internal path-compressing lookup.
func (u *UnionFind) find(i int) int {
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// path compression: point every visited node directly at root.
	for u.parent[i] != root {
		u.parent[i], i = root, u.parent[i]
	}
	return root
}

// Union merges the classes of i and j. The smaller representative wins and
// becomes the root of the combined class.
//
// Complexity: amortised near-constant.
func (u *UnionFind) Union(i, j int) error {
	if i < 0 || i >= len(u.parent) {
		return fmt.Errorf("uf: Union(%d, %d): %w", i, j, ErrOutOfBounds)
	}
	if j < 0 || j >= len(u.parent) {
		return fmt.Errorf("uf: Union(%d, %d): %w", i, j, ErrOutOfBounds)
	}
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return nil
	}
	if ri < rj {
		u.parent[rj] = ri
	} else {
		u.parent[ri] = rj
	}
	u.blocksValid = false
	return nil
}

// Normalize rewrites every entry to point directly at its representative.
// After Normalize, parent[i] == Find(i) for every i. Idempotent.
func (u *UnionFind) Normalize() {
	for i := range u.parent {
		u.parent[i] = u.find(i)
	}
}

// NumberOfBlocks returns the number of distinct classes.
func (u *UnionFind) NumberOfBlocks() int {
	if len(u.parent) == 0 {
		return 0
	}
	seen := make(map[int]struct{}, len(u.parent))
	for i := range u.parent {
		seen[u.find(i)] = struct{}{}
	}
	return len(seen)
}

// AddEntry appends a new singleton class {n}, where n is the current Size().
//
// Complexity: O(1) amortised.
func (u *UnionFind) AddEntry() {
	n := len(u.parent)
	u.parent = append(u.parent, n)
	u.blocksValid = false
}

// Blocks returns the block decomposition as a slice of ascending-index
// slices, one per class, ordered by ascending representative. The result is
// cached lazily; any Union or AddEntry call since the last computation
// invalidates the cache and triggers a recompute on the next call.
func (u *UnionFind) Blocks() [][]int {
	if u.blocksValid {
		return u.blocks
	}
	byRep := make(map[int][]int)
	reps := make([]int, 0)
	for i := range u.parent {
		r := u.find(i)
		if _, ok := byRep[r]; !ok {
			reps = append(reps, r)
		}
		byRep[r] = append(byRep[r], i)
	}
	sort.Ints(reps)
	blocks := make([][]int, len(reps))
	for idx, r := range reps {
		blocks[idx] = byRep[r]
	}
	u.blocks, u.blocksValid = blocks, true
	return blocks
}

// Join forms the finest common coarsening of u and other: for every i,
// unites u's class of i with other's class of i. Requires u.Size() ==
// other.Size().
func (u *UnionFind) Join(other *UnionFind) error {
	if u.Size() != other.Size() {
		return fmt.Errorf("uf: Join: sizes %d and %d: %w", u.Size(), other.Size(), ErrSizeMismatch)
	}
	for i := 0; i < u.Size(); i++ {
		// Unite i's class with the class of other's representative for i,
		// using other's representative as a stable proxy for its block.
		if err := u.Union(i, other.find(i)); err != nil {
			return err
		}
	}
	return nil
}

// ResetNextRep prepares NextRep to yield every representative in ascending
// order exactly once.
func (u *UnionFind) ResetNextRep() {
	seen := make(map[int]struct{})
	order := make([]int, 0)
	for i := range u.parent {
		r := u.find(i)
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			order = append(order, r)
		}
	}
	sort.Ints(order)
	u.nextRepOrder = order
	u.nextRepPos = 0
}

// NextRep yields the next representative in ascending order, following a
// call to ResetNextRep. ok is false once every representative has been
// yielded (the "exhausted" sentinel).
func (u *UnionFind) NextRep() (rep int, ok bool) {
	if u.nextRepPos >= len(u.nextRepOrder) {
		return 0, false
	}
	rep = u.nextRepOrder[u.nextRepPos]
	u.nextRepPos++
	return rep, true
}
