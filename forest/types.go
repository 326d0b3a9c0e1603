// Package forest implements a rooted forest over the node universe [0, n):
// each node carries a parent pointer and the label of the edge from its
// parent, with cycle-checked edits and amortised path-to/from-root queries.
//
// Forest is not safe for concurrent use.
package forest

import "github.com/arvel-sg/semicore/constants"

// Forest is a rooted forest over [0, n). A node v is a root iff
// Parent(v) == constants.Undefined, in which case Label(v) is also
// constants.Undefined.
//
// Depth is not cached: a node's ancestor chain can change on any
// reparenting (SetParentAndLabel/SetParentAndLabelNoChecks explicitly
// allow reassigning an existing node's parent, subject only to the cycle
// check), and invalidating a cached depth correctly would require tracking
// every descendant of the reparented node. Forest has no children index to
// do that walk with, so Depth simply recomputes from the parent chain on
// every call.
type Forest struct {
	parent []uint32
	label  []uint32
}

// New returns a Forest of n roots.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]uint32, n),
		label:  make([]uint32, n),
	}
	for i := range f.parent {
		f.parent[i] = constants.Undefined
		f.label[i] = constants.Undefined
	}
	return f
}

// Size returns the number of nodes in the forest.
func (f *Forest) Size() int { return len(f.parent) }

// AddNodes appends k new roots to the forest.
func (f *Forest) AddNodes(k int) {
	for i := 0; i < k; i++ {
		f.parent = append(f.parent, constants.Undefined)
		f.label = append(f.label, constants.Undefined)
	}
}

// Parent returns the parent of v, or constants.Undefined if v is a root.
func (f *Forest) Parent(v uint32) uint32 { return f.parent[v] }

// Label returns the label of the edge from Parent(v) to v, or
// constants.Undefined if v is a root.
func (f *Forest) Label(v uint32) uint32 { return f.label[v] }
