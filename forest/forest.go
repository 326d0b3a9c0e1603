package forest

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// SetParentAndLabel defines v's parent as p with incoming edge label g.
// Fails with ErrOutOfBounds if v or p is out of range, ErrSelfParent if
// v == p, or ErrNotAcyclic if the assignment would close a cycle (p is a
// descendant of v, or p == v transitively through existing parent links).
func (f *Forest) SetParentAndLabel(v, p, g uint32) error {
	if err := f.validateNode(v); err != nil {
		return err
	}
	if err := f.validateNode(p); err != nil {
		return err
	}
	if v == p {
		return fmt.Errorf("forest: SetParentAndLabel(%d, %d): %w", v, p, ErrSelfParent)
	}
	// Cycle check: the new parent chain is v -> p -> ... Reject if v is
	// reachable from p by walking existing parent pointers, since that would
	// close a cycle once v -> p is installed.
	for cur := p; cur != constants.Undefined; cur = f.parent[cur] {
		if cur == v {
			return fmt.Errorf("forest: SetParentAndLabel(%d, %d): %w", v, p, ErrNotAcyclic)
		}
	}
	f.setParentAndLabelNoChecks(v, p, g)
	return nil
}

// SetParentAndLabelNoChecks is the unchecked variant of SetParentAndLabel: it
// performs none of the out-of-range, self-parent, or cycle checks. The
// caller is responsible for the forest's acyclicity invariant.
func (f *Forest) SetParentAndLabelNoChecks(v, p, g uint32) {
	f.setParentAndLabelNoChecks(v, p, g)
}

func (f *Forest) setParentAndLabelNoChecks(v, p, g uint32) {
	f.parent[v] = p
	f.label[v] = g
}

func (f *Forest) validateNode(v uint32) error {
	if int(v) >= len(f.parent) {
		return fmt.Errorf("forest: node %d: %w", v, ErrOutOfBounds)
	}
	return nil
}

// PathToRoot returns the sequence of edge labels from v up to its root,
// i.e. Label(v), Label(Parent(v)), ..., down to the root's incoming edge
// (which does not exist, so the sequence stops one short of the root).
func (f *Forest) PathToRoot(v uint32) ([]uint32, error) {
	if err := f.validateNode(v); err != nil {
		return nil, err
	}
	var out []uint32
	for cur := v; f.parent[cur] != constants.Undefined; cur = f.parent[cur] {
		out = append(out, f.label[cur])
	}
	return out, nil
}

// PathFromRoot returns the sequence of edge labels from v's root down to v,
// the reverse of PathToRoot.
func (f *Forest) PathFromRoot(v uint32) ([]uint32, error) {
	toRoot, err := f.PathToRoot(v)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(toRoot))
	for i, lbl := range toRoot {
		out[len(toRoot)-1-i] = lbl
	}
	return out, nil
}

// Depth returns the length of PathToRoot(v): the number of edges from v up
// to its root. Recomputed from the parent chain on every call (see the
// Forest doc comment for why this is not cached).
func (f *Forest) Depth(v uint32) (int, error) {
	if err := f.validateNode(v); err != nil {
		return 0, err
	}
	depth := 0
	for cur := v; f.parent[cur] != constants.Undefined; cur = f.parent[cur] {
		depth++
	}
	return depth, nil
}

// IsAcyclic reports whether every node's parent chain terminates at a root
// within Size() steps. A Forest built only through SetParentAndLabel (the
// checked variant) is always acyclic; IsAcyclic exists to validate forests
// whose edges were set with SetParentAndLabelNoChecks.
func (f *Forest) IsAcyclic() bool {
	n := len(f.parent)
	state := make([]int8, n) // 0 = unknown, 1 = in-progress, 2 = acyclic
	for v := range f.parent {
		if state[v] == 2 {
			continue
		}
		path := make([]uint32, 0, n)
		cur := uint32(v)
		for state[cur] == 0 {
			state[cur] = 1
			path = append(path, cur)
			p := f.parent[cur]
			if p == constants.Undefined {
				break
			}
			if state[p] == 1 {
				return false
			}
			cur = p
		}
		for _, node := range path {
			state[node] = 2
		}
	}
	return true
}
