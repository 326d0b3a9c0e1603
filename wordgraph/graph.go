package wordgraph

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// Target returns the node reached from s via label a, or
// constants.Undefined if no such edge exists. Fails if s or a is out of
// range.
func (g *WordGraph) Target(s, a uint32) (uint32, error) {
	if int(s) >= g.n {
		return 0, fmt.Errorf("wordgraph: Target: source %d: %w", s, ErrOutOfBounds)
	}
	if int(a) >= g.d {
		return 0, fmt.Errorf("wordgraph: Target: label %d: %w", a, ErrOutOfBounds)
	}
	return g.TargetNoChecks(s, a), nil
}

// TargetNoChecks is the unchecked variant of Target.
func (g *WordGraph) TargetNoChecks(s, a uint32) uint32 {
	return g.target[g.index(int(s), int(a))]
}

// SetTarget assigns the a-labelled target of s to t. t must be a valid node
// index or constants.Undefined.
func (g *WordGraph) SetTarget(s, a, t uint32) error {
	if int(s) >= g.n {
		return fmt.Errorf("wordgraph: SetTarget: source %d: %w", s, ErrOutOfBounds)
	}
	if int(a) >= g.d {
		return fmt.Errorf("wordgraph: SetTarget: label %d: %w", a, ErrOutOfBounds)
	}
	if t != constants.Undefined && int(t) >= g.n {
		return fmt.Errorf("wordgraph: SetTarget: target %d: %w", t, ErrOutOfBounds)
	}
	g.target[g.index(int(s), int(a))] = t
	return nil
}

// RemoveTarget clears the a-labelled target of s.
func (g *WordGraph) RemoveTarget(s, a uint32) error {
	return g.SetTarget(s, a, constants.Undefined)
}

// SetTargetNoChecks is the unchecked variant of SetTarget.
func (g *WordGraph) SetTargetNoChecks(s, a, t uint32) {
	g.target[g.index(int(s), int(a))] = t
}

// RemoveTargetNoChecks is the unchecked variant of RemoveTarget.
func (g *WordGraph) RemoveTargetNoChecks(s, a uint32) {
	g.SetTargetNoChecks(s, a, constants.Undefined)
}

// SwapTargets exchanges the a-labelled targets of s and t.
func (g *WordGraph) SwapTargets(s, t, a uint32) error {
	if int(s) >= g.n {
		return fmt.Errorf("wordgraph: SwapTargets: source %d: %w", s, ErrOutOfBounds)
	}
	if int(t) >= g.n {
		return fmt.Errorf("wordgraph: SwapTargets: source %d: %w", t, ErrOutOfBounds)
	}
	if int(a) >= g.d {
		return fmt.Errorf("wordgraph: SwapTargets: label %d: %w", a, ErrOutOfBounds)
	}
	si, ti := g.index(int(s), int(a)), g.index(int(t), int(a))
	g.target[si], g.target[ti] = g.target[ti], g.target[si]
	return nil
}

// NextLabelAndTarget returns the least (b, target) pair with b >= a and
// target != constants.Undefined, or (constants.Undefined,
// constants.Undefined) if no such label exists. Used throughout path
// enumeration to advance to the next defined outgoing edge.
func (g *WordGraph) NextLabelAndTarget(s, a uint32) (uint32, uint32) {
	if int(s) >= g.n {
		return constants.Undefined, constants.Undefined
	}
	for b := int(a); b < g.d; b++ {
		t := g.target[g.index(int(s), b)]
		if t != constants.Undefined {
			return uint32(b), t
		}
	}
	return constants.Undefined, constants.Undefined
}

// AddNodes grows the graph by k nodes, with all new cells
// constants.Undefined.
func (g *WordGraph) AddNodes(k int) {
	g.n += k
	g.target = append(g.target, newUndefinedSlice(k*g.d)...)
}

// AddToOutDegree grows the out-degree by k, appending constants.Undefined
// columns to every existing node.
func (g *WordGraph) AddToOutDegree(k int) {
	newD := g.d + k
	newTarget := newUndefinedSlice(g.n * newD)
	for s := 0; s < g.n; s++ {
		copy(newTarget[s*newD:s*newD+g.d], g.target[s*g.d:(s+1)*g.d])
	}
	g.d = newD
	g.target = newTarget
}

// IsComplete reports whether every entry of the target table is defined.
func (g *WordGraph) IsComplete() bool {
	for _, t := range g.target {
		if t == constants.Undefined {
			return false
		}
	}
	return true
}

// InducedSubgraph returns a new WordGraph keeping only nodes in [lo, hi),
// renumbered to [0, hi-lo). Any target outside [lo, hi) is replaced by
// constants.Undefined.
func (g *WordGraph) InducedSubgraph(lo, hi int) (*WordGraph, error) {
	if lo < 0 || hi < lo || hi > g.n {
		return nil, fmt.Errorf("wordgraph: InducedSubgraph(%d, %d): %w", lo, hi, ErrInvalidArgument)
	}
	out := New(hi-lo, g.d)
	for s := lo; s < hi; s++ {
		for a := 0; a < g.d; a++ {
			t := g.target[g.index(s, a)]
			if t == constants.Undefined || int(t) < lo || int(t) >= hi {
				continue
			}
			out.target[out.index(s-lo, a)] = t - uint32(lo)
		}
	}
	return out, nil
}

// DisjointUnion returns a new WordGraph that is the disjoint union of g and
// other: other's nodes are renumbered by an offset of g.NumberOfNodes().
// Requires g.OutDegree() == other.OutDegree().
func (g *WordGraph) DisjointUnion(other *WordGraph) (*WordGraph, error) {
	if g.d != other.d {
		return nil, fmt.Errorf("wordgraph: DisjointUnion: out-degrees %d and %d: %w", g.d, other.d, ErrMismatch)
	}
	offset := uint32(g.n)
	out := New(g.n+other.n, g.d)
	copy(out.target[:len(g.target)], g.target)
	for i, t := range other.target {
		if t != constants.Undefined {
			t += offset
		}
		out.target[len(g.target)+i] = t
	}
	return out, nil
}
