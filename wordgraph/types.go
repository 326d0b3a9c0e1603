// Package wordgraph implements a dense labelled directed graph: a fixed
// number of nodes, a fixed out-degree (alphabet size), and an n*d target
// table where entry [s*d+a] is the node reached from s via label a, or
// constants.Undefined if no such edge exists.
//
// WordGraph is not internally synchronized: a single computation is
// single-threaded, so there is no shared mutable state to protect here.
// Callers sharing a WordGraph across goroutines must synchronize
// externally.
package wordgraph

import "github.com/arvel-sg/semicore/constants"

// WordGraph is a dense labelled directed graph on nodes [0, NumberOfNodes())
// with a fixed OutDegree(). Every (source, label) pair has at most one
// target, stored densely: target has exactly NumberOfNodes()*OutDegree()
// entries.
type WordGraph struct {
	n      int // number of nodes
	d      int // out-degree
	target []uint32
}

// New returns a WordGraph on n nodes with out-degree d, every edge
// constants.Undefined.
func New(n, d int) *WordGraph {
	g := &WordGraph{n: n, d: d}
	g.target = newUndefinedSlice(n * d)
	return g
}

func newUndefinedSlice(size int) []uint32 {
	s := make([]uint32, size)
	for i := range s {
		s[i] = constants.Undefined
	}
	return s
}

// NumberOfNodes returns the number of nodes n.
func (g *WordGraph) NumberOfNodes() int { return g.n }

// OutDegree returns the fixed out-degree d (alphabet size).
func (g *WordGraph) OutDegree() int { return g.d }

func (g *WordGraph) index(s, a int) int { return s*g.d + a }

// Equal reports whether g and other have identical dimensions and target
// tables.
func (g *WordGraph) Equal(other *WordGraph) bool {
	if other == nil || g.n != other.n || g.d != other.d {
		return false
	}
	for i := range g.target {
		if g.target[i] != other.target[i] {
			return false
		}
	}
	return true
}
