// Package wgsources extends a word graph with reverse-adjacency
// information: for every (target, label) pair, a singly linked list of the
// nodes with an edge into it under that label. This is the primitive used
// by congruence-building algorithms to merge nodes and discover the new
// edges and incompatibilities that merge produces.
//
// WordGraphWithSources is not safe for concurrent use.
package wgsources

import (
	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

// WordGraphWithSources wraps a WordGraph, maintaining first_source/
// next_source linked-list tables alongside the forward target table.
type WordGraphWithSources struct {
	g          *wordgraph.WordGraph
	preimInit  []uint32 // first_source(t, a): some s with target(s,a)==t, or Undefined
	preimNext  []uint32 // next_source(s, a): next s' in the linked list sharing preimInit, or Undefined
	d          int
	mergeGuardMin uint32 // during MergeNodes(min, max, ...), set to min; constants.Undefined otherwise
	mergeGuardMax uint32 // during MergeNodes(min, max, ...), set to max; constants.Undefined otherwise
}

// New returns a WordGraphWithSources over an empty WordGraph of n nodes and
// out-degree d.
func New(n, d int) *WordGraphWithSources {
	return Wrap(wordgraph.New(n, d))
}

// Wrap returns a WordGraphWithSources that rebuilds the reverse-adjacency
// tables from g's current forward edges. g is taken over by the result;
// callers must not mutate g directly afterward.
func Wrap(g *wordgraph.WordGraph) *WordGraphWithSources {
	w := &WordGraphWithSources{
		g:             g,
		d:             g.OutDegree(),
		mergeGuardMin: constants.Undefined,
		mergeGuardMax: constants.Undefined,
	}
	w.rebuildSources()
	return w
}

// NumberOfNodes returns the number of nodes.
func (w *WordGraphWithSources) NumberOfNodes() int { return w.g.NumberOfNodes() }

// OutDegree returns the out-degree.
func (w *WordGraphWithSources) OutDegree() int { return w.g.OutDegree() }

// Underlying returns the wrapped WordGraph, for read-only use by callers
// that need forward-only graph algorithms (e.g. gabow.New).
func (w *WordGraphWithSources) Underlying() *wordgraph.WordGraph { return w.g }

func (w *WordGraphWithSources) preimIndex(t, a uint32) int {
	return int(t)*w.d + int(a)
}

func (w *WordGraphWithSources) rebuildSources() {
	n, d := w.g.NumberOfNodes(), w.g.OutDegree()
	w.preimInit = make([]uint32, n*d)
	w.preimNext = make([]uint32, n*d)
	for i := range w.preimInit {
		w.preimInit[i] = constants.Undefined
		w.preimNext[i] = constants.Undefined
	}
	for s := 0; s < n; s++ {
		for a := 0; a < d; a++ {
			t := w.g.TargetNoChecks(uint32(s), uint32(a))
			if t != constants.Undefined {
				w.addSourceNoChecks(t, uint32(a), uint32(s))
			}
		}
	}
}
