// Package gabow computes strongly connected components of a complete
// WordGraph using Gabow's two-stack path-based algorithm, lazily run on
// first query and cached thereafter.
//
// Gabow is not safe for concurrent use.
package gabow

import (
	"github.com/arvel-sg/semicore/forest"
	"github.com/arvel-sg/semicore/wordgraph"
)

// Gabow lazily computes and caches the strongly connected component
// decomposition of a WordGraph.
type Gabow struct {
	graph *wordgraph.WordGraph

	ran    bool
	runErr error
	id     []int      // id[v] = index into comps of v's component
	comps  [][]uint32 // comps[i] = nodes of component i, in discovery order

	forwardForest        *forest.Forest
	forwardForestDefined bool
	reverseForest        *forest.Forest
	reverseForestDefined bool
}

// New returns a Gabow over g. g is borrowed, not copied; it must not be
// mutated while the Gabow has cached results derived from it.
func New(g *wordgraph.WordGraph) *Gabow {
	return &Gabow{graph: g}
}

// NumberOfNodes returns the number of nodes of the underlying graph.
func (gb *Gabow) NumberOfNodes() int { return gb.graph.NumberOfNodes() }
