package stephen

import (
	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

// IsLeftFactor reports whether u is accepted as a left factor by a: whether
// the path labelled u from node 0 of a.WordGraph() exists at all. In a
// correctly folded Stephen automaton every node reachable from node 0 is a
// predecessor of the accept state, so path existence is equivalent to full
// left-factor membership.
func IsLeftFactor(a Automaton, u []uint32) bool {
	t, err := wordgraph.FollowPath(a.WordGraph(), 0, u)
	return err == nil && t != constants.Undefined
}
