package wgsources

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// Target returns the a-labelled target of s, delegating to the wrapped
// WordGraph.
func (w *WordGraphWithSources) Target(s, a uint32) (uint32, error) {
	return w.g.Target(s, a)
}

// SetTarget sets the a-labelled target of s to t, updating the reverse
// table: if s already had a defined a-labelled target, it is first
// unlinked from that target's source list before t's source list gains s.
func (w *WordGraphWithSources) SetTarget(s, a, t uint32) error {
	if int(s) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: SetTarget: source %d: %w", s, ErrOutOfBounds)
	}
	if int(a) >= w.d {
		return fmt.Errorf("wgsources: SetTarget: label %d: %w", a, ErrOutOfBounds)
	}
	if t != constants.Undefined && int(t) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: SetTarget: target %d: %w", t, ErrOutOfBounds)
	}
	w.setTargetNoChecks(s, a, t)
	return nil
}

func (w *WordGraphWithSources) setTargetNoChecks(s, a, t uint32) {
	if old := w.g.TargetNoChecks(s, a); old != constants.Undefined {
		w.removeSourceNoChecks(old, a, s)
	}
	w.g.SetTargetNoChecks(s, a, t)
	if t != constants.Undefined {
		w.addSourceNoChecks(t, a, s)
	}
}

// RemoveTarget unlinks s's a-labelled target from the reverse table before
// clearing the forward entry.
func (w *WordGraphWithSources) RemoveTarget(s, a uint32) error {
	return w.SetTarget(s, a, constants.Undefined)
}

// AddNodes grows the graph (and both reverse-adjacency tables) by k nodes.
func (w *WordGraphWithSources) AddNodes(k int) {
	w.g.AddNodes(k)
	extraInit := make([]uint32, k*w.d)
	extraNext := make([]uint32, k*w.d)
	for i := range extraInit {
		extraInit[i] = constants.Undefined
		extraNext[i] = constants.Undefined
	}
	w.preimInit = append(w.preimInit, extraInit...)
	w.preimNext = append(w.preimNext, extraNext...)
}

// AddToOutDegree grows the out-degree by k. The reverse tables are rebuilt
// since the (node, label) indexing scheme changes stride.
func (w *WordGraphWithSources) AddToOutDegree(k int) {
	w.g.AddToOutDegree(k)
	w.d = w.g.OutDegree()
	w.rebuildSources()
}
