package wgsources

import "github.com/arvel-sg/semicore/constants"

// FirstSource returns some node s with an a-labelled edge to t, or
// constants.Undefined if t has no a-labelled in-edge.
func (w *WordGraphWithSources) FirstSource(t, a uint32) uint32 {
	return w.preimInit[w.preimIndex(t, a)]
}

// NextSource returns the next node after s in the linked list of
// a-labelled sources of the node s itself points to under label a, or
// constants.Undefined at the end of the list.
func (w *WordGraphWithSources) NextSource(s, a uint32) uint32 {
	return w.preimNext[w.preimIndex(s, a)]
}

// addSourceNoChecks pushes source onto the front of target's a-labelled
// source list.
func (w *WordGraphWithSources) addSourceNoChecks(target, a, source uint32) {
	idx := w.preimIndex(target, a)
	w.preimNext[w.preimIndex(source, a)] = w.preimInit[idx]
	w.preimInit[idx] = source
}

// removeSourceNoChecks unlinks source from target's a-labelled source list.
func (w *WordGraphWithSources) removeSourceNoChecks(target, a, source uint32) {
	idx := w.preimIndex(target, a)
	if w.preimInit[idx] == source {
		w.preimInit[idx] = w.preimNext[w.preimIndex(source, a)]
		return
	}
	cur := w.preimInit[idx]
	for cur != constants.Undefined {
		nextIdx := w.preimIndex(cur, a)
		next := w.preimNext[nextIdx]
		if next == source {
			w.preimNext[nextIdx] = w.preimNext[w.preimIndex(source, a)]
			return
		}
		cur = next
	}
}

// IsSource reports whether d is an a-labelled source of c, i.e. whether
// target(d, a) == c. This walks the linked list and is linear in the
// in-degree of c under a.
func (w *WordGraphWithSources) IsSource(c, a, d uint32) bool {
	for s := w.FirstSource(c, a); s != constants.Undefined; s = w.NextSource(s, a) {
		if s == d {
			return true
		}
	}
	return false
}

// RemoveAllSources unlinks every in-edge of c, across all labels, without
// touching c's own outgoing edges.
func (w *WordGraphWithSources) RemoveAllSources(c uint32) {
	for a := 0; a < w.d; a++ {
		for s := w.FirstSource(c, uint32(a)); s != constants.Undefined; {
			next := w.NextSource(s, uint32(a))
			w.preimNext[w.preimIndex(s, uint32(a))] = constants.Undefined
			s = next
		}
		w.preimInit[w.preimIndex(c, uint32(a))] = constants.Undefined
	}
}

// RemoveAllSourcesAndTargets unlinks every in-edge of c and clears every
// out-edge of c.
func (w *WordGraphWithSources) RemoveAllSourcesAndTargets(c uint32) {
	w.RemoveAllSources(c)
	for a := 0; a < w.d; a++ {
		w.g.RemoveTargetNoChecks(c, uint32(a))
	}
}
