package wgsources

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

func translate(v, c, d uint32) uint32 {
	switch v {
	case c:
		return d
	case d:
		return c
	default:
		return v
	}
}

// SwapNodes exchanges the complete identities of c and d: every edge that
// was c's becomes d's and vice versa, including edges between c and d
// themselves and self-loops. Fails with ErrOutOfBounds if either node is
// invalid, or ErrInvalidState if c or d is currently pinned by an
// in-progress MergeNodes.
func (w *WordGraphWithSources) SwapNodes(c, d uint32) error {
	if int(c) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: SwapNodes: node %d: %w", c, ErrOutOfBounds)
	}
	if int(d) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: SwapNodes: node %d: %w", d, ErrOutOfBounds)
	}
	if w.mergeGuardMin == c || w.mergeGuardMin == d || w.mergeGuardMax == c || w.mergeGuardMax == d {
		return fmt.Errorf("wgsources: SwapNodes(%d, %d): node pinned by an in-progress MergeNodes: %w", c, d, ErrInvalidState)
	}
	if c == d {
		return nil
	}
	for a := 0; a < w.d; a++ {
		label := uint32(a)
		var extC, extD []uint32
		for s := w.FirstSource(c, label); s != constants.Undefined; s = w.NextSource(s, label) {
			if s != c && s != d {
				extC = append(extC, s)
			}
		}
		for s := w.FirstSource(d, label); s != constants.Undefined; s = w.NextSource(s, label) {
			if s != c && s != d {
				extD = append(extD, s)
			}
		}
		tc := w.g.TargetNoChecks(c, label)
		td := w.g.TargetNoChecks(d, label)
		w.setTargetNoChecks(c, label, translate(td, c, d))
		w.setTargetNoChecks(d, label, translate(tc, c, d))
		for _, s := range extC {
			w.setTargetNoChecks(s, label, d)
		}
		for _, s := range extD {
			w.setTargetNoChecks(s, label, c)
		}
	}
	return nil
}

// RenameNode makes d adopt every incident edge (in and out) of c, then
// clears c entirely. This is a one-sided version of SwapNodes: unlike
// SwapNodes, d's own prior edges are discarded rather than given to c.
func (w *WordGraphWithSources) RenameNode(c, d uint32) error {
	if int(c) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: RenameNode: node %d: %w", c, ErrOutOfBounds)
	}
	if int(d) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: RenameNode: node %d: %w", d, ErrOutOfBounds)
	}
	if c == d {
		return nil
	}
	w.RemoveAllSourcesAndTargets(d)
	for a := 0; a < w.d; a++ {
		label := uint32(a)
		t := w.g.TargetNoChecks(c, label)
		if t == c {
			t = d
		}
		var sources []uint32
		for s := w.FirstSource(c, label); s != constants.Undefined; s = w.NextSource(s, label) {
			if s != c {
				sources = append(sources, s)
			}
		}
		if t != constants.Undefined {
			w.setTargetNoChecks(d, label, t)
		}
		for _, s := range sources {
			w.setTargetNoChecks(s, label, d)
		}
	}
	w.RemoveAllSourcesAndTargets(c)
	return nil
}

// MergeNodes identifies max with min (min must be strictly less than max).
// Every outgoing edge of max is transferred to min: if min already has a
// defined edge under the same label to a different target, on_incompat is
// invoked with the two targets; otherwise, if min had no edge under that
// label, on_new_edge is invoked with the edge just installed. Every
// in-edge of max is redirected to min. Once MergeNodes returns, max is a
// fully isolated node (no incident edges).
func (w *WordGraphWithSources) MergeNodes(min, max uint32, onNewEdge func(s, a, t uint32), onIncompat func(t1, t2 uint32)) error {
	if int(min) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: MergeNodes: node %d: %w", min, ErrOutOfBounds)
	}
	if int(max) >= w.g.NumberOfNodes() {
		return fmt.Errorf("wgsources: MergeNodes: node %d: %w", max, ErrOutOfBounds)
	}
	if min >= max {
		return fmt.Errorf("wgsources: MergeNodes(%d, %d): requires min < max: %w", min, max, ErrInvalidArgument)
	}

	w.mergeGuardMin, w.mergeGuardMax = min, max
	defer func() {
		w.mergeGuardMin, w.mergeGuardMax = constants.Undefined, constants.Undefined
	}()

	for a := 0; a < w.d; a++ {
		label := uint32(a)
		t := w.g.TargetNoChecks(max, label)
		if t == constants.Undefined {
			continue
		}
		if t == max {
			t = min
		}
		existing := w.g.TargetNoChecks(min, label)
		switch {
		case existing == constants.Undefined:
			w.setTargetNoChecks(min, label, t)
			if onNewEdge != nil {
				onNewEdge(min, label, t)
			}
		case existing != t:
			if onIncompat != nil {
				onIncompat(existing, t)
			}
		}
	}

	for a := 0; a < w.d; a++ {
		label := uint32(a)
		var sources []uint32
		for s := w.FirstSource(max, label); s != constants.Undefined; s = w.NextSource(s, label) {
			if s != max {
				sources = append(sources, s)
			}
		}
		for _, s := range sources {
			w.setTargetNoChecks(s, label, min)
		}
	}

	w.RemoveAllSourcesAndTargets(max)
	return nil
}
