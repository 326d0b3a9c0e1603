// Package stephen declares the external interface that Cirpons and Cutting
// consume: a Stephen-procedure automaton recognising the left factors of a
// word under an inverse presentation. Stephen's procedure itself (rule
// folding, the coincidence-processing loop) is a separate large subsystem
// consumed, not reimplemented, here; see stephen/stephentest for a minimal
// non-conforming fixture used to exercise Cirpons and Cutting.
package stephen

import "github.com/arvel-sg/semicore/wordgraph"

// Automaton is a deterministic, partial word graph over an inverse
// presentation's alphabet, with node 0 as the start state, recognising the
// left factors of Word().
type Automaton interface {
	// WordGraph returns the automaton's underlying graph. It is
	// standardised: node 0 is the start state, nodes are numbered in
	// breadth-first order.
	WordGraph() *wordgraph.WordGraph

	// AcceptState returns the node at which Word(), read from node 0,
	// terminates.
	AcceptState() uint32

	// Word returns the word this automaton was run on.
	Word() []uint32
}

// Runner computes an Automaton for a word via Stephen's procedure.
// SetWord reinitialises the runner at a new word; Run computes the
// automaton for it.
type Runner interface {
	Automaton
	SetWord(w []uint32)
	Run() error
}

// Factory returns a fresh, not-yet-run Runner positioned at word w, bound
// to whichever inverse presentation the factory closes over.
type Factory func(w []uint32) Runner
