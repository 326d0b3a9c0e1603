// Package stephentest provides a minimal stephen.Runner fixture for
// exercising Cirpons and Cutting in tests. Fixture ignores the presentation
// entirely: every word is folded into the same depth-bounded counting
// automaton, a chain that self-loops once saturated. It is deliberately not
// a conforming Stephen procedure (it performs no rule folding at all) and
// must never be used as a stand-in for real structure-theory results.
package stephentest

import (
	"github.com/arvel-sg/semicore/stephen"
	"github.com/arvel-sg/semicore/wordgraph"
)

// Fixture builds a chain of Depth+1 states, labels 0..Depth-1 advancing one
// state at a time regardless of letter, state Depth self-looping on every
// letter. AcceptState is min(len(Word()), Depth).
type Fixture struct {
	alphabetSize int
	depth        int
	word         []uint32
	g            *wordgraph.WordGraph
	accept       uint32
}

// New returns a Fixture over the given alphabet size whose chain saturates
// after depth letters.
func New(alphabetSize, depth int) *Fixture {
	return &Fixture{alphabetSize: alphabetSize, depth: depth}
}

// SetWord reinitialises the fixture at w.
func (f *Fixture) SetWord(w []uint32) {
	f.word = append([]uint32(nil), w...)
	f.g = nil
}

// Run builds the fixture's depth-bounded chain and locates the accept
// state for the current word.
func (f *Fixture) Run() error {
	n := f.depth + 1
	g := wordgraph.New(n, f.alphabetSize)
	for i := 0; i < f.depth; i++ {
		for a := 0; a < f.alphabetSize; a++ {
			g.SetTargetNoChecks(uint32(i), uint32(a), uint32(i+1))
		}
	}
	for a := 0; a < f.alphabetSize; a++ {
		g.SetTargetNoChecks(uint32(f.depth), uint32(a), uint32(f.depth))
	}
	f.g = g
	if len(f.word) >= f.depth {
		f.accept = uint32(f.depth)
	} else {
		f.accept = uint32(len(f.word))
	}
	return nil
}

func (f *Fixture) WordGraph() *wordgraph.WordGraph { return f.g }
func (f *Fixture) AcceptState() uint32             { return f.accept }
func (f *Fixture) Word() []uint32                  { return f.word }

// Factory returns a stephen.Factory that produces fresh Fixtures over the
// given alphabet size and depth.
func Factory(alphabetSize, depth int) stephen.Factory {
	return func(w []uint32) stephen.Runner {
		f := New(alphabetSize, depth)
		f.SetWord(w)
		return f
	}
}
