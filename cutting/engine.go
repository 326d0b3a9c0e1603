// Package cutting computes the R- and D-class structure of an inverse
// monoid presented by an inverse presentation: R-classes are discovered by
// repeatedly running Stephen's procedure and comparing the resulting
// automata for mutual left-factor containment, then D-classes are read off
// the strongly connected components of the structure graph those R-classes
// induce.
package cutting

import (
	"fmt"

	"github.com/arvel-sg/semicore/gabow"
	"github.com/arvel-sg/semicore/stephen"
	"github.com/arvel-sg/semicore/wordgraph"
)

// Engine runs the Cutting construction for an alphabet of the given size,
// obtaining Stephen automata from factory.
type Engine struct {
	alphabetSize int
	factory      stephen.Factory

	stephens []stephen.Runner
	graph    *wordgraph.WordGraph
	gb       *gabow.Gabow
	done     bool
}

// New returns an Engine over the given alphabet size, obtaining Stephen
// automata from factory.
func New(alphabetSize int, factory stephen.Factory) *Engine {
	return &Engine{alphabetSize: alphabetSize, factory: factory}
}

// Run executes the main loop once; subsequent calls are no-ops.
func (e *Engine) Run() error {
	if e.done {
		return nil
	}

	start := e.factory(nil)
	if err := start.Run(); err != nil {
		return fmt.Errorf("cutting: Run: initial automaton: %w: %v", ErrRunnerFailed, err)
	}
	e.stephens = []stephen.Runner{start}
	e.graph = wordgraph.New(1, e.alphabetSize)

	for i := 0; i < len(e.stephens); i++ {
		w := e.stephens[i].Word()
		for a := 0; a < e.alphabetSize; a++ {
			aw := append([]uint32{uint32(a)}, w...)

			tmp := e.factory(aw)
			if err := tmp.Run(); err != nil {
				return fmt.Errorf("cutting: Run: %w: %v", ErrRunnerFailed, err)
			}

			match := -1
			for j, sj := range e.stephens {
				if stephen.IsLeftFactor(sj, aw) && stephen.IsLeftFactor(tmp, sj.Word()) {
					match = j
					break
				}
			}

			if match >= 0 {
				if err := e.graph.SetTarget(uint32(i), uint32(a), uint32(match)); err != nil {
					return fmt.Errorf("cutting: Run: %w", err)
				}
				continue
			}

			e.graph.AddNodes(1)
			if err := e.graph.SetTarget(uint32(i), uint32(a), uint32(len(e.stephens))); err != nil {
				return fmt.Errorf("cutting: Run: %w", err)
			}
			e.stephens = append(e.stephens, tmp)
		}
	}

	e.gb = gabow.New(e.graph)
	if err := e.gb.Run(); err != nil {
		return fmt.Errorf("cutting: Run: %w", err)
	}
	e.done = true
	return nil
}

// Size returns the total number of nodes across every R-class's Stephen
// automaton.
func (e *Engine) Size() (int, error) {
	if err := e.ensureRun(); err != nil {
		return 0, err
	}
	total := 0
	for _, s := range e.stephens {
		total += s.WordGraph().NumberOfNodes()
	}
	return total, nil
}

// NumberOfRClasses returns the number of R-classes discovered.
func (e *Engine) NumberOfRClasses() (int, error) {
	if err := e.ensureRun(); err != nil {
		return 0, err
	}
	return len(e.stephens), nil
}

// NumberOfDClasses returns the number of D-classes, computed as the number
// of strongly connected components of the R-class structure graph.
func (e *Engine) NumberOfDClasses() (int, error) {
	if err := e.ensureRun(); err != nil {
		return 0, err
	}
	return e.gb.NumberOfComponents()
}

func (e *Engine) ensureRun() error {
	if !e.done {
		return e.Run()
	}
	return nil
}
