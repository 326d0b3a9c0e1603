// Package cirpons builds a single fused word graph over the left factors of
// an inverse presentation's elements, following every (state, letter) pair
// in breadth-first order and disjoint-unioning in a fresh Stephen automaton
// whenever that pair is still undefined, then closing the result under the
// presentation's rewrite rules by a Felsch-style FIFO definition-processing
// pass.
package cirpons

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/forest"
	"github.com/arvel-sg/semicore/presentation"
	"github.com/arvel-sg/semicore/stephen"
	"github.com/arvel-sg/semicore/uf"
	"github.com/arvel-sg/semicore/wgsources"
	"github.com/arvel-sg/semicore/wordgraph"
)

// definition is a single (node, label) pair whose target edge was just
// installed or changed, awaiting rule closure.
type definition struct {
	node, label uint32
}

// coincidence is a pair of node ids discovered to name the same class,
// awaiting identification via wgsources.MergeNodes.
type coincidence struct {
	a, b uint32
}

// Engine runs the Cirpons construction over an inverse presentation,
// obtaining Stephen automata from factory.
//
// The fused graph is closed under p's rules via a FIFO of definitions: every
// edge installed (by a disjoint union or by rule closure itself) is queued;
// draining the queue traces every rule from every live node and either
// deduces a missing edge (one side of the rule fully defined, the other
// missing only its last letter) or reports a coincidence (both sides fully
// defined but landing on different nodes), which is resolved by merging the
// two nodes via wgsources.MergeNodes. Node identity after merging is tracked
// by a uf.UnionFind over the graph's node ids, so NumberOfClasses reports
// the exact number of classes of the closed graph, not a bound.
type Engine struct {
	alphabetSize int
	presentation *presentation.InversePresentation
	factory      stephen.Factory

	graph   *wgsources.WordGraphWithSources
	tree    *forest.Forest
	classes *uf.UnionFind

	defs    []definition
	pending []coincidence

	done bool
}

// New returns an Engine for the inverse presentation p, obtaining Stephen
// automata from factory. p's alphabet size determines the out-degree of
// every word graph the engine builds.
func New(p *presentation.InversePresentation, factory stephen.Factory) *Engine {
	return &Engine{presentation: p, factory: factory}
}

// Run executes the main loop once; subsequent calls are no-ops.
func (e *Engine) Run() error {
	if e.done {
		return nil
	}
	if e.presentation == nil {
		return fmt.Errorf("cirpons: Run: %w", ErrNoPresentation)
	}
	e.alphabetSize = e.presentation.AlphabetSize()

	start := e.factory(nil)
	if err := start.Run(); err != nil {
		return fmt.Errorf("cirpons: Run: initial automaton: %w: %v", ErrRunnerFailed, err)
	}

	e.graph = wgsources.New(0, e.alphabetSize)
	e.tree = forest.New(0)
	e.classes = uf.New(0)
	if err := e.disjointUnion(start.WordGraph()); err != nil {
		return fmt.Errorf("cirpons: Run: %w", err)
	}
	if err := e.processDefinitions(); err != nil {
		return fmt.Errorf("cirpons: Run: %w", err)
	}

	for s := 0; s < e.graph.NumberOfNodes(); s++ {
		rep, err := e.classes.Find(s)
		if err != nil {
			return fmt.Errorf("cirpons: Run: %w", err)
		}
		if rep != s {
			// s was merged into a lesser node; it has no outgoing edges left.
			continue
		}

		for a := 0; a < e.alphabetSize; a++ {
			t, err := e.graph.Target(uint32(s), uint32(a))
			if err != nil {
				return fmt.Errorf("cirpons: Run: %w", err)
			}
			if t != constants.Undefined {
				continue
			}

			w, err := e.tree.PathFromRoot(uint32(s))
			if err != nil {
				return fmt.Errorf("cirpons: Run: %w", err)
			}
			word := append(append([]uint32(nil), w...), uint32(a))

			r := e.factory(word)
			if err := r.Run(); err != nil {
				return fmt.Errorf("cirpons: Run: %w: %v", ErrRunnerFailed, err)
			}

			offset := uint32(e.graph.NumberOfNodes())
			if err := e.disjointUnion(r.WordGraph()); err != nil {
				return fmt.Errorf("cirpons: Run: %w", err)
			}
			if err := e.graph.SetTarget(uint32(s), uint32(a), r.AcceptState()+offset); err != nil {
				return fmt.Errorf("cirpons: Run: %w", err)
			}
			e.defs = append(e.defs, definition{uint32(s), uint32(a)})

			if err := e.processDefinitions(); err != nil {
				return fmt.Errorf("cirpons: Run: %w", err)
			}
		}
	}

	e.done = true
	return nil
}

// disjointUnion appends g's nodes and edges to e.graph, offset by the
// current node count, extends e.classes with one singleton block per new
// node, extends the spanning forest so every freshly added node other than
// the true root gains a parent and incoming label the first time an edge
// reaches it, and queues every installed edge as a definition.
func (e *Engine) disjointUnion(g *wordgraph.WordGraph) error {
	n := uint32(e.graph.NumberOfNodes())
	k := g.NumberOfNodes()
	d := g.OutDegree()

	e.graph.AddNodes(k)
	e.tree.AddNodes(k)
	for i := 0; i < k; i++ {
		e.classes.AddEntry()
	}

	for s := 0; s < k; s++ {
		for a := 0; a < d; a++ {
			t := g.TargetNoChecks(uint32(s), uint32(a))
			if t == constants.Undefined {
				continue
			}
			gs, gt := uint32(s)+n, t+n
			if err := e.graph.SetTarget(gs, uint32(a), gt); err != nil {
				return fmt.Errorf("cirpons: disjointUnion: %w", err)
			}
			e.defs = append(e.defs, definition{gs, uint32(a)})
			if gt != 0 && e.tree.Parent(gt) == constants.Undefined {
				e.tree.SetParentAndLabelNoChecks(gt, gs, uint32(a))
			}
		}
	}
	return nil
}

// processDefinitions drains e.defs and e.pending to a fixed point: every
// pending coincidence is identified via wgsources.MergeNodes (which may
// itself queue further definitions and coincidences via its callbacks),
// then every queued definition is closed over every rule of the
// presentation, from every currently live node.
//
// This rechecks every live node against every rule each time a definition
// is processed rather than tracing only the occurrences the definition's
// letter affects (the position-indexed incremental scheme the original
// construction uses internally); see DESIGN.md for why, scoped to this
// pack. The result is the same fixed point, just reached less efficiently.
func (e *Engine) processDefinitions() error {
	for len(e.pending) > 0 || len(e.defs) > 0 {
		for len(e.pending) > 0 {
			c := e.pending[0]
			e.pending = e.pending[1:]
			if err := e.mergeCoincidence(c.a, c.b); err != nil {
				return fmt.Errorf("cirpons: processDefinitions: %w", err)
			}
		}
		if len(e.defs) == 0 {
			continue
		}
		d := e.defs[0]
		e.defs = e.defs[1:]
		if err := e.applyRules(d); err != nil {
			return fmt.Errorf("cirpons: processDefinitions: %w", err)
		}
	}
	return nil
}

// mergeCoincidence identifies the classes of a and b, merging the greater
// node into the lesser via wgsources.MergeNodes, which queues any further
// definitions and coincidences the merge implies.
func (e *Engine) mergeCoincidence(a, b uint32) error {
	ra, err := e.classes.Find(int(a))
	if err != nil {
		return err
	}
	rb, err := e.classes.Find(int(b))
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	min, max := uint32(ra), uint32(rb)
	if min > max {
		min, max = max, min
	}
	if err := e.classes.Union(int(min), int(max)); err != nil {
		return err
	}
	return e.graph.MergeNodes(min, max,
		func(s, a, t uint32) { e.defs = append(e.defs, definition{s, a}) },
		func(t1, t2 uint32) { e.pending = append(e.pending, coincidence{t1, t2}) },
	)
}

// applyRules traces every rule of the presentation from every live node,
// deducing a missing edge when one side of the rule is fully defined and
// the other is defined up to its last letter, or reporting a coincidence
// when both sides are fully defined but disagree. d names the definition
// that triggered this pass; it is not used to restrict which nodes are
// rechecked (see processDefinitions's comment).
func (e *Engine) applyRules(d definition) error {
	_ = d
	n := e.graph.NumberOfNodes()
	for s := 0; s < n; s++ {
		rep, err := e.classes.Find(s)
		if err != nil {
			return err
		}
		if rep != s {
			continue
		}
		for _, rule := range e.presentation.Rules() {
			pu, su := e.followPartial(uint32(s), rule.U)
			pv, sv := e.followPartial(uint32(s), rule.V)
			switch {
			case su == len(rule.U) && sv == len(rule.V):
				if pu != pv {
					e.pending = append(e.pending, coincidence{pu, pv})
				}
			case su == len(rule.U) && sv == len(rule.V)-1:
				label := rule.V[sv]
				if err := e.graph.SetTarget(pv, label, pu); err != nil {
					return err
				}
				e.defs = append(e.defs, definition{pv, label})
			case sv == len(rule.V) && su == len(rule.U)-1:
				label := rule.U[su]
				if err := e.graph.SetTarget(pu, label, pv); err != nil {
					return err
				}
				e.defs = append(e.defs, definition{pu, label})
			}
		}
	}
	return nil
}

// followPartial traces word from start as far as defined edges permit,
// returning the furthest node reached and the number of letters consumed.
// steps == len(word) iff the whole word was defined.
func (e *Engine) followPartial(start uint32, word []uint32) (node uint32, steps int) {
	cur := start
	for i, a := range word {
		t, err := e.graph.Target(cur, a)
		if err != nil || t == constants.Undefined {
			return cur, i
		}
		cur = t
	}
	return cur, len(word)
}

// NumberOfClasses returns the exact number of classes of the closed graph,
// running the engine first if necessary.
func (e *Engine) NumberOfClasses() (int, error) {
	if !e.done {
		if err := e.Run(); err != nil {
			return 0, err
		}
	}
	return e.classes.NumberOfBlocks(), nil
}
