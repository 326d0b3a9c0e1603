package gabow

import (
	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/forest"
)

// SpanningForest returns a Forest holding, for each component, a spanning
// tree over that component's nodes, rooted at the component's
// minimum-index node, with edges oriented away from the root (the forest's
// parent pointers run root -> ... -> v, following edges of the underlying
// graph). Cached after the first call.
func (gb *Gabow) SpanningForest() (*forest.Forest, error) {
	if err := gb.Run(); err != nil {
		return nil, err
	}
	if gb.forwardForestDefined {
		return gb.forwardForest, nil
	}
	f := forest.New(gb.graph.NumberOfNodes())
	for _, comp := range gb.comps {
		root := minNode(comp)
		inComp := componentSet(comp)
		visited := map[uint32]bool{root: true}
		queue := []uint32{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for a := 0; a < gb.graph.OutDegree(); a++ {
				w := gb.graph.TargetNoChecks(cur, uint32(a))
				if w == constants.Undefined || !inComp[w] || visited[w] {
					continue
				}
				visited[w] = true
				f.SetParentAndLabelNoChecks(w, cur, uint32(a))
				queue = append(queue, w)
			}
		}
	}
	gb.forwardForest = f
	gb.forwardForestDefined = true
	return f, nil
}

// ReverseSpanningForest returns a Forest holding, for each component, a
// spanning tree over that component's nodes, rooted at the component's
// minimum-index node, with edges oriented towards the root: node v's
// parent p and label a satisfy target(v, a) == p in the underlying graph,
// so following labels from any node leads to the root. Cached after the
// first call.
func (gb *Gabow) ReverseSpanningForest() (*forest.Forest, error) {
	if err := gb.Run(); err != nil {
		return nil, err
	}
	if gb.reverseForestDefined {
		return gb.reverseForest, nil
	}
	f := forest.New(gb.graph.NumberOfNodes())
	for _, comp := range gb.comps {
		root := minNode(comp)
		inComp := componentSet(comp)
		predecessors := buildPredecessors(gb.graph, inComp)
		visited := map[uint32]bool{root: true}
		queue := []uint32{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, pe := range predecessors[cur] {
				if visited[pe.node] {
					continue
				}
				visited[pe.node] = true
				f.SetParentAndLabelNoChecks(pe.node, cur, pe.label)
				queue = append(queue, pe.node)
			}
		}
	}
	gb.reverseForest = f
	gb.reverseForestDefined = true
	return f, nil
}

func componentSet(comp []uint32) map[uint32]bool {
	set := make(map[uint32]bool, len(comp))
	for _, v := range comp {
		set[v] = true
	}
	return set
}

type predecessorEdge struct {
	node  uint32
	label uint32
}

// buildPredecessors returns, for every node w in inComp, the list of (v, a)
// pairs such that the underlying graph has an a-labelled edge v -> w with v
// also in inComp.
func buildPredecessors(g interface {
	OutDegree() int
	TargetNoChecks(s, a uint32) uint32
}, inComp map[uint32]bool) map[uint32][]predecessorEdge {
	preds := make(map[uint32][]predecessorEdge, len(inComp))
	for v := range inComp {
		for a := 0; a < g.OutDegree(); a++ {
			w := g.TargetNoChecks(v, uint32(a))
			if w == constants.Undefined || !inComp[w] {
				continue
			}
			preds[w] = append(preds[w], predecessorEdge{node: v, label: uint32(a)})
		}
	}
	return preds
}
