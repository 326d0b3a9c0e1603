package gabow

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// Run computes the strongly connected component decomposition, if it has
// not been computed already. Every public query triggers Run implicitly;
// calling it directly is only useful to force-surface ErrIncomplete early.
func (gb *Gabow) Run() error {
	if gb.ran {
		return gb.runErr
	}
	gb.ran = true
	if !gb.graph.IsComplete() {
		gb.runErr = fmt.Errorf("gabow: Run: %w", ErrIncomplete)
		return gb.runErr
	}

	n := gb.graph.NumberOfNodes()
	preorder := make([]int, n)
	id := make([]int, n)
	for i := range id {
		id[i] = -1
	}
	var stackS, stackP []uint32
	counter := 0
	var comps [][]uint32

	type frame struct {
		node  uint32
		label uint32
	}

	for root := 0; root < n; root++ {
		if preorder[root] != 0 {
			continue
		}
		stack := []frame{{uint32(root), 0}}
		counter++
		preorder[root] = counter
		stackS = append(stackS, uint32(root))
		stackP = append(stackP, uint32(root))

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			b, w := gb.graph.NextLabelAndTarget(top.node, top.label)
			if b == constants.Undefined {
				if stackP[len(stackP)-1] == top.node {
					stackP = stackP[:len(stackP)-1]
					var comp []uint32
					for {
						last := len(stackS) - 1
						v := stackS[last]
						stackS = stackS[:last]
						id[v] = len(comps)
						comp = append(comp, v)
						if v == top.node {
							break
						}
					}
					comps = append(comps, comp)
				}
				stack = stack[:len(stack)-1]
				continue
			}
			top.label = b + 1
			if preorder[w] == 0 {
				counter++
				preorder[w] = counter
				stackS = append(stackS, w)
				stackP = append(stackP, w)
				stack = append(stack, frame{w, 0})
			} else if id[w] == -1 {
				for preorder[stackP[len(stackP)-1]] > preorder[w] {
					stackP = stackP[:len(stackP)-1]
				}
			}
		}
	}

	gb.id = id
	gb.comps = comps
	return nil
}

// NumberOfComponents returns the number of strongly connected components.
func (gb *Gabow) NumberOfComponents() (int, error) {
	if err := gb.Run(); err != nil {
		return 0, err
	}
	return len(gb.comps), nil
}

// Id returns the component index of node v.
func (gb *Gabow) Id(v uint32) (int, error) {
	if err := gb.Run(); err != nil {
		return 0, err
	}
	if int(v) >= len(gb.id) {
		return 0, fmt.Errorf("gabow: Id: node %d: %w", v, ErrOutOfBounds)
	}
	return gb.id[v], nil
}

// Component returns the nodes of the i-th component, in discovery order.
func (gb *Gabow) Component(i int) ([]uint32, error) {
	if err := gb.Run(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(gb.comps) {
		return nil, fmt.Errorf("gabow: Component: index %d: %w", i, ErrOutOfBounds)
	}
	return gb.comps[i], nil
}

// ComponentOf returns the nodes of the component containing v.
func (gb *Gabow) ComponentOf(v uint32) ([]uint32, error) {
	id, err := gb.Id(v)
	if err != nil {
		return nil, err
	}
	return gb.comps[id], nil
}

// RootOf returns the minimum-index node of the component containing v; this
// is the node the component's spanning tree (see SpanningForest) is rooted
// on.
func (gb *Gabow) RootOf(v uint32) (uint32, error) {
	comp, err := gb.ComponentOf(v)
	if err != nil {
		return 0, err
	}
	return minNode(comp), nil
}

// Roots returns one node per component: the root returned by RootOf for
// that component.
func (gb *Gabow) Roots() ([]uint32, error) {
	if err := gb.Run(); err != nil {
		return nil, err
	}
	roots := make([]uint32, len(gb.comps))
	for i, comp := range gb.comps {
		roots[i] = minNode(comp)
	}
	return roots, nil
}

func minNode(comp []uint32) uint32 {
	m := comp[0]
	for _, v := range comp[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Components returns every component, in discovery order.
func (gb *Gabow) Components() ([][]uint32, error) {
	if err := gb.Run(); err != nil {
		return nil, err
	}
	return gb.comps, nil
}
