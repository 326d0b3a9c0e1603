package hopcroftkarp

import (
	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

type productState struct{ x, y uint32 }

type productEdge struct {
	from  uint32
	label uint32
	to    productState
}

// Meet returns the product automaton of x (rooted at xr) and y (rooted at
// yr): states are pairs (nodeX, nodeY) reachable from (xr, yr), numbered in
// BFS discovery order starting from 0 = (xr, yr), with a label-wise
// transition defined exactly where both x and y define it.
func Meet(x *wordgraph.WordGraph, xr uint32, y *wordgraph.WordGraph, yr uint32) (*wordgraph.WordGraph, error) {
	if err := validate(x, xr, y, yr); err != nil {
		return nil, err
	}
	d := x.OutDegree()

	start := productState{xr, yr}
	idOf := map[productState]uint32{start: 0}
	order := []productState{start}
	queue := []productState{start}
	var edges []productEdge

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := idOf[cur]
		for a := 0; a < d; a++ {
			tx := x.TargetNoChecks(cur.x, uint32(a))
			ty := y.TargetNoChecks(cur.y, uint32(a))
			if tx == constants.Undefined || ty == constants.Undefined {
				continue
			}
			next := productState{tx, ty}
			if _, ok := idOf[next]; !ok {
				idOf[next] = uint32(len(order))
				order = append(order, next)
				queue = append(queue, next)
			}
			edges = append(edges, productEdge{from: curID, label: uint32(a), to: next})
		}
	}

	out := wordgraph.New(len(order), d)
	for _, e := range edges {
		if err := out.SetTarget(e.from, e.label, idOf[e.to]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
