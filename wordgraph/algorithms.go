// algorithms.go implements the graph-algorithm layer over WordGraph using a
// three-colour (White/Gray/Black) DFS over dense uint32 node/label indices.
package wordgraph

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

type colour uint8

const (
	white colour = iota
	gray
	black
)

// IsAcyclic reports whether g, taken as a whole, contains no directed cycle.
func IsAcyclic(g *WordGraph) bool {
	ok, _ := isAcyclicRange(g, 0, g.NumberOfNodes())
	return ok
}

// IsAcyclicFrom reports whether the subgraph reachable from s is acyclic.
func IsAcyclicFrom(g *WordGraph, s uint32) (bool, error) {
	if int(s) >= g.NumberOfNodes() {
		return false, fmt.Errorf("wordgraph: IsAcyclicFrom: source %d: %w", s, ErrOutOfBounds)
	}
	state := make([]colour, g.NumberOfNodes())
	return dfsAcyclic(g, s, state), nil
}

// IsAcyclicNodeRange reports whether the induced node range [lo, hi) is
// acyclic, treating any edge leaving the range as absent, matching the
// range-restricted window views used elsewhere in this package.
func IsAcyclicNodeRange(g *WordGraph, lo, hi int) (bool, error) {
	if lo < 0 || hi < lo || hi > g.NumberOfNodes() {
		return false, fmt.Errorf("wordgraph: IsAcyclicNodeRange(%d, %d): %w", lo, hi, ErrInvalidArgument)
	}
	return isAcyclicRange(g, lo, hi)
}

func isAcyclicRange(g *WordGraph, lo, hi int) (bool, error) {
	state := make([]colour, g.NumberOfNodes())
	for s := lo; s < hi; s++ {
		if state[s] == white {
			if !dfsAcyclicRange(g, uint32(s), state, lo, hi) {
				return false, nil
			}
		}
	}
	return true, nil
}

func dfsAcyclic(g *WordGraph, start uint32, state []colour) bool {
	return dfsAcyclicRange(g, start, state, 0, g.NumberOfNodes())
}

// dfsAcyclicRange performs an iterative DFS from start, restricted to nodes
// in [lo, hi), reporting false as soon as a back edge (an edge into a gray
// node) is discovered.
func dfsAcyclicRange(g *WordGraph, start uint32, state []colour, lo, hi int) bool {
	type frame struct {
		node  uint32
		label uint32
	}
	stack := []frame{{start, 0}}
	state[start] = gray
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		b, t := g.NextLabelAndTarget(top.node, top.label)
		if b == constants.Undefined {
			state[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}
		top.label = b + 1
		if int(t) < lo || int(t) >= hi {
			continue
		}
		switch state[t] {
		case white:
			state[t] = gray
			stack = append(stack, frame{t, 0})
		case gray:
			return false // back edge
		case black:
			// already fully explored; fine
		}
	}
	return true
}

// TopologicalSort returns a topological order of g's nodes if g is acyclic,
// or an empty slice if g contains a cycle. Deterministic: node and label
// ties are broken by ascending index, since DFS always visits the least
// unvisited root and the least-labelled outgoing edge first.
func TopologicalSort(g *WordGraph) []uint32 {
	n := g.NumberOfNodes()
	state := make([]colour, n)
	var order []uint32
	type frame struct {
		node  uint32
		label uint32
	}
	for root := 0; root < n; root++ {
		if state[root] != white {
			continue
		}
		stack := []frame{{uint32(root), 0}}
		state[root] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			b, t := g.NextLabelAndTarget(top.node, top.label)
			if b == constants.Undefined {
				state[top.node] = black
				order = append(order, top.node)
				stack = stack[:len(stack)-1]
				continue
			}
			top.label = b + 1
			switch state[t] {
			case white:
				state[t] = gray
				stack = append(stack, frame{t, 0})
			case gray:
				return []uint32{} // cycle detected
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// IsReachable reports whether t is reachable from s by some (possibly
// empty) path. s == t is always reachable.
func IsReachable(g *WordGraph, s, t uint32) (bool, error) {
	n := g.NumberOfNodes()
	if int(s) >= n {
		return false, fmt.Errorf("wordgraph: IsReachable: source %d: %w", s, ErrOutOfBounds)
	}
	if int(t) >= n {
		return false, fmt.Errorf("wordgraph: IsReachable: target %d: %w", t, ErrOutOfBounds)
	}
	if s == t {
		return true, nil
	}
	visited := make([]bool, n)
	visited[s] = true
	queue := []uint32{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for a := 0; a < g.OutDegree(); a++ {
			nb := g.TargetNoChecks(cur, uint32(a))
			if nb == constants.Undefined || visited[nb] {
				continue
			}
			if nb == t {
				return true, nil
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return false, nil
}

// IsConnected treats g's edges as undirected and reports whether a BFS from
// node 0 visits every node.
func IsConnected(g *WordGraph) bool {
	n := g.NumberOfNodes()
	if n == 0 {
		return true
	}
	undirected := buildUndirectedAdjacency(g)
	visited := make([]bool, n)
	visited[0] = true
	queue := []uint32{0}
	count := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range undirected[cur] {
			if !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == n
}

func buildUndirectedAdjacency(g *WordGraph) [][]uint32 {
	n := g.NumberOfNodes()
	adj := make([][]uint32, n)
	for s := 0; s < n; s++ {
		for a := 0; a < g.OutDegree(); a++ {
			t := g.TargetNoChecks(uint32(s), uint32(a))
			if t == constants.Undefined {
				continue
			}
			adj[s] = append(adj[s], t)
			if uint32(s) != t {
				adj[t] = append(adj[t], uint32(s))
			}
		}
	}
	return adj
}

// IsStrictlyCyclic reports whether some single node reaches every node of g.
func IsStrictlyCyclic(g *WordGraph) bool {
	n := g.NumberOfNodes()
	if n == 0 {
		return true
	}
	for root := 0; root < n; root++ {
		if reachesAll(g, uint32(root), n) {
			return true
		}
	}
	return false
}

func reachesAll(g *WordGraph, root uint32, n int) bool {
	visited := make([]bool, n)
	visited[root] = true
	count := 1
	queue := []uint32{root}
	for len(queue) > 0 && count < n {
		cur := queue[0]
		queue = queue[1:]
		for a := 0; a < g.OutDegree(); a++ {
			nb := g.TargetNoChecks(cur, uint32(a))
			if nb == constants.Undefined || visited[nb] {
				continue
			}
			visited[nb] = true
			count++
			queue = append(queue, nb)
		}
	}
	return count == n
}

// FollowPath walks from s consuming the labels of w in order, returning the
// final node, or constants.Undefined the moment a missing edge is
// encountered. Fails only if s is out of range.
func FollowPath(g *WordGraph, s uint32, w []uint32) (uint32, error) {
	if int(s) >= g.NumberOfNodes() {
		return 0, fmt.Errorf("wordgraph: FollowPath: source %d: %w", s, ErrOutOfBounds)
	}
	cur := s
	for _, a := range w {
		if int(a) >= g.OutDegree() {
			return constants.Undefined, nil
		}
		cur = g.TargetNoChecks(cur, a)
		if cur == constants.Undefined {
			return constants.Undefined, nil
		}
	}
	return cur, nil
}

// Standardize renumbers g's nodes in place to breadth-first-from-0 order
// under the natural label ordering; nodes unreachable from 0 are appended
// afterward in their original relative order. It returns the permutation
// mapping old node index to new node index, so callers with auxiliary data
// indexed by node (e.g. a Forest) can remap it. Standardize is idempotent:
// calling it twice in a row on the same graph produces the identity
// permutation the second time.
func Standardize(g *WordGraph) []uint32 {
	n := g.NumberOfNodes()
	oldToNew := make([]uint32, n)
	for i := range oldToNew {
		oldToNew[i] = constants.Undefined
	}
	newOrder := make([]uint32, 0, n)
	if n > 0 {
		visited := make([]bool, n)
		visited[0] = true
		queue := []uint32{0}
		newOrder = append(newOrder, 0)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for a := 0; a < g.OutDegree(); a++ {
				nb := g.TargetNoChecks(cur, uint32(a))
				if nb == constants.Undefined || visited[nb] {
					continue
				}
				visited[nb] = true
				newOrder = append(newOrder, nb)
				queue = append(queue, nb)
			}
		}
		for old := 0; old < n; old++ {
			if !visited[old] {
				newOrder = append(newOrder, uint32(old))
			}
		}
	}
	for newIdx, old := range newOrder {
		oldToNew[old] = uint32(newIdx)
	}

	newTarget := newUndefinedSlice(n * g.d)
	for old := 0; old < n; old++ {
		ns := oldToNew[old]
		for a := 0; a < g.d; a++ {
			t := g.target[g.index(old, a)]
			if t == constants.Undefined {
				continue
			}
			newTarget[int(ns)*g.d+a] = oldToNew[t]
		}
	}
	g.target = newTarget
	return oldToNew
}
