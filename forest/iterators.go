package forest

import "github.com/arvel-sg/semicore/constants"

// PathsFromRoots iterates over every node of a Forest in ascending index
// order, yielding the path-from-root label sequence for each. Consecutive
// calls share work: the walk for the next node climbs from that node only
// until it meets a node on the previously yielded path, and reuses that
// path's prefix from the root down to the meeting point. How much is reused
// depends on how close consecutive indices lie in the tree; when they lie on
// different branches, the whole path up to the common ancestor is re-walked.
type PathsFromRoots struct {
	f     *Forest
	order []uint32
	pos   int

	// stack holds the current path (root ... last yielded node); posOf maps
	// a node to its index in stack, enabling O(1) "is this node on the
	// current path" checks to find the LCA.
	stack []uint32
	posOf map[uint32]int
}

// NewPathsFromRoots returns an iterator over every node of f.
func (f *Forest) NewPathsFromRoots() *PathsFromRoots {
	order := make([]uint32, f.Size())
	for i := range order {
		order[i] = uint32(i)
	}
	return &PathsFromRoots{f: f, order: order, posOf: make(map[uint32]int)}
}

// Next returns the next node and its path-from-root label sequence. ok is
// false once every node has been visited.
func (it *PathsFromRoots) Next() (node uint32, labels []uint32, ok bool) {
	if it.pos >= len(it.order) {
		return 0, nil, false
	}
	v := it.order[it.pos]
	it.pos++

	var fresh []uint32
	cur := v
	for {
		if idx, found := it.posOf[cur]; found && idx < len(it.stack) && it.stack[idx] == cur {
			it.stack = it.stack[:idx+1]
			break
		}
		fresh = append(fresh, cur)
		p := it.f.parent[cur]
		if p == constants.Undefined {
			it.stack = it.stack[:0]
			break
		}
		cur = p
	}
	for i := len(fresh) - 1; i >= 0; i-- {
		it.stack = append(it.stack, fresh[i])
		it.posOf[fresh[i]] = len(it.stack) - 1
	}

	for _, n := range it.stack[1:] {
		labels = append(labels, it.f.label[n])
	}
	return v, labels, true
}

// PathsToRoots is the PathsFromRoots iterator with each yielded label
// sequence reversed (root-to-v order becomes v-to-root order), built on the
// same prefix-reusing walk.
type PathsToRoots struct {
	inner *PathsFromRoots
}

// NewPathsToRoots returns an iterator over every node of f.
func (f *Forest) NewPathsToRoots() *PathsToRoots {
	return &PathsToRoots{inner: f.NewPathsFromRoots()}
}

// Next returns the next node and its path-to-root label sequence.
func (it *PathsToRoots) Next() (node uint32, labels []uint32, ok bool) {
	node, fromRoot, ok := it.inner.Next()
	if !ok {
		return 0, nil, false
	}
	for i := len(fromRoot) - 1; i >= 0; i-- {
		labels = append(labels, fromRoot[i])
	}
	return node, labels, true
}
