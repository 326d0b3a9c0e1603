// Package suffixtree implements a generalized online suffix tree over
// integer-alphabet words, built incrementally by Ukkonen's algorithm with a
// distinct reserved terminator letter appended to each added word.
package suffixtree

import "github.com/arvel-sg/semicore/constants"

// node is a single edge-and-subtree of the suffix tree. The edge it
// represents corresponds to word[l:r].
type node struct {
	l, r     int
	parent   uint32
	link     uint32
	children map[int]uint32
	isRealSuffix bool
}

func newNode(l, r int, parent uint32) node {
	return node{l: l, r: r, parent: parent, link: constants.Undefined, children: make(map[int]uint32)}
}

func (n node) length() int { return n.r - n.l }

func (n node) child(c int) uint32 {
	if v, ok := n.children[c]; ok {
		return v
	}
	return constants.Undefined
}

func (n node) isLeaf() bool { return len(n.children) == 0 }

// State names a position inside the tree: either exactly at node v (pos ==
// length of v's incoming edge), or partway along v's incoming edge at
// offset pos.
type State struct {
	V   uint32
	Pos int
}

// Valid reports whether st names a real position in the tree.
func (st State) Valid() bool { return st.V != constants.Undefined }

// SuffixTree is a generalized suffix tree over one or more words sharing a
// common integer alphabet. Each added word is terminated internally by a
// unique negative sentinel letter, so real letters must be non-negative.
type SuffixTree struct {
	index            map[string]int
	multiplicity     []int
	maxWordLength    int
	nextUniqueLetter int
	nodes            []node
	ptr              State
	wordBegin        []int
	wordIndexLookup  []int
	word             []int
}

// New returns an empty suffix tree.
func New() *SuffixTree {
	return &SuffixTree{
		index:            make(map[string]int),
		nextUniqueLetter: -1,
		nodes:            []node{newNode(0, 0, constants.Undefined)},
		ptr:              State{0, 0},
		wordBegin:        []int{0},
	}
}

// NumberOfNodes returns the number of nodes in the tree.
func (t *SuffixTree) NumberOfNodes() int { return len(t.nodes) }

// NumberOfWords returns the number of distinct words added so far.
func (t *SuffixTree) NumberOfWords() int { return -1 - t.nextUniqueLetter }

func isRealLetter(l int) bool { return l >= 0 }

func uniqueLetter(wordIndex int) int { return -1 - wordIndex }
