package suffixtree

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// Traverse follows w from st, comparing against the edges of the tree, and
// returns the resulting position. The returned State is invalid if w does
// not continue a path already present in the tree.
func (t *SuffixTree) Traverse(st State, w []int) State {
	if len(w) == 0 || !st.Valid() {
		return st
	}
	i := 0
	for i < len(w) {
		n := t.nodes[st.V]
		if st.Pos == n.length() {
			st = State{n.child(w[i]), 0}
			if !st.Valid() {
				return st
			}
			continue
		}
		remaining := n.length() - st.Pos
		if remaining <= len(w)-i {
			if !equalInts(t.word[n.l+st.Pos:n.r], w[i:i+remaining]) {
				return State{constants.Undefined, 0}
			}
			i += remaining
			st.Pos = n.length()
		} else {
			if !equalInts(w[i:], t.word[n.l+st.Pos:n.l+st.Pos+(len(w)-i)]) {
				return State{constants.Undefined, 0}
			}
			return State{st.V, st.Pos + (len(w) - i)}
		}
	}
	return st
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *SuffixTree) validate(w []int) error {
	for i, l := range w {
		if !isRealLetter(l) {
			return fmt.Errorf("suffixtree: letter %d at position %d: %w", l, i, ErrInvalidLetter)
		}
	}
	return nil
}

// IsSubword reports whether w occurs as a contiguous subword of some added
// word.
func (t *SuffixTree) IsSubword(w []int) (bool, error) {
	if err := t.validate(w); err != nil {
		return false, err
	}
	if len(w) == 0 {
		return true, nil
	}
	if len(w) > t.maxWordLength {
		return false, nil
	}
	return t.Traverse(State{0, 0}, w).Valid(), nil
}

// IsSuffix reports whether w is a suffix of some added word.
func (t *SuffixTree) IsSuffix(w []int) (bool, error) {
	if err := t.validate(w); err != nil {
		return false, err
	}
	if len(w) == 0 {
		return true, nil
	}
	if len(w) > t.maxWordLength {
		return false, nil
	}
	st := t.Traverse(State{0, 0}, w)
	return t.isRealSuffix(st) != -1, nil
}

func (t *SuffixTree) isRealSuffix(st State) int {
	if !st.Valid() || t.NumberOfWords() == 0 {
		return -1
	}
	n := t.nodes[st.V]
	if st.Pos == n.length() {
		if n.isRealSuffix {
			return t.wordIndexOfNode(n)
		}
		return -1
	}
	if n.isLeaf() && n.length()-1 == st.Pos {
		return t.wordIndexOfNode(n)
	}
	return -1
}

func (t *SuffixTree) wordIndexOfNode(n node) int {
	return t.wordIndexLookup[n.r-1]
}

func (t *SuffixTree) wordIndex(w []int) (int, bool) {
	idx, ok := t.index[wordKey(w)]
	return idx, ok
}

// MaximalPiecePrefix returns the length of the longest prefix of the
// previously added word w that ends at an internal node of the tree.
func (t *SuffixTree) MaximalPiecePrefix(w []int) (int, error) {
	j, ok := t.wordIndex(w)
	if !ok {
		return 0, fmt.Errorf("suffixtree: MaximalPiecePrefix: %w", ErrUnknownWord)
	}
	return t.maximalPiecePrefixRange(t.wordBegin[j], t.wordBegin[j+1]), nil
}

func (t *SuffixTree) maximalPiecePrefixRange(l, r int) int {
	m := uint32(0)
	for l < r {
		m = t.nodes[m].child(t.word[l])
		l += t.nodes[m].length()
	}
	return t.distanceFromRoot(t.nodes[m].parent)
}

func (t *SuffixTree) distanceFromRoot(i uint32) int {
	result := 0
	for t.nodes[i].parent != constants.Undefined {
		result += t.nodes[i].length()
		i = t.nodes[i].parent
	}
	return result
}

// MaximalPieceSuffix returns the length of the longest suffix of the
// previously added word w that ends at an internal node of the tree.
func (t *SuffixTree) MaximalPieceSuffix(w []int) (int, error) {
	j, ok := t.wordIndex(w)
	if !ok {
		return 0, fmt.Errorf("suffixtree: MaximalPieceSuffix: %w", ErrUnknownWord)
	}
	term := uniqueLetter(j)
	result := 0
	for n := 0; n < len(t.nodes); n++ {
		if t.nodes[n].child(term) != constants.Undefined {
			if d := t.distanceFromRoot(uint32(n)); d > result {
				result = d
			}
		}
	}
	return result, nil
}

// NumberOfPieces returns the number of pieces in the greedy maximal-piece
// factorization of the previously added word w, or constants.PositiveInfinity
// if w cannot be fully factored this way.
func (t *SuffixTree) NumberOfPieces(w []int) (int64, error) {
	j, ok := t.wordIndex(w)
	if !ok {
		return 0, fmt.Errorf("suffixtree: NumberOfPieces: %w", ErrUnknownWord)
	}
	l, r := t.wordBegin[j], t.wordBegin[j+1]
	var result int64
	n := 1
	for l < r-1 && n != 0 {
		n = t.maximalPiecePrefixRange(l, r)
		l += n
		result++
	}
	if l == r-1 {
		return result, nil
	}
	return constants.PositiveInfinity, nil
}

// NumberOfSubwords returns the number of distinct contiguous subwords
// (including the empty word) across every added word.
func (t *SuffixTree) NumberOfSubwords() int {
	total := 0
	for _, n := range t.nodes {
		total += n.length()
	}
	return total - len(t.word) + 1
}
