package suffixtree

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

func wordKey(w []int) string {
	b := make([]byte, 0, len(w)*4)
	for _, l := range w {
		b = appendInt(b, l)
		b = append(b, 0)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// AddWord adds w to the tree. Adding a word already present only bumps its
// multiplicity; it does not grow the tree. w must contain only
// non-negative letters.
func (t *SuffixTree) AddWord(w []int) error {
	if len(w) == 0 {
		return nil
	}
	for i, l := range w {
		if !isRealLetter(l) {
			return fmt.Errorf("suffixtree: AddWord: letter %d at position %d: %w", l, i, ErrInvalidLetter)
		}
	}

	key := wordKey(w)
	if idx, ok := t.index[key]; ok {
		t.multiplicity[idx]++
		return nil
	}
	wordIndex := len(t.multiplicity)
	t.index[key] = wordIndex
	t.multiplicity = append(t.multiplicity, 1)

	if len(w) > t.maxWordLength {
		t.maxWordLength = len(w)
	}
	oldLength := len(t.word)
	oldNrNodes := len(t.nodes)

	t.word = append(t.word, w...)
	term := t.nextUniqueLetter
	t.nextUniqueLetter--
	t.word = append(t.word, term)
	t.wordBegin = append(t.wordBegin, len(t.word))
	for len(t.wordIndexLookup) < len(t.word) {
		t.wordIndexLookup = append(t.wordIndexLookup, wordIndex)
	}

	for i := oldLength; i < len(t.word); i++ {
		t.treeExtend(i)
	}

	for i := oldNrNodes; i < len(t.nodes); i++ {
		for child := range t.nodes[i].children {
			if !isRealLetter(child) {
				t.nodes[i].isRealSuffix = true
				break
			}
		}
	}
	return nil
}

// treeExtend performs the Ukkonen phase that appends word[pos] to every
// active suffix.
func (t *SuffixTree) treeExtend(pos int) {
	for {
		nptr := t.goFrom(t.ptr, pos, pos+1)
		if nptr.V != constants.Undefined {
			t.ptr = nptr
			return
		}

		mid := t.split(t.ptr)
		leaf := uint32(len(t.nodes))
		t.nodes = append(t.nodes, newNode(pos, len(t.word), mid))
		t.nodes[mid].children[t.word[pos]] = leaf

		t.ptr.V = t.getLink(mid)
		t.ptr.Pos = t.nodes[t.ptr.V].length()
		if mid == 0 {
			break
		}
	}
}

// goTo follows the path in the tree starting at st, consuming word[l:r]
// (an internal range into t.word), mutating st in place. On mismatch it
// sets st.V to constants.Undefined.
func (t *SuffixTree) goTo(st *State, l, r int) {
	for l < r {
		n := t.nodes[st.V]
		if st.Pos == n.length() {
			*st = State{n.child(t.word[l]), 0}
			if st.V == constants.Undefined {
				return
			}
		} else {
			if t.word[n.l+st.Pos] != t.word[l] {
				st.V = constants.Undefined
				st.Pos = 0
				return
			}
			if r-l < n.length()-st.Pos {
				st.Pos += r - l
				return
			}
			l += n.length() - st.Pos
			st.Pos = n.length()
		}
	}
}

func (t *SuffixTree) goFrom(st State, l, r int) State {
	t.goTo(&st, l, r)
	return st
}

// split divides the edge at st into two nodes at the boundary st.Pos,
// returning the index of the (possibly pre-existing) node at that
// boundary.
func (t *SuffixTree) split(st State) uint32 {
	n := t.nodes[st.V]
	if st.Pos == n.length() {
		return st.V
	} else if st.Pos == 0 {
		return n.parent
	}
	id := uint32(len(t.nodes))
	t.nodes = append(t.nodes, newNode(n.l, n.l+st.Pos, n.parent))
	t.nodes[n.parent].children[t.word[n.l]] = id
	t.nodes[id].children[t.word[n.l+st.Pos]] = st.V
	t.nodes[st.V].parent = id
	t.nodes[st.V].l += st.Pos
	return id
}

// getLink returns the suffix link of node v, computing and caching it if
// necessary.
func (t *SuffixTree) getLink(v uint32) uint32 {
	if t.nodes[v].link != constants.Undefined {
		return t.nodes[v].link
	}
	if t.nodes[v].parent == constants.Undefined {
		return 0
	}
	to := t.getLink(t.nodes[v].parent)
	st := State{to, t.nodes[to].length()}
	extra := 0
	if t.nodes[v].parent == 0 {
		extra = 1
	}
	t.goTo(&st, t.nodes[v].l+extra, t.nodes[v].r)
	link := t.split(st)
	t.nodes[v].link = link
	return link
}
