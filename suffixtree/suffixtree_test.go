package suffixtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/suffixtree"
)

func TestEmptyTreeHasNoWords(t *testing.T) {
	tr := suffixtree.New()
	assert.Equal(t, 0, tr.NumberOfWords())
	assert.Equal(t, 1, tr.NumberOfNodes())
}

func TestAddWordIgnoresEmptyWord(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord(nil))
	assert.Equal(t, 0, tr.NumberOfWords())
}

func TestAddWordRejectsNegativeLetter(t *testing.T) {
	tr := suffixtree.New()
	err := tr.AddWord([]int{0, -1, 2})
	assert.ErrorIs(t, err, suffixtree.ErrInvalidLetter)
}

func TestAddWordDuplicateBumpsMultiplicityNotNodeCount(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1, 0, 1}))
	before := tr.NumberOfNodes()
	require.NoError(t, tr.AddWord([]int{0, 1, 0, 1}))
	assert.Equal(t, before, tr.NumberOfNodes())
	assert.Equal(t, 1, tr.NumberOfWords())
}

func TestIsSubwordAndIsSuffix(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1, 2, 3})) // "abcd"

	sub, err := tr.IsSubword([]int{1, 2})
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = tr.IsSubword([]int{2, 1})
	require.NoError(t, err)
	assert.False(t, sub)

	suf, err := tr.IsSuffix([]int{2, 3})
	require.NoError(t, err)
	assert.True(t, suf)

	suf, err = tr.IsSuffix([]int{0, 1})
	require.NoError(t, err)
	assert.False(t, suf)
}

func TestIsSubwordEmptyWordIsAlwaysPresent(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1}))
	ok, err := tr.IsSubword(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMaximalPiecePrefixAndNumberOfPieces(t *testing.T) {
	tr := suffixtree.New()
	abab := []int{0, 1, 0, 1} // "abab"
	baba := []int{1, 0, 1, 0} // "baba"
	require.NoError(t, tr.AddWord(abab))
	require.NoError(t, tr.AddWord(baba))

	prefix, err := tr.MaximalPiecePrefix(abab)
	require.NoError(t, err)
	assert.Equal(t, 3, prefix)

	pieces, err := tr.NumberOfPieces(abab)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pieces)
}

func TestMaximalPiecePrefixUnknownWord(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1}))
	_, err := tr.MaximalPiecePrefix([]int{1, 1})
	assert.ErrorIs(t, err, suffixtree.ErrUnknownWord)
}

func TestMaximalPieceSuffixFindsInternalNode(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1, 0, 1}))
	require.NoError(t, tr.AddWord([]int{1, 0, 1, 0}))

	suffix, err := tr.MaximalPieceSuffix([]int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
}

func TestNumberOfSubwordsCountsDistinctFactors(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 0, 0})) // "aaa": subwords "", "a", "aa", "aaa"
	assert.Equal(t, 4, tr.NumberOfSubwords())
}

func TestIsSubwordRejectsOverlongWord(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1}))
	ok, err := tr.IsSubword([]int{0, 1, 0, 1, 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNumberOfPiecesPositiveInfinityForWordWithNoPieces(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.AddWord([]int{0, 1})) // sole word: no subword occurs twice
	pieces, err := tr.NumberOfPieces([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, constants.PositiveInfinity, pieces)
}
