package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/paths"
	"github.com/arvel-sg/semicore/wordgraph"
)

// testDigraph reproduces the 6-node, out-degree-2 benchmark digraph used to
// validate path counts at scale.
func testDigraph(t *testing.T) *wordgraph.WordGraph {
	t.Helper()
	g := wordgraph.New(6, 2)
	edges := [][3]uint32{
		{0, 0, 1}, {0, 1, 2},
		{1, 0, 3}, {1, 1, 4},
		{2, 0, 4}, {2, 1, 2},
		{3, 0, 1}, {3, 1, 5},
		{4, 0, 5}, {4, 1, 4},
		{5, 0, 4}, {5, 1, 5},
	}
	for _, e := range edges {
		require.NoError(t, g.SetTarget(e[0], e[1], e[2]))
	}
	return g
}

func TestNumberOfPathsMatchesBenchmarkDigraphAnyEndpoint(t *testing.T) {
	g := testDigraph(t)
	n, err := paths.NumberOfPaths(g, 0, paths.WithMax(20), paths.WithStrategy(paths.Matrix))
	require.NoError(t, err)
	assert.Equal(t, int64(1_048_575), n)
}

func TestNumberOfPathsMatchesBenchmarkDigraphFixedEndpoint(t *testing.T) {
	g := testDigraph(t)
	n, err := paths.NumberOfPaths(g, 0, paths.WithMax(20), paths.WithTarget(4), paths.WithStrategy(paths.Matrix))
	require.NoError(t, err)
	assert.Equal(t, int64(524_277), n)
}

func TestNumberOfPathsDFSAndMatrixAgree(t *testing.T) {
	g := testDigraph(t)
	matrix, err := paths.NumberOfPaths(g, 0, paths.WithMax(10), paths.WithStrategy(paths.Matrix))
	require.NoError(t, err)
	dfs, err := paths.NumberOfPaths(g, 0, paths.WithMax(10), paths.WithStrategy(paths.DFS))
	require.NoError(t, err)
	assert.Equal(t, matrix, dfs)
}

func TestNumberOfPathsRejectsUnboundedMax(t *testing.T) {
	g := testDigraph(t)
	_, err := paths.NumberOfPaths(g, 0)
	assert.ErrorIs(t, err, paths.ErrInvalidArgument)
}

func TestNumberOfPathsRejectsOutOfBoundsSource(t *testing.T) {
	g := testDigraph(t)
	_, err := paths.NumberOfPaths(g, 9, paths.WithMax(5))
	assert.ErrorIs(t, err, paths.ErrOutOfBounds)
}

// smallGraph is the 3-node path 0 -(a)-> 1 -(a)-> 2, 0 -(b)-> 2, small
// enough to hand-trace every path up to length 2.
func smallGraph(t *testing.T) *wordgraph.WordGraph {
	t.Helper()
	g := wordgraph.New(3, 2)
	require.NoError(t, g.SetTarget(0, 0, 1))
	require.NoError(t, g.SetTarget(0, 1, 2))
	require.NoError(t, g.SetTarget(1, 0, 2))
	return g
}

func collectLex(t *testing.T, g *wordgraph.WordGraph, s uint32, opts ...paths.Option) [][]uint32 {
	t.Helper()
	it, err := paths.Pilo(g, s, opts...)
	require.NoError(t, err)
	var words [][]uint32
	for {
		w, _, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, w)
	}
	return words
}

func TestPiloEnumeratesInLexOrder(t *testing.T) {
	g := smallGraph(t)
	words := collectLex(t, g, 0, paths.WithMax(3))
	// Pre-order DFS over ascending labels: "", "a", "aa", "b".
	require.Len(t, words, 4)
	assert.Empty(t, words[0])
	assert.Equal(t, []uint32{0}, words[1])
	assert.Equal(t, []uint32{0, 0}, words[2])
	assert.Equal(t, []uint32{1}, words[3])
}

func TestPiloRespectsMinLength(t *testing.T) {
	g := smallGraph(t)
	words := collectLex(t, g, 0, paths.WithMin(1), paths.WithMax(3))
	require.Len(t, words, 3)
	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}

func TestPstiloFiltersByEndpoint(t *testing.T) {
	g := smallGraph(t)
	it, err := paths.Pstilo(g, 0, 2, paths.WithMax(3))
	require.NoError(t, err)
	var count int
	for {
		_, endpoint, ok := it.Next()
		if !ok {
			break
		}
		count++
		assert.Equal(t, uint32(2), endpoint)
	}
	// "b" (length 1) and "aa" (length 2) both end at node 2.
	assert.Equal(t, 2, count)
}

func TestPisloEnumeratesShortestFirst(t *testing.T) {
	g := smallGraph(t)
	it, err := paths.Pislo(g, 0, paths.WithMax(3))
	require.NoError(t, err)
	var lengths []int
	for {
		w, _, ok := it.Next()
		if !ok {
			break
		}
		lengths = append(lengths, len(w))
	}
	require.Len(t, lengths, 4)
	for i := 1; i < len(lengths); i++ {
		assert.LessOrEqual(t, lengths[i-1], lengths[i])
	}
}

func TestPstisloFiltersByEndpoint(t *testing.T) {
	g := smallGraph(t)
	it, err := paths.Pstislo(g, 0, 2, paths.WithMax(3))
	require.NoError(t, err)
	var count int
	for {
		_, endpoint, ok := it.Next()
		if !ok {
			break
		}
		count++
		assert.Equal(t, uint32(2), endpoint)
	}
	assert.Equal(t, 2, count)
}

func TestPiloRejectsMinGreaterThanMax(t *testing.T) {
	g := smallGraph(t)
	_, err := paths.Pilo(g, 0, paths.WithMin(5), paths.WithMax(1))
	assert.ErrorIs(t, err, paths.ErrInvalidArgument)
}

func TestPiloRejectsOutOfBoundsSource(t *testing.T) {
	g := smallGraph(t)
	_, err := paths.Pilo(g, 9, paths.WithMax(1))
	assert.ErrorIs(t, err, paths.ErrOutOfBounds)
}
