package wordgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

func TestNewAllUndefined(t *testing.T) {
	g := wordgraph.New(3, 2)
	for s := uint32(0); s < 3; s++ {
		for a := uint32(0); a < 2; a++ {
			tg, err := g.Target(s, a)
			require.NoError(t, err)
			assert.Equal(t, constants.Undefined, tg)
		}
	}
}

func TestTargetOutOfBounds(t *testing.T) {
	g := wordgraph.New(2, 2)
	_, err := g.Target(5, 0)
	assert.ErrorIs(t, err, wordgraph.ErrOutOfBounds)
	_, err = g.Target(0, 5)
	assert.ErrorIs(t, err, wordgraph.ErrOutOfBounds)
}

func TestSetTargetAndRemove(t *testing.T) {
	g := wordgraph.New(3, 2)
	require.NoError(t, g.SetTarget(0, 0, 1))
	tg, err := g.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tg)

	require.NoError(t, g.RemoveTarget(0, 0))
	tg, err = g.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, tg)
}

func TestSetTargetInvalidNode(t *testing.T) {
	g := wordgraph.New(2, 2)
	assert.ErrorIs(t, g.SetTarget(0, 0, 9), wordgraph.ErrOutOfBounds)
}

func TestSwapTargets(t *testing.T) {
	g := wordgraph.New(3, 1)
	require.NoError(t, g.SetTarget(0, 0, 1))
	require.NoError(t, g.SetTarget(1, 0, 2))
	require.NoError(t, g.SwapTargets(0, 1, 0))
	t0, _ := g.Target(0, 0)
	t1, _ := g.Target(1, 0)
	assert.Equal(t, uint32(2), t0)
	assert.Equal(t, uint32(1), t1)
}

func TestNextLabelAndTarget(t *testing.T) {
	g := wordgraph.New(2, 4)
	require.NoError(t, g.SetTarget(0, 2, 1))
	b, tgt := g.NextLabelAndTarget(0, 0)
	assert.Equal(t, uint32(2), b)
	assert.Equal(t, uint32(1), tgt)

	b, tgt = g.NextLabelAndTarget(0, 3)
	assert.Equal(t, constants.Undefined, b)
	assert.Equal(t, constants.Undefined, tgt)
}

func TestAddNodesAndOutDegree(t *testing.T) {
	g := wordgraph.New(2, 2)
	require.NoError(t, g.SetTarget(0, 0, 1))
	g.AddNodes(1)
	assert.Equal(t, 3, g.NumberOfNodes())
	tg, err := g.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tg)

	g.AddToOutDegree(2)
	assert.Equal(t, 4, g.OutDegree())
	tg, err = g.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tg)
	tg, err = g.Target(0, 3)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, tg)
}

func TestIsComplete(t *testing.T) {
	g := wordgraph.New(2, 1)
	assert.False(t, g.IsComplete())
	require.NoError(t, g.SetTarget(0, 0, 1))
	require.NoError(t, g.SetTarget(1, 0, 0))
	assert.True(t, g.IsComplete())
}

func TestInducedSubgraphDropsOutsideEdges(t *testing.T) {
	g := wordgraph.New(4, 1)
	require.NoError(t, g.SetTarget(0, 0, 1))
	require.NoError(t, g.SetTarget(1, 0, 3))
	require.NoError(t, g.SetTarget(2, 0, 1))

	sub, err := g.InducedSubgraph(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumberOfNodes())
	t0, _ := sub.Target(0, 0)
	assert.Equal(t, uint32(1), t0)
	t1, _ := sub.Target(1, 0)
	assert.Equal(t, constants.Undefined, t1) // target 3 fell outside the window
}

func TestDisjointUnionOffsetsTargets(t *testing.T) {
	a := wordgraph.New(2, 1)
	require.NoError(t, a.SetTarget(0, 0, 1))
	b := wordgraph.New(2, 1)
	require.NoError(t, b.SetTarget(0, 0, 1))

	u, err := a.DisjointUnion(b)
	require.NoError(t, err)
	assert.Equal(t, 4, u.NumberOfNodes())
	t0, _ := u.Target(0, 0)
	assert.Equal(t, uint32(1), t0)
	t2, _ := u.Target(2, 0)
	assert.Equal(t, uint32(3), t2)
}

func TestDisjointUnionOutDegreeMismatch(t *testing.T) {
	a := wordgraph.New(2, 1)
	b := wordgraph.New(2, 2)
	_, err := a.DisjointUnion(b)
	assert.ErrorIs(t, err, wordgraph.ErrMismatch)
}

func TestRandomRequiresRNG(t *testing.T) {
	_, err := wordgraph.Random(3, 2, nil)
	assert.ErrorIs(t, err, wordgraph.ErrInvalidArgument)
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	g1, err := wordgraph.Random(10, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	g2, err := wordgraph.Random(10, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
}

func TestRandomAcyclicIsAcyclic(t *testing.T) {
	g, err := wordgraph.RandomAcyclic(20, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.True(t, wordgraph.IsAcyclic(g))
}

func TestViewTranslatesIndices(t *testing.T) {
	g := wordgraph.New(5, 1)
	require.NoError(t, g.SetTarget(1, 0, 2))
	require.NoError(t, g.SetTarget(2, 0, 4)) // leaves the window below

	v, err := wordgraph.NewWordGraphView(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v.NumberOfNodes())
	t0, err := v.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), t0) // node 2 translated to local 1

	t1, err := v.Target(1, 0)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, t1) // target 4 is outside [1,3)
}

func TestViewToOwningFailsOnEscapingEdge(t *testing.T) {
	g := wordgraph.New(5, 1)
	require.NoError(t, g.SetTarget(1, 0, 4))
	v, err := wordgraph.NewWordGraphView(g, 1, 3)
	require.NoError(t, err)
	_, err = v.ToOwning()
	assert.ErrorIs(t, err, wordgraph.ErrInvalidArgument)
}

func TestViewToOwningSucceedsWhenSelfContained(t *testing.T) {
	g := wordgraph.New(5, 1)
	require.NoError(t, g.SetTarget(1, 0, 2))
	v, err := wordgraph.NewWordGraphView(g, 1, 3)
	require.NoError(t, err)
	owned, err := v.ToOwning()
	require.NoError(t, err)
	tg, _ := owned.Target(0, 0)
	assert.Equal(t, uint32(1), tg)
}
