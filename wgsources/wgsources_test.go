package wgsources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wgsources"
)

func TestSetTargetMaintainsReverseLinks(t *testing.T) {
	w := wgsources.New(3, 1)
	require.NoError(t, w.SetTarget(0, 0, 2))
	require.NoError(t, w.SetTarget(1, 0, 2))

	assert.True(t, w.IsSource(2, 0, 0))
	assert.True(t, w.IsSource(2, 0, 1))

	sources := collectSources(w, 2, 0)
	assert.ElementsMatch(t, []uint32{0, 1}, sources)
}

func collectSources(w *wgsources.WordGraphWithSources, t, a uint32) []uint32 {
	var out []uint32
	for s := w.FirstSource(t, a); s != constants.Undefined; s = w.NextSource(s, a) {
		out = append(out, s)
	}
	return out
}

func TestRemoveTargetUnlinksSource(t *testing.T) {
	w := wgsources.New(2, 1)
	require.NoError(t, w.SetTarget(0, 0, 1))
	require.NoError(t, w.RemoveTarget(0, 0))
	assert.False(t, w.IsSource(1, 0, 0))
}

func TestReassigningTargetUnlinksOldSource(t *testing.T) {
	w := wgsources.New(3, 1)
	require.NoError(t, w.SetTarget(0, 0, 1))
	require.NoError(t, w.SetTarget(0, 0, 2))
	assert.False(t, w.IsSource(1, 0, 0))
	assert.True(t, w.IsSource(2, 0, 0))
}

func TestWrapRebuildsSourcesFromExistingGraph(t *testing.T) {
	g := wgsources.New(3, 1)
	require.NoError(t, g.SetTarget(0, 0, 2))
	w := wgsources.Wrap(g.Underlying())
	assert.True(t, w.IsSource(2, 0, 0))
}

func TestSwapNodesExchangesIdentities(t *testing.T) {
	w := wgsources.New(4, 1)
	require.NoError(t, w.SetTarget(0, 0, 2)) // 0 -> 2 (source of c)
	require.NoError(t, w.SetTarget(2, 0, 3)) // c's own outgoing edge
	require.NoError(t, w.SetTarget(3, 0, 2)) // another source of c

	require.NoError(t, w.SwapNodes(2, 1))

	t0, err := w.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), t0, "0's edge into c must now point at d")

	t1, err := w.Target(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), t1, "d must now carry c's former outgoing edge")

	t3, err := w.Target(3, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), t3)
}

func TestSwapNodesSelfLoop(t *testing.T) {
	w := wgsources.New(2, 1)
	require.NoError(t, w.SetTarget(0, 0, 0)) // self-loop on c

	require.NoError(t, w.SwapNodes(0, 1))
	t1, err := w.Target(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), t1, "c's self-loop must become d's self-loop")
}

func TestRenameNodeAdoptsEdgesAndClearsSource(t *testing.T) {
	w := wgsources.New(3, 1)
	require.NoError(t, w.SetTarget(0, 0, 1)) // external source of c
	require.NoError(t, w.SetTarget(1, 0, 2)) // c's own outgoing edge

	require.NoError(t, w.RenameNode(1, 2))

	t0, err := w.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), t0)

	t2, err := w.Target(2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), t2, "c's edge into d (2) becomes d's self-loop")

	t1, err := w.Target(1, 0)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, t1, "c must be fully cleared after rename")
}

func TestMergeNodesTransfersEdgesAndReportsCallbacks(t *testing.T) {
	w := wgsources.New(4, 2)
	require.NoError(t, w.SetTarget(2, 0, 3)) // max's label-0 edge: min has none yet -> new edge
	require.NoError(t, w.SetTarget(1, 1, 0)) // min's own label-1 edge, to node 0
	require.NoError(t, w.SetTarget(2, 1, 3)) // max's label-1 edge, to a different target -> incompat
	require.NoError(t, w.SetTarget(0, 0, 2)) // external in-edge into max, to be redirected to min

	var newEdges [][3]uint32
	var incompats [][2]uint32
	err := w.MergeNodes(1, 2,
		func(s, a, t uint32) { newEdges = append(newEdges, [3]uint32{s, a, t}) },
		func(t1, t2 uint32) { incompats = append(incompats, [2]uint32{t1, t2}) },
	)
	require.NoError(t, err)

	require.Len(t, newEdges, 1)
	assert.Equal(t, [3]uint32{1, 0, 3}, newEdges[0])

	require.Len(t, incompats, 1)
	assert.Equal(t, [2]uint32{0, 3}, incompats[0])

	t1label0, err := w.Target(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), t1label0)

	t1label1, err := w.Target(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), t1label1, "incompatible edge does not overwrite min's existing target")

	t0, err := w.Target(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), t0, "external in-edge into max must be redirected to min")

	t2, err := w.Target(2, 0)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, t2, "max must be fully isolated after merge")
	t2b, err := w.Target(2, 1)
	require.NoError(t, err)
	assert.Equal(t, constants.Undefined, t2b)
}

func TestMergeNodesRequiresMinLessThanMax(t *testing.T) {
	w := wgsources.New(3, 1)
	err := w.MergeNodes(2, 1, nil, nil)
	assert.ErrorIs(t, err, wgsources.ErrInvalidArgument)
}

func TestSwapNodesRejectsNodePinnedByMerge(t *testing.T) {
	w := wgsources.New(3, 1)
	require.NoError(t, w.SetTarget(1, 0, 2)) // gives max an edge, so onNewEdge fires mid-merge
	err := w.MergeNodes(0, 1, func(s, a, tgt uint32) {
		swapErr := w.SwapNodes(1, 2)
		assert.ErrorIs(t, swapErr, wgsources.ErrInvalidState)
	}, nil)
	require.NoError(t, err)
}

func TestAddNodesAndAddToOutDegree(t *testing.T) {
	w := wgsources.New(2, 1)
	require.NoError(t, w.SetTarget(0, 0, 1))
	w.AddNodes(1)
	assert.Equal(t, 3, w.NumberOfNodes())
	assert.True(t, w.IsSource(1, 0, 0))

	w.AddToOutDegree(1)
	assert.Equal(t, 2, w.OutDegree())
	assert.True(t, w.IsSource(1, 0, 0)) // preserved across the rebuild
}
