package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/forest"
)

func TestNewForestAllRoots(t *testing.T) {
	f := forest.New(4)
	for v := uint32(0); v < 4; v++ {
		assert.Equal(t, constants.Undefined, f.Parent(v))
		assert.Equal(t, constants.Undefined, f.Label(v))
	}
}

func TestSetParentAndLabelOutOfBounds(t *testing.T) {
	f := forest.New(2)
	assert.ErrorIs(t, f.SetParentAndLabel(5, 0, 0), forest.ErrOutOfBounds)
	assert.ErrorIs(t, f.SetParentAndLabel(0, 5, 0), forest.ErrOutOfBounds)
}

func TestSetParentAndLabelSelf(t *testing.T) {
	f := forest.New(2)
	assert.ErrorIs(t, f.SetParentAndLabel(0, 0, 0), forest.ErrSelfParent)
}

func TestSetParentAndLabelRejectsCycle(t *testing.T) {
	f := forest.New(3)
	require.NoError(t, f.SetParentAndLabel(1, 0, 10))
	require.NoError(t, f.SetParentAndLabel(2, 1, 20))
	// 0 -> 2 would close the cycle 0 -> 2 -> 1 -> 0.
	assert.ErrorIs(t, f.SetParentAndLabel(0, 2, 30), forest.ErrNotAcyclic)
}

func buildChain(t *testing.T, n int) *forest.Forest {
	t.Helper()
	f := forest.New(n)
	for v := 1; v < n; v++ {
		require.NoError(t, f.SetParentAndLabel(uint32(v), uint32(v-1), uint32(v)))
	}
	return f
}

func TestPathToAndFromRoot(t *testing.T) {
	f := buildChain(t, 5)
	toRoot, err := f.PathToRoot(4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 3, 2, 1}, toRoot)

	fromRoot, err := f.PathFromRoot(4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 4}, fromRoot)
}

func TestDepth(t *testing.T) {
	f := buildChain(t, 5)
	for v := 0; v < 5; v++ {
		d, err := f.Depth(uint32(v))
		require.NoError(t, err)
		assert.Equal(t, v, d)
	}
}

func TestDepthReflectsReparentingAfterAPriorQuery(t *testing.T) {
	f := forest.New(4)
	require.NoError(t, f.SetParentAndLabel(1, 0, 10))
	require.NoError(t, f.SetParentAndLabel(2, 1, 20))
	d, err := f.Depth(2)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	// Reparent 1 under a new node 3, growing 2's ancestor chain by one.
	require.NoError(t, f.SetParentAndLabel(3, 0, 30))
	require.NoError(t, f.SetParentAndLabel(1, 3, 40))

	d, err = f.Depth(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = f.Depth(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestIsAcyclicUnchecked(t *testing.T) {
	f := forest.New(3)
	f.SetParentAndLabelNoChecks(0, 1, 0)
	f.SetParentAndLabelNoChecks(1, 2, 0)
	f.SetParentAndLabelNoChecks(2, 0, 0)
	assert.False(t, f.IsAcyclic())
}

func TestIsAcyclicTree(t *testing.T) {
	f := buildChain(t, 6)
	assert.True(t, f.IsAcyclic())
}

func TestPathsFromRootsVisitsEveryNode(t *testing.T) {
	// A small branching tree:
	//      0
	//     / \
	//    1   2
	//   /
	//  3
	f := forest.New(4)
	require.NoError(t, f.SetParentAndLabel(1, 0, 11))
	require.NoError(t, f.SetParentAndLabel(2, 0, 12))
	require.NoError(t, f.SetParentAndLabel(3, 1, 13))

	it := f.NewPathsFromRoots()
	got := map[uint32][]uint32{}
	for {
		v, labels, ok := it.Next()
		if !ok {
			break
		}
		got[v] = append([]uint32(nil), labels...)
	}
	assert.Equal(t, []uint32{}, orEmpty(got[0]))
	assert.Equal(t, []uint32{11}, got[1])
	assert.Equal(t, []uint32{12}, got[2])
	assert.Equal(t, []uint32{11, 13}, got[3])
}

func TestPathsToRootsReversesOrder(t *testing.T) {
	f := buildChain(t, 4)
	it := f.NewPathsToRoots()
	for {
		v, labels, ok := it.Next()
		if !ok {
			break
		}
		expected, err := f.PathToRoot(v)
		require.NoError(t, err)
		assert.Equal(t, expected, labels)
	}
}

func orEmpty(xs []uint32) []uint32 {
	if xs == nil {
		return []uint32{}
	}
	return xs
}
