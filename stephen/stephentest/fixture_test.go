package stephentest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/stephen/stephentest"
	"github.com/arvel-sg/semicore/wordgraph"
)

func TestFixtureSatisfiesFollowPathIdentity(t *testing.T) {
	f := stephentest.New(3, 4)
	f.SetWord([]uint32{0, 1, 2})
	require.NoError(t, f.Run())

	got, err := wordgraph.FollowPath(f.WordGraph(), 0, f.Word())
	require.NoError(t, err)
	assert.Equal(t, f.AcceptState(), got)
}

func TestFixtureSaturatesAtDepth(t *testing.T) {
	f := stephentest.New(2, 2)
	f.SetWord([]uint32{0, 0, 0, 0, 0})
	require.NoError(t, f.Run())
	assert.Equal(t, uint32(2), f.AcceptState())
}

func TestFactoryProducesIndependentRunners(t *testing.T) {
	factory := stephentest.Factory(2, 3)
	a := factory([]uint32{0})
	b := factory([]uint32{1, 1})
	require.NoError(t, a.Run())
	require.NoError(t, b.Run())
	assert.Equal(t, uint32(1), a.AcceptState())
	assert.Equal(t, uint32(2), b.AcceptState())
}
