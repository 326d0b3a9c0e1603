package cutting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/cutting"
	"github.com/arvel-sg/semicore/stephen/stephentest"
)

func TestRunTerminatesWithSingleRClassOnTotalFixture(t *testing.T) {
	// The fixture's word graph is total (every (state, letter) pair is
	// defined from the start), so every candidate is a left factor of
	// every other: the very first Stephen automaton always matches, and
	// no new R-class is ever pushed.
	e := cutting.New(2, stephentest.Factory(2, 3))

	r, err := e.NumberOfRClasses()
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	d, err := e.NumberOfDClasses()
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	size, err := e.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size) // depth 3 -> 4-node chain
}

func TestRunIsIdempotent(t *testing.T) {
	e := cutting.New(1, stephentest.Factory(1, 2))
	require.NoError(t, e.Run())
	require.NoError(t, e.Run())
	r, err := e.NumberOfRClasses()
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}
