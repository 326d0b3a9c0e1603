package cirpons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvel-sg/semicore/cirpons"
	"github.com/arvel-sg/semicore/presentation"
	"github.com/arvel-sg/semicore/stephen/stephentest"
)

func trivialPresentation(alphabetSize int) *presentation.InversePresentation {
	inverses := make([]uint32, alphabetSize)
	for a := range inverses {
		inverses[a] = uint32(a)
	}
	return presentation.New(alphabetSize, inverses)
}

func TestRunTerminatesAndCountsFixtureChainWithNoRules(t *testing.T) {
	// The fixture's chain has the same topology for every word, so the
	// very first disjoint union already defines every (state, letter)
	// pair; with no rules to close over, the main loop does no further
	// work and every node remains its own class.
	e := cirpons.New(trivialPresentation(2), stephentest.Factory(2, 3))
	n, err := e.NumberOfClasses()
	require.NoError(t, err)
	assert.Equal(t, 4, n) // depth 3 -> 4 states: 0,1,2,3
}

func TestRunClosesOverRuleAndMergesClasses(t *testing.T) {
	// alphabet {0}, rule 0^3 = 0 (word [0,0,0] equals word [0]).
	// stephentest.Fixture(1, depth=2) ignores the presentation and always
	// builds the chain 0 --0--> 1 --0--> 2 --0--> 2 (2 self-loops). Tracing
	// the rule from node 0: following [0,0,0] reaches 2, following [0]
	// reaches 1 - a coincidence, merging 1 and 2. After the merge, node 2
	// is isolated and never revisited by the main loop, so classes{0},{1,2}
	// is the exact closed result: 2 classes, not 3.
	p := trivialPresentation(1)
	p.AddRule([]uint32{0, 0, 0}, []uint32{0})

	e := cirpons.New(p, stephentest.Factory(1, 2))
	n, err := e.NumberOfClasses()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNumberOfClassesIsIdempotent(t *testing.T) {
	e := cirpons.New(trivialPresentation(1), stephentest.Factory(1, 2))
	first, err := e.NumberOfClasses()
	require.NoError(t, err)
	second, err := e.NumberOfClasses()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunIsIdempotent(t *testing.T) {
	e := cirpons.New(trivialPresentation(2), stephentest.Factory(2, 2))
	require.NoError(t, e.Run())
	require.NoError(t, e.Run())
}

func TestNewRejectsNilPresentation(t *testing.T) {
	e := cirpons.New(nil, stephentest.Factory(1, 1))
	_, err := e.NumberOfClasses()
	require.ErrorIs(t, err, cirpons.ErrNoPresentation)
}
