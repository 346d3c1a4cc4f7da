package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
)

func buildWorkedExampleTree() *ExtendedTree {
	return TupleToTree([]int{1, 1, 2, 3, 3, 3, 4, 4}, 3)
}

func TestLiftToRA_LocationPerInternalNode(t *testing.T) {
	tree := buildWorkedExampleTree()
	rng := rand.New(rand.NewSource(99))

	a, err := LiftToRA(tree, LiftOptions{
		Alphabet:      []string{"a", "b", "c"},
		DefaultGuard:  guard.TrueGuard{},
		InitialPrefix: "q",
		Rng:           rng,
	})
	require.NoError(t, err)

	locs := a.Locations()
	assert.Len(t, locs, 4) // root, c, c.b, c.c
	assert.True(t, locs[0].IsInitial)
	assert.Equal(t, "q", locs[0].Name)

	for _, loc := range locs {
		out := a.OutgoingFrom(loc.Name)
		require.Len(t, out, 3)
	}
}

func TestLiftToRA_Deterministic(t *testing.T) {
	tree := buildWorkedExampleTree()
	opts := LiftOptions{
		Alphabet:      []string{"a", "b", "c"},
		DefaultGuard:  guard.TrueGuard{},
		InitialPrefix: "q",
	}

	opts.Rng = rand.New(rand.NewSource(5))
	a1, err := LiftToRA(tree, opts)
	require.NoError(t, err)

	opts.Rng = rand.New(rand.NewSource(5))
	a2, err := LiftToRA(tree, opts)
	require.NoError(t, err)

	assert.Equal(t, a1.Transitions(), a2.Transitions())
	assert.Equal(t, a1.AcceptingLocations(), a2.AcceptingLocations())
}

func TestLiftToRA_RejectsEmptyAlphabet(t *testing.T) {
	tree := buildWorkedExampleTree()
	_, err := LiftToRA(tree, LiftOptions{Rng: rand.New(rand.NewSource(1))})
	assert.Error(t, err)
}
