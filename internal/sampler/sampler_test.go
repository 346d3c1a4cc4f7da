package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
)

func TestChamparnaudParanthoenRA_Deterministic(t *testing.T) {
	opts := Options{
		NStates:      3,
		Alphabet:     []string{"a", "b"},
		DefaultGuard: guard.TrueGuard{},
		Seed:         1,
	}

	ra1, err := ChamparnaudParanthoenRA(opts)
	require.NoError(t, err)
	ra2, err := ChamparnaudParanthoenRA(opts)
	require.NoError(t, err)

	assert.Equal(t, len(ra1.Locations()), len(ra2.Locations()))
	assert.Equal(t, ra1.Transitions(), ra2.Transitions())
}

func TestChamparnaudParanthoenRA_ShapePerLocation(t *testing.T) {
	ra1, err := ChamparnaudParanthoenRA(Options{
		NStates:      3,
		Alphabet:     []string{"a", "b"},
		DefaultGuard: guard.TrueGuard{},
		Seed:         1,
	})
	require.NoError(t, err)

	locs := ra1.Locations()
	assert.Len(t, locs, 3)
	assert.Len(t, ra1.Transitions(), 6)

	for _, loc := range locs {
		out := ra1.OutgoingFrom(loc.Name)
		require.Len(t, out, 2)
		letters := map[string]bool{}
		for _, tr := range out {
			letters[tr.Symbol.Label] = true
		}
		assert.True(t, letters["a"])
		assert.True(t, letters["b"])
	}
}

func TestChamparnaudParanthoenRA_RejectsTooSmallAlphabet(t *testing.T) {
	_, err := ChamparnaudParanthoenRA(Options{
		NStates:  2,
		Alphabet: []string{"a"},
	})
	assert.Error(t, err)
}

func TestChamparnaudParanthoenRA_ShapePerLocationNonBinaryAlphabet(t *testing.T) {
	// alphabet sizes above 2 exercise the m != 2 case of the counting
	// table's T = NStates*(m-1) parameterization; NStates must still equal
	// the resulting location count.
	ra1, err := ChamparnaudParanthoenRA(Options{
		NStates:      4,
		Alphabet:     []string{"a", "b", "c"},
		DefaultGuard: guard.TrueGuard{},
		Seed:         1,
	})
	require.NoError(t, err)

	locs := ra1.Locations()
	assert.Len(t, locs, 4)
	assert.Len(t, ra1.Transitions(), 12)

	for _, loc := range locs {
		out := ra1.OutgoingFrom(loc.Name)
		require.Len(t, out, 3)
		letters := map[string]bool{}
		for _, tr := range out {
			letters[tr.Symbol.Label] = true
		}
		assert.True(t, letters["a"])
		assert.True(t, letters["b"])
		assert.True(t, letters["c"])
	}
}
