package compose

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/symbol"
)

func ringAutomaton(n int) *ra.Automaton {
	a := ra.New("s0")
	for i := 1; i < n; i++ {
		a.MustAddLocation(locName(i), false)
	}
	for i := 0; i < n; i++ {
		from := locName(i)
		to := locName((i + 1) % n)
		a.MustAddTransition(from, symbol.NewLabeledSymbol("x"), guard.TrueGuard{}, nil, to)
	}
	return a
}

func locName(i int) string {
	return "s" + string(rune('0'+i))
}

func smallReplacement() *ra.Automaton {
	r := ra.New("r0")
	r.MustAddLocation("r1", true)
	r.MustAddTransition("r0", symbol.NewLabeledSymbol("y"), guard.TrueGuard{}, nil, "r1")
	return r
}

func TestPartialReplacement_ZeroShareLeavesTransitionCountUnchanged(t *testing.T) {
	a := ringAutomaton(5)
	rng := rand.New(rand.NewSource(1))

	out, err := PartialReplacement(a, 0, []*ra.Automaton{smallReplacement()}, rng)
	require.NoError(t, err)

	assert.Equal(t, len(a.Transitions()), len(out.Transitions()))
	assert.Equal(t, len(a.Locations()), len(out.Locations()))
}

func TestPartialReplacement_FullShareSplicesEveryCandidate(t *testing.T) {
	a := ringAutomaton(5)
	rng := rand.New(rand.NewSource(2))

	out, err := PartialReplacement(a, 1, []*ra.Automaton{smallReplacement()}, rng)
	require.NoError(t, err)

	// every spliced transition adds no new location (r0 merges with the
	// host's from-location and r1, the replacement's rendezvous, merges with
	// the to-location) but turns one x-transition into one y-transition. A
	// 5-ring's maximal independent edge set always holds exactly 2 edges.
	var spliced int
	for _, tr := range out.Transitions() {
		if tr.Symbol.Label == "y" {
			spliced++
		}
	}
	assert.Equal(t, 2, spliced)
}

func TestPartialReplacement_RejectsInitializedReplacement(t *testing.T) {
	a := ringAutomaton(3)
	repl := smallReplacement()
	v := int64(1)
	repl.MustAddRegister("r", &v)

	_, err := PartialReplacement(a, 1, []*ra.Automaton{repl}, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestPartialReplacement_RejectsShareOutOfRange(t *testing.T) {
	a := ringAutomaton(3)
	_, err := PartialReplacement(a, 1.5, []*ra.Automaton{smallReplacement()}, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestPartialReplacement_NeverMutatesInput(t *testing.T) {
	a := ringAutomaton(5)
	before := len(a.Transitions())

	_, err := PartialReplacement(a, 1, []*ra.Automaton{smallReplacement()}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, before, len(a.Transitions()))
}
