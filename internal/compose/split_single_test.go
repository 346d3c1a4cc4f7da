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

// splittableAutomaton builds: two sources (src0, src1) both feeding q, q
// feeding two sinks (dst0, dst1, both accepting). q has 2 non-loop
// incoming and 2 non-loop outgoing transitions, is non-initial and
// non-accepting - a valid split candidate.
func splittableAutomaton() *ra.Automaton {
	a := ra.New("src0")
	a.MustAddLocation("src1", false)
	a.MustAddLocation("q", false)
	a.MustAddLocation("dst0", true)
	a.MustAddLocation("dst1", true)

	sym := symbol.NewLabeledSymbol("x")
	a.MustAddTransition("src0", sym, guard.TrueGuard{}, nil, "q")
	a.MustAddTransition("src1", sym, guard.TrueGuard{}, nil, "q")
	a.MustAddTransition("q", sym, guard.TrueGuard{}, nil, "dst0")
	a.MustAddTransition("q", sym, guard.TrueGuard{}, nil, "dst1")
	a.MustAddTransition("src0", sym, guard.TrueGuard{}, nil, "src1") // unrelated edge
	return a
}

func twoLocationDiscriminator() *ra.Automaton {
	d := ra.New("d0")
	d.MustAddLocation("d1", true)
	d.MustAddTransition("d0", symbol.NewLabeledSymbol("z"), guard.TrueGuard{}, nil, "d1")
	return d
}

func TestSplitSingle_LocationCountInvariant(t *testing.T) {
	a := splittableAutomaton()
	before := len(a.Locations())

	d := twoLocationDiscriminator() // |D.locations| = 2

	out, err := SplitSingle(a, d, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	want := before + 4 + 2*(len(d.Locations())-2)
	assert.Equal(t, want, len(out.Locations()))
}

func TestSplitSingle_NoCandidateFails(t *testing.T) {
	a := ra.New("s0")
	a.MustAddLocation("s1", true)
	a.MustAddTransition("s0", symbol.NewLabeledSymbol("x"), guard.TrueGuard{}, nil, "s1")

	_, err := SplitSingle(a, twoLocationDiscriminator(), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestSplitSingle_RejectsInitializedDiscriminator(t *testing.T) {
	a := splittableAutomaton()
	d := twoLocationDiscriminator()
	v := int64(1)
	d.MustAddRegister("r", &v)

	_, err := SplitSingle(a, d, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestSplitSingle_NeverMutatesInput(t *testing.T) {
	a := splittableAutomaton()
	before := len(a.Transitions())

	_, err := SplitSingle(a, twoLocationDiscriminator(), rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.Equal(t, before, len(a.Transitions()))
}
