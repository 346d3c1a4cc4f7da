package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/symbol"
)

func twoLocationChain(name string) *ra.Automaton {
	a := ra.New(name + "0")
	a.MustAddLocation(name+"1", true)
	a.MustAddTransition(name+"0", symbol.NewLabeledSymbol("x"), guard.TrueGuard{}, nil, name+"1")
	return a
}

func TestConcat_RendezvousMerge(t *testing.T) {
	a := twoLocationChain("a")
	b := twoLocationChain("b")

	out, err := Concat(a, b)
	require.NoError(t, err)

	assert.Equal(t, "l_a0", out.InitialLocation().Name)

	merged := "l_a1+r_b0"
	_, ok := out.Location(merged)
	assert.True(t, ok, "merged rendezvous/initial location should exist")

	// a1 --x--> merged location's transitions come from b0, now emerge from merged
	out1 := out.OutgoingFrom(merged)
	require.Len(t, out1, 1)
	assert.Equal(t, "r_b1", out1[0].To)
}

func TestConcat_RegisterConflictFails(t *testing.T) {
	a := ra.NewAccepting("a0", true)
	v := int64(1)
	a.MustAddRegister("shared", &v)

	b := ra.New("b0")
	v2 := int64(2)
	b.MustAddRegister("shared", &v2)

	_, err := Concat(a, b)
	assert.ErrorIs(t, err, rberrors.ErrRegisterConflict)
}

func TestConcat_NeverMutatesInputs(t *testing.T) {
	a := twoLocationChain("a")
	b := twoLocationChain("b")

	aLocsBefore := len(a.Locations())
	bLocsBefore := len(b.Locations())

	_, err := Concat(a, b)
	require.NoError(t, err)

	assert.Equal(t, aLocsBefore, len(a.Locations()))
	assert.Equal(t, bLocsBefore, len(b.Locations()))
}
