package xmlio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/wiki"
)

func sampleRA() *wiki.WikiRA {
	return &wiki.WikiRA{
		Alphabet: wiki.Alphabet{
			Inputs:  []wiki.WikiSymbol{{Name: "Ix", Params: []wiki.Param{{Name: "p0", Type: "int"}}}},
			Outputs: []wiki.WikiSymbol{{Name: "OAccept"}, {Name: "OReject"}},
		},
		Constants: []wiki.WikiRegister{{Name: "limit", Type: "INT", Value: "1000"}},
		Globals:   []wiki.WikiRegister{{Name: "acc", Type: "INT", Value: "0"}},
		Locations: []wiki.WikiLocation{
			{Initial: true, Name: "q0"},
			{Name: "q1"},
		},
		Transitions: []wiki.WikiTransition{
			{
				From:   "q0",
				Params: []string{"p0"},
				Symbol: "Ix",
				To:     "q1",
				Guard: wiki.WikiRel{
					Rel:   guard.Neq,
					Left:  wiki.Variable{Name: "p0"},
					Right: wiki.Constant{Value: 1000},
				},
				Assignments: []wiki.Assignment{{To: "acc", From: wiki.Variable{Name: "p0"}}},
			},
			{
				From:   "q1",
				Symbol: "OAccept",
				To:     "q0",
				Guard:  wiki.WikiTrue{},
			},
		},
	}
}

func TestEncode_UsesRALibSafeGuardDialect(t *testing.T) {
	out, err := Encode(sampleRA())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, `<guard>p0!=1000</guard>`)
	assert.NotContains(t, text, "(p0")
}

func TestEncode_OmitsAbsentGuardAndInitialAttr(t *testing.T) {
	out, err := Encode(sampleRA())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, `<location name="q1"></location>`)
	assert.Contains(t, text, `initial="true" name="q0"`)
	// the q1->q0 transition's True guard encodes to "" and is omitted.
	assert.NotContains(t, text, `<guard></guard>`)
}

func TestDecode_RoundTripsStructure(t *testing.T) {
	original := sampleRA()
	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Locations, 2)
	assert.True(t, decoded.Locations[0].Initial)
	assert.Equal(t, "q0", decoded.Locations[0].Name)

	require.Len(t, decoded.Transitions, 2)
	first := decoded.Transitions[0]
	assert.Equal(t, "q0", first.From)
	assert.Equal(t, "q1", first.To)
	assert.Equal(t, []string{"p0"}, first.Params)

	rel, ok := first.Guard.(wiki.WikiRel)
	require.True(t, ok)
	assert.Equal(t, guard.Neq, rel.Rel)
	assert.Equal(t, wiki.Constant{Value: 1000}, rel.Right)

	require.Len(t, first.Assignments, 1)
	assert.Equal(t, "acc", first.Assignments[0].To)
	assert.Equal(t, wiki.Variable{Name: "p0"}, first.Assignments[0].From)
}

func TestDecode_RejectsMalformedGuard(t *testing.T) {
	data := []byte(`<register-automaton>
  <alphabet><inputs></inputs><outputs></outputs></alphabet>
  <locations><location initial="true" name="q0"></location></locations>
  <transitions>
    <transition from="q0" to="q0" symbol="x"><guard>a == )</guard></transition>
  </transitions>
</register-automaton>`)
	_, err := Decode(data)
	assert.Error(t, err)
}
