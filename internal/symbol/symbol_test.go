package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/rabench/internal/symbol"
)

func TestParameterAndRegister_ReportDistinctKinds(t *testing.T) {
	p := symbol.Parameter("x")
	r := symbol.Register("x")

	assert.True(t, p.IsParameter())
	assert.False(t, p.IsRegister())
	assert.True(t, r.IsRegister())
	assert.Equal(t, "x", p.Name())
	assert.False(t, p.Equal(r))
}

func TestSymbol_StringDistinguishesRegisters(t *testing.T) {
	assert.Equal(t, "x", symbol.Parameter("x").String())
	assert.Equal(t, "$x", symbol.Register("x").String())
}

func TestNewLabeledSymbol_PanicsOnDuplicateParameter(t *testing.T) {
	assert.Panics(t, func() {
		symbol.NewLabeledSymbol("a", "x", "x")
	})
}

func TestNewLabeledSymbol_PreservesOrderAndArity(t *testing.T) {
	ls := symbol.NewLabeledSymbol("a", "x", "y", "z")
	assert.Equal(t, 3, ls.Arity())
	assert.Equal(t, "y", ls.At(1).Name())
	assert.Equal(t, "a(x, y, z)", ls.String())
}

func TestLabeledSymbol_EqualComparesLabelAndParams(t *testing.T) {
	a := symbol.NewLabeledSymbol("a", "x", "y")
	b := symbol.NewLabeledSymbol("a", "x", "y")
	c := symbol.NewLabeledSymbol("a", "x", "z")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
