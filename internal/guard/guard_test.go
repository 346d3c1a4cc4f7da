package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/symbol"
)

func TestInvert_And(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Parameter("b")
	c := symbol.Parameter("c")
	d := symbol.Parameter("d")

	g := guard.And{Children: []guard.Guard{
		guard.BinaryRel{Rel: guard.Eq, Left: a, Right: b},
		guard.BinaryRel{Rel: guard.Lt, Left: c, Right: d},
	}}

	inv, err := guard.Invert(g)
	require.NoError(t, err)

	want := guard.Or{Children: []guard.Guard{
		guard.BinaryRel{Rel: guard.Neq, Left: a, Right: b},
		guard.BinaryRel{Rel: guard.Geq, Left: c, Right: d},
	}}
	assert.Equal(t, want, inv)
}

func TestInvert_TrueFails(t *testing.T) {
	_, err := guard.Invert(guard.TrueGuard{})
	assert.Error(t, err)
}

func TestInvert_DoubleInvertIsIdentity(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Parameter("b")
	g := guard.BinaryRel{Rel: guard.Geq, Left: a, Right: b}

	once, err := guard.Invert(g)
	require.NoError(t, err)
	twice, err := guard.Invert(once)
	require.NoError(t, err)

	assert.Equal(t, g, twice)
}

func TestToDisjunctiveNormalForm_AndOfOrs(t *testing.T) {
	r := guard.BinaryRel{Rel: guard.Eq, Left: symbol.Parameter("r"), Right: symbol.Parameter("r2")}
	s := guard.BinaryRel{Rel: guard.Eq, Left: symbol.Parameter("s"), Right: symbol.Parameter("s2")}
	tt := guard.BinaryRel{Rel: guard.Eq, Left: symbol.Parameter("t"), Right: symbol.Parameter("t2")}
	u := guard.BinaryRel{Rel: guard.Eq, Left: symbol.Parameter("u"), Right: symbol.Parameter("u2")}

	g := guard.And{Children: []guard.Guard{
		guard.Or{Children: []guard.Guard{r, s}},
		guard.Or{Children: []guard.Guard{tt, u}},
	}}

	dnf := guard.ToDisjunctiveNormalForm(g)

	want := guard.DNFOr{Conjuncts: []guard.DNFAnd{
		{Atoms: []guard.BinaryRel{r, tt}},
		{Atoms: []guard.BinaryRel{r, u}},
		{Atoms: []guard.BinaryRel{s, tt}},
		{Atoms: []guard.BinaryRel{s, u}},
	}}
	assert.Equal(t, want, dnf)
}

func TestToDisjunctiveNormalForm_PreservesSemantics(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Parameter("b")
	c := symbol.Parameter("c")

	g := guard.And{Children: []guard.Guard{
		guard.Or{Children: []guard.Guard{
			guard.BinaryRel{Rel: guard.Eq, Left: a, Right: b},
			guard.BinaryRel{Rel: guard.Lt, Left: a, Right: c},
		}},
		guard.BinaryRel{Rel: guard.Neq, Left: b, Right: c},
	}}

	valuations := []guard.Valuation{
		{a: 1, b: 1, c: 2},
		{a: 1, b: 2, c: 2},
		{a: 5, b: 1, c: 1},
		{a: 0, b: 0, c: 0},
	}

	for _, v := range valuations {
		want, err := guard.Evaluate(g, v)
		require.NoError(t, err)
		got, err := guard.Evaluate(guard.ToDisjunctiveNormalForm(g).Guard(), v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "valuation %v", v)
	}
}

func TestSimplifyInequalities_PreservesSemantics(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Parameter("b")

	for _, rel := range []guard.Relation{guard.Geq, guard.Leq, guard.Eq, guard.Neq, guard.Lt, guard.Gt} {
		g := guard.BinaryRel{Rel: rel, Left: a, Right: b}
		simplified := guard.SimplifyInequalities(g)

		for av := int64(0); av < 3; av++ {
			for bv := int64(0); bv < 3; bv++ {
				v := guard.Valuation{a: av, b: bv}
				want, err := guard.Evaluate(g, v)
				require.NoError(t, err)
				got, err := guard.Evaluate(simplified, v)
				require.NoError(t, err)
				assert.Equal(t, want, got, "rel=%v a=%d b=%d", rel, av, bv)
			}
		}
	}
}

func TestFreeVariables(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Register("b")

	g := guard.And{Children: []guard.Guard{
		guard.BinaryRel{Rel: guard.Eq, Left: a, Right: b},
		guard.TrueGuard{},
	}}

	fv := guard.FreeVariables(g)
	require.Len(t, fv, 2)
	assert.Contains(t, fv, a)
	assert.Contains(t, fv, b)
}

func TestEvaluate_UnboundSymbol(t *testing.T) {
	a := symbol.Parameter("a")
	b := symbol.Parameter("b")
	_, err := guard.Evaluate(guard.BinaryRel{Rel: guard.Eq, Left: a, Right: b}, guard.Valuation{a: 1})
	assert.Error(t, err)
}
