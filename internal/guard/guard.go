// Package guard implements the inequality theory's boolean guard algebra:
// a closed sum type over True/And/Or/BinaryRel, with evaluation, free
// variable extraction, De Morgan negation, inequality desugaring, and
// conversion to disjunctive normal form.
//
// The sum type is modeled the way internal/tunascript/syntax models its
// AST: a closed interface with a private marker method and exhaustive type
// switches at every operation, rather than an open interface any package
// could implement.
package guard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/symbol"
)

// Relation names a binary relation used in a BinaryRel guard.
type Relation int

const (
	Eq Relation = iota
	Neq
	Geq
	Gt
	Leq
	Lt
)

func (r Relation) String() string {
	switch r {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Geq:
		return ">="
	case Gt:
		return ">"
	case Leq:
		return "<="
	case Lt:
		return "<"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// invertRelation flips a relation per De Morgan's laws for order theory:
// Eq<->Neq, Geq<->Lt, Gt<->Leq, Leq<->Gt, Lt<->Geq.
func invertRelation(r Relation) Relation {
	switch r {
	case Eq:
		return Neq
	case Neq:
		return Eq
	case Geq:
		return Lt
	case Lt:
		return Geq
	case Gt:
		return Leq
	case Leq:
		return Gt
	default:
		panic(fmt.Sprintf("unknown relation %v", r))
	}
}

// Guard is the closed inequality-theory guard sum type: True, And, Or, or
// BinaryRel. No other package may add variants.
type Guard interface {
	fmt.Stringer
	guardNode()
}

// TrueGuard is the constant True.
type TrueGuard struct{}

func (TrueGuard) guardNode() {}
func (TrueGuard) String() string { return "" }

// And is a variadic, possibly-empty conjunction. An empty And is True by
// convention, though generators in this codebase never construct one.
type And struct {
	Children []Guard
}

func (And) guardNode() {}
func (a And) String() string {
	parts := make([]string, len(a.Children))
	for i, c := range a.Children {
		parts[i] = parenthesizeIfCompound(c)
	}
	return strings.Join(parts, " ∧ ")
}

// Or is a variadic, possibly-empty disjunction. An empty Or is False by
// convention; generators never emit one.
type Or struct {
	Children []Guard
}

func (Or) guardNode() {}
func (o Or) String() string {
	parts := make([]string, len(o.Children))
	for i, c := range o.Children {
		parts[i] = parenthesizeIfCompound(c)
	}
	// Note: the separator here is the logical-or glyph, not "∧" - see
	// spec §9's open question about a copy-paste bug in the reference
	// implementation's Or.toString. This implementation uses the correct
	// separator.
	return strings.Join(parts, " ∨ ")
}

func parenthesizeIfCompound(g Guard) string {
	switch g.(type) {
	case And, Or:
		return "(" + g.String() + ")"
	default:
		return g.String()
	}
}

// BinaryRel is a relation between two symbols, e.g. x == y.
type BinaryRel struct {
	Rel   Relation
	Left  symbol.Symbol
	Right symbol.Symbol
}

func (BinaryRel) guardNode() {}
func (b BinaryRel) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Rel, b.Right)
}

// Valuation maps a symbol to its integer value for Evaluate.
type Valuation map[symbol.Symbol]int64

// Evaluate reports whether g holds under v. BinaryRel requires both operand
// symbols to be present in v. And/Or are permitted to short-circuit but are
// not required to.
func Evaluate(g Guard, v Valuation) (bool, error) {
	switch n := g.(type) {
	case TrueGuard:
		return true, nil
	case BinaryRel:
		lv, ok := v[n.Left]
		if !ok {
			return false, fmt.Errorf("evaluate %v: %w: %v", n, rberrors.ErrUnboundSymbol, n.Left)
		}
		rv, ok := v[n.Right]
		if !ok {
			return false, fmt.Errorf("evaluate %v: %w: %v", n, rberrors.ErrUnboundSymbol, n.Right)
		}
		switch n.Rel {
		case Eq:
			return lv == rv, nil
		case Neq:
			return lv != rv, nil
		case Geq:
			return lv >= rv, nil
		case Gt:
			return lv > rv, nil
		case Leq:
			return lv <= rv, nil
		case Lt:
			return lv < rv, nil
		default:
			return false, fmt.Errorf("evaluate %v: unknown relation %v", n, n.Rel)
		}
	case And:
		for _, c := range n.Children {
			ok, err := Evaluate(c, v)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case Or:
		for _, c := range n.Children {
			ok, err := Evaluate(c, v)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("evaluate: unrecognized guard node %T", g)
	}
}

// FreeVariables returns the set of symbols appearing as leaves of g, keyed
// by symbol for O(1) membership and returned sorted for deterministic
// iteration downstream.
func FreeVariables(g Guard) []symbol.Symbol {
	seen := map[symbol.Symbol]bool{}
	collectFreeVariables(g, seen)
	out := make([]symbol.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind() != out[j].Kind() {
			return out[i].Kind() < out[j].Kind()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

func collectFreeVariables(g Guard, into map[symbol.Symbol]bool) {
	switch n := g.(type) {
	case TrueGuard:
	case BinaryRel:
		into[n.Left] = true
		into[n.Right] = true
	case And:
		for _, c := range n.Children {
			collectFreeVariables(c, into)
		}
	case Or:
		for _, c := range n.Children {
			collectFreeVariables(c, into)
		}
	}
}

// Invert applies De Morgan's laws to push negation to the leaves, flipping
// every binary relation. It fails with ErrTrueNotInvertible if any subterm
// is True, since negation of True has no representation in this theory.
func Invert(g Guard) (Guard, error) {
	switch n := g.(type) {
	case TrueGuard:
		return nil, fmt.Errorf("invert True: %w", rberrors.ErrTrueNotInvertible)
	case BinaryRel:
		return BinaryRel{Rel: invertRelation(n.Rel), Left: n.Left, Right: n.Right}, nil
	case And:
		// ¬(a ∧ b ∧ ...) = ¬a ∨ ¬b ∨ ...
		out := make([]Guard, len(n.Children))
		for i, c := range n.Children {
			inv, err := Invert(c)
			if err != nil {
				return nil, err
			}
			out[i] = inv
		}
		return Or{Children: out}, nil
	case Or:
		// ¬(a ∨ b ∨ ...) = ¬a ∧ ¬b ∧ ...
		out := make([]Guard, len(n.Children))
		for i, c := range n.Children {
			inv, err := Invert(c)
			if err != nil {
				return nil, err
			}
			out[i] = inv
		}
		return And{Children: out}, nil
	default:
		return nil, fmt.Errorf("invert: unrecognized guard node %T", g)
	}
}

// SimplifyInequalities rewrites x >= y into (x > y) || (x == y) and
// x <= y into (x < y) || (x == y), recursively through And/Or. Eq, Neq,
// Gt, Lt, and True are fixed points.
func SimplifyInequalities(g Guard) Guard {
	switch n := g.(type) {
	case TrueGuard:
		return n
	case BinaryRel:
		switch n.Rel {
		case Geq:
			return Or{Children: []Guard{
				BinaryRel{Rel: Gt, Left: n.Left, Right: n.Right},
				BinaryRel{Rel: Eq, Left: n.Left, Right: n.Right},
			}}
		case Leq:
			return Or{Children: []Guard{
				BinaryRel{Rel: Lt, Left: n.Left, Right: n.Right},
				BinaryRel{Rel: Eq, Left: n.Left, Right: n.Right},
			}}
		default:
			return n
		}
	case And:
		out := make([]Guard, len(n.Children))
		for i, c := range n.Children {
			out[i] = SimplifyInequalities(c)
		}
		return And{Children: out}
	case Or:
		out := make([]Guard, len(n.Children))
		for i, c := range n.Children {
			out[i] = SimplifyInequalities(c)
		}
		return Or{Children: out}
	default:
		panic(fmt.Sprintf("simplifyInequalities: unrecognized guard node %T", g))
	}
}

// DNFAnd is a conjunction of BinaryRel atoms in a disjunctive normal form.
type DNFAnd struct {
	Atoms []BinaryRel
}

// DNFOr is a disjunction of DNFAnd conjunctions: the disjunctive normal
// form produced by ToDisjunctiveNormalForm.
type DNFOr struct {
	Conjuncts []DNFAnd
}

// Guard converts the DNF back into a plain Guard tree.
func (d DNFOr) Guard() Guard {
	if len(d.Conjuncts) == 0 {
		return Or{}
	}
	disjuncts := make([]Guard, len(d.Conjuncts))
	for i, conj := range d.Conjuncts {
		atoms := make([]Guard, len(conj.Atoms))
		for j, a := range conj.Atoms {
			atoms[j] = a
		}
		disjuncts[i] = And{Children: atoms}
	}
	return Or{Children: disjuncts}
}

// ToDisjunctiveNormalForm converts g into DNF. True becomes the empty
// disjunction deliberately (the RALib-safe printers render it as the
// empty guard string); And performs a
// pairwise cartesian product of its children's conjuncts; Or concatenates.
func ToDisjunctiveNormalForm(g Guard) DNFOr {
	switch n := g.(type) {
	case TrueGuard:
		return DNFOr{}
	case BinaryRel:
		return DNFOr{Conjuncts: []DNFAnd{{Atoms: []BinaryRel{n}}}}
	case And:
		if len(n.Children) == 0 {
			return DNFOr{Conjuncts: []DNFAnd{{}}}
		}
		acc := ToDisjunctiveNormalForm(n.Children[0])
		for _, c := range n.Children[1:] {
			acc = dnfCartesianProduct(acc, ToDisjunctiveNormalForm(c))
		}
		return acc
	case Or:
		var out DNFOr
		for _, c := range n.Children {
			out.Conjuncts = append(out.Conjuncts, ToDisjunctiveNormalForm(c).Conjuncts...)
		}
		return out
	default:
		panic(fmt.Sprintf("toDisjunctiveNormalForm: unrecognized guard node %T", g))
	}
}

// dnfCartesianProduct combines two DNFs by forming every pairwise
// concatenation of their conjuncts' atoms, in lexicographic order on the
// index pair (left conjunct index, right conjunct index).
func dnfCartesianProduct(left, right DNFOr) DNFOr {
	var out DNFOr
	for _, l := range left.Conjuncts {
		for _, r := range right.Conjuncts {
			merged := make([]BinaryRel, 0, len(l.Atoms)+len(r.Atoms))
			merged = append(merged, l.Atoms...)
			merged = append(merged, r.Atoms...)
			out.Conjuncts = append(out.Conjuncts, DNFAnd{Atoms: merged})
		}
	}
	return out
}
