// Package symbol implements the term algebra that guards and transitions are
// built from: parameters bound per-transition by an input symbol's arity,
// and registers bound per-location by the current valuation.
package symbol

import "fmt"

// Kind distinguishes the two Symbol variants.
type Kind int

const (
	// KindParameter marks a Symbol as a Parameter, bound by the arity of the
	// input symbol on the transition it appears in.
	KindParameter Kind = iota
	// KindRegister marks a Symbol as a Register, bound by the owning
	// automaton's current valuation.
	KindRegister
)

func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "param"
	case KindRegister:
		return "register"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol is a Parameter or a Register. The two variants are disjoint;
// equality is structural on (Kind, Name).
type Symbol struct {
	kind Kind
	name string
}

// Parameter builds a Symbol naming a transition parameter.
func Parameter(name string) Symbol {
	return Symbol{kind: KindParameter, name: name}
}

// Register builds a Symbol naming a register.
func Register(name string) Symbol {
	return Symbol{kind: KindRegister, name: name}
}

// Kind reports whether s is a Parameter or a Register.
func (s Symbol) Kind() Kind { return s.kind }

// Name returns the symbol's name, independent of its kind.
func (s Symbol) Name() string { return s.name }

// IsParameter reports whether s is a Parameter.
func (s Symbol) IsParameter() bool { return s.kind == KindParameter }

// IsRegister reports whether s is a Register.
func (s Symbol) IsRegister() bool { return s.kind == KindRegister }

func (s Symbol) String() string {
	switch s.kind {
	case KindParameter:
		return s.name
	case KindRegister:
		return "$" + s.name
	default:
		return s.name
	}
}

// Equal reports structural equality: same variant and same name.
func (s Symbol) Equal(o Symbol) bool {
	return s.kind == o.kind && s.name == o.name
}

// LabeledSymbol is an input letter with an ordered list of Parameters.
// Parameter names are pairwise distinct within one LabeledSymbol.
type LabeledSymbol struct {
	Label      string
	parameters []Symbol
}

// NewLabeledSymbol builds a LabeledSymbol from a label and parameter names,
// in the given order. It panics if parameter names collide, mirroring the
// "invariant" phrasing of the spec for construction-time invariants on
// value types (cf. internal/ra's builder, which reports such conflicts as
// errors instead, since it is mutable and long-lived).
func NewLabeledSymbol(label string, paramNames ...string) LabeledSymbol {
	seen := make(map[string]bool, len(paramNames))
	params := make([]Symbol, len(paramNames))
	for i, n := range paramNames {
		if seen[n] {
			panic(fmt.Sprintf("labeled symbol %q: duplicate parameter name %q", label, n))
		}
		seen[n] = true
		params[i] = Parameter(n)
	}
	return LabeledSymbol{Label: label, parameters: params}
}

// Arity returns the number of parameters this symbol carries.
func (ls LabeledSymbol) Arity() int { return len(ls.parameters) }

// Parameters returns the ordered parameter list.
func (ls LabeledSymbol) Parameters() []Symbol {
	out := make([]Symbol, len(ls.parameters))
	copy(out, ls.parameters)
	return out
}

// At returns the parameter at index i.
func (ls LabeledSymbol) At(i int) Symbol { return ls.parameters[i] }

func (ls LabeledSymbol) String() string {
	s := ls.Label
	if len(ls.parameters) > 0 {
		s += "("
		for i, p := range ls.parameters {
			if i > 0 {
				s += ", "
			}
			s += p.Name()
		}
		s += ")"
	}
	return s
}

// Equal reports whether ls and o have the same label and parameter names in
// the same order.
func (ls LabeledSymbol) Equal(o LabeledSymbol) bool {
	if ls.Label != o.Label || len(ls.parameters) != len(o.parameters) {
		return false
	}
	for i := range ls.parameters {
		if !ls.parameters[i].Equal(o.parameters[i]) {
			return false
		}
	}
	return true
}
