// Package ra implements the Register Automaton data model: locations,
// transitions, registers, and an append-only builder enforcing the
// invariants from spec section 3-4.C (unique initial location, unique
// location/register names, assignment targets existing, guard/assignment
// free variables bound).
//
// Storage follows spec section 9's design note: locations and transitions
// live in dense arena slices, transitions reference locations by name (an
// index into name->slot maps) rather than by pointer, which avoids
// ownership cycles and keeps the whole structure cheaply copyable. This
// mirrors internal/ictiobus/automaton's DFA[E]/NFA[E], which key states by
// name in a map rather than linking them with pointers.
package ra

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/symbol"
)

// Automaton is a mutable Register Automaton. The zero value is not usable;
// construct with New.
type Automaton struct {
	initialLoc string

	locOrder  []string
	locations map[string]Location

	regOrder  []string
	registers map[string]bool
	initVal   map[string]int64

	transitions []Transition

	outgoing map[string][]int
	incoming map[string][]int
}

// New creates an Automaton with a single initial, non-accepting location
// named initialLocationName. Use NewAccepting to make the initial location
// accepting too.
func New(initialLocationName string) *Automaton {
	return NewAccepting(initialLocationName, false)
}

// NewAccepting creates an Automaton with a single initial location named
// initialLocationName, with the given acceptance.
func NewAccepting(initialLocationName string, accepting bool) *Automaton {
	a := &Automaton{
		initialLoc: initialLocationName,
		locations:  map[string]Location{},
		registers:  map[string]bool{},
		initVal:    map[string]int64{},
		outgoing:   map[string][]int{},
		incoming:   map[string][]int{},
	}
	a.locOrder = append(a.locOrder, initialLocationName)
	a.locations[initialLocationName] = Location{Name: initialLocationName, IsInitial: true, IsAccepting: accepting}
	return a
}

// InitialLocation returns the automaton's unique initial location. This
// follows the implementation semantics noted as authoritative in spec
// section 9's open question ("return the constructed initial"), not the
// stale "locations.single { it.isAccepting }" documentation from the
// reference implementation.
func (a *Automaton) InitialLocation() Location {
	return a.locations[a.initialLoc]
}

// AddLocation adds a location named name with the given acceptance. If a
// location of that name already exists with matching acceptance, the
// existing location is returned unchanged (idempotent). A conflicting
// re-declaration is an error.
func (a *Automaton) AddLocation(name string, accepting bool) (Location, error) {
	if existing, ok := a.locations[name]; ok {
		if existing.IsAccepting != accepting {
			return Location{}, fmt.Errorf("location %q already declared with accepting=%v, got accepting=%v: %w",
				name, existing.IsAccepting, accepting, rberrors.ErrInconsistentDeclaration)
		}
		return existing, nil
	}
	loc := Location{Name: name, IsAccepting: accepting}
	a.locations[name] = loc
	a.locOrder = append(a.locOrder, name)
	return loc, nil
}

// AddRegister adds a register named name. If initial is non-nil, the
// register's initial valuation is set to *initial. Re-adding a register
// with an identical initial-valuation status (both unset, or both set to
// the same value) is idempotent; changing whether or to what a register is
// initialized is an error.
func (a *Automaton) AddRegister(name string, initial *int64) error {
	if a.registers[name] {
		existingVal, hadVal := a.initVal[name]
		switch {
		case initial == nil && hadVal:
			return fmt.Errorf("register %q already has initial value %d, cannot re-declare uninitialized: %w",
				name, existingVal, rberrors.ErrInconsistentDeclaration)
		case initial != nil && !hadVal:
			return fmt.Errorf("register %q already declared uninitialized, cannot re-declare with initial value %d: %w",
				name, *initial, rberrors.ErrInconsistentDeclaration)
		case initial != nil && hadVal && *initial != existingVal:
			return fmt.Errorf("register %q already has initial value %d, got %d: %w",
				name, existingVal, *initial, rberrors.ErrInconsistentDeclaration)
		default:
			return nil
		}
	}

	a.registers[name] = true
	a.regOrder = append(a.regOrder, name)
	if initial != nil {
		a.initVal[name] = *initial
	}
	return nil
}

// HasRegister reports whether name has been declared.
func (a *Automaton) HasRegister(name string) bool { return a.registers[name] }

// HasLocation reports whether name has been declared.
func (a *Automaton) HasLocation(name string) bool {
	_, ok := a.locations[name]
	return ok
}

// AddTransition appends a transition from `from` to `to` on sym, guarded by
// g, applying assignment. No deduplication is performed, even against a
// structurally identical existing transition.
func (a *Automaton) AddTransition(from string, sym symbol.LabeledSymbol, g guard.Guard, assignment map[string]symbol.Symbol, to string) error {
	if !a.HasLocation(from) {
		return fmt.Errorf("transition source location %q not declared: %w", from, rberrors.ErrInvalidArgument)
	}
	if !a.HasLocation(to) {
		return fmt.Errorf("transition target location %q not declared: %w", to, rberrors.ErrInvalidArgument)
	}

	bound := map[symbol.Symbol]bool{}
	for r := range a.registers {
		bound[symbol.Register(r)] = true
	}
	for _, p := range sym.Parameters() {
		bound[p] = true
	}

	for _, fv := range guard.FreeVariables(g) {
		if !bound[fv] {
			return fmt.Errorf("transition %s->%s: guard free variable %v is neither a register nor a parameter of %v: %w",
				from, to, fv, sym, rberrors.ErrInvalidArgument)
		}
	}

	for target, src := range assignment {
		if !a.HasRegister(target) {
			return fmt.Errorf("transition %s->%s: assignment target register %q not declared: %w",
				from, to, target, rberrors.ErrInvalidArgument)
		}
		if !bound[src] {
			return fmt.Errorf("transition %s->%s: assignment source %v is neither a register nor a parameter of %v: %w",
				from, to, src, sym, rberrors.ErrInvalidArgument)
		}
	}

	idx := len(a.transitions)
	a.transitions = append(a.transitions, Transition{
		From:       from,
		Symbol:     sym,
		Guard:      g,
		Assignment: assignment,
		To:         to,
	})
	a.outgoing[from] = append(a.outgoing[from], idx)
	a.incoming[to] = append(a.incoming[to], idx)
	return nil
}

// Locations returns every declared location, in declaration order.
func (a *Automaton) Locations() []Location {
	out := make([]Location, len(a.locOrder))
	for i, n := range a.locOrder {
		out[i] = a.locations[n]
	}
	return out
}

// Location looks up a declared location by name.
func (a *Automaton) Location(name string) (Location, bool) {
	l, ok := a.locations[name]
	return l, ok
}

// AcceptingLocations returns every accepting location, in declaration
// order.
func (a *Automaton) AcceptingLocations() []Location {
	var out []Location
	for _, n := range a.locOrder {
		if a.locations[n].IsAccepting {
			out = append(out, a.locations[n])
		}
	}
	return out
}

// Registers returns every declared register name, in declaration order.
func (a *Automaton) Registers() []string {
	out := make([]string, len(a.regOrder))
	copy(out, a.regOrder)
	return out
}

// InitialValuation returns the partial register->value map established by
// AddRegister's initial argument.
func (a *Automaton) InitialValuation() map[string]int64 {
	out := make(map[string]int64, len(a.initVal))
	for k, v := range a.initVal {
		out[k] = v
	}
	return out
}

// Transitions returns every transition, in addition order.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// OutgoingFrom returns the transitions leaving name, in addition order.
func (a *Automaton) OutgoingFrom(name string) []Transition {
	idxs := a.outgoing[name]
	out := make([]Transition, len(idxs))
	for i, idx := range idxs {
		out[i] = a.transitions[idx]
	}
	return out
}

// IncomingTo returns the transitions entering name, in addition order.
func (a *Automaton) IncomingTo(name string) []Transition {
	idxs := a.incoming[name]
	out := make([]Transition, len(idxs))
	for i, idx := range idxs {
		out[i] = a.transitions[idx]
	}
	return out
}

// SelfLoopsAt returns the transitions whose From and To both equal name.
func (a *Automaton) SelfLoopsAt(name string) []Transition {
	var out []Transition
	for _, t := range a.OutgoingFrom(name) {
		if t.To == name {
			out = append(out, t)
		}
	}
	return out
}

// NonLoopIncoming returns the transitions entering name whose source is
// not name itself.
func (a *Automaton) NonLoopIncoming(name string) []Transition {
	var out []Transition
	for _, t := range a.IncomingTo(name) {
		if t.From != name {
			out = append(out, t)
		}
	}
	return out
}

// NonLoopOutgoing returns the transitions leaving name whose target is
// not name itself.
func (a *Automaton) NonLoopOutgoing(name string) []Transition {
	var out []Transition
	for _, t := range a.OutgoingFrom(name) {
		if t.To != name {
			out = append(out, t)
		}
	}
	return out
}

// UsedSymbols returns the distinct labeled symbols appearing on any
// transition, ordered by first appearance (declaration order of
// transitions, which is itself deterministic given an ordered builder).
func (a *Automaton) UsedSymbols() []symbol.LabeledSymbol {
	var out []symbol.LabeledSymbol
	seen := map[string]bool{}
	for _, t := range a.transitions {
		if !seen[t.Symbol.Label] {
			seen[t.Symbol.Label] = true
			out = append(out, t.Symbol)
		}
	}
	return out
}
