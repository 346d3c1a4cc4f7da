package compose

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
)

// Concat builds a fresh automaton that runs a then b: a's rendezvous
// location (findFirstTerminal(a)) is merged with b's initial location, so
// b's transitions out of its initial location become transitions out of
// the rendezvous. a's locations are renamed with an "l_" prefix, b's
// non-initial locations with "r_"; the merged location is named
// "l_<a-rendezvous>+r_<b-initial>". A merged location is accepting if
// either original was.
//
// Registers union-merge by name; if b declares an initial value for a
// register a already has, Concat fails with ErrRegisterConflict.
func Concat(a, b *ra.Automaton) (*ra.Automaton, error) {
	aInit := a.InitialLocation().Name
	bInit := b.InitialLocation().Name

	aTerm, err := findFirstTerminal(a)
	if err != nil {
		return nil, err
	}

	merged := "l_" + aTerm + "+r_" + bInit

	renameA := func(name string) string {
		if name == aTerm {
			return merged
		}
		return "l_" + name
	}
	renameB := func(name string) string {
		if name == bInit {
			return merged
		}
		return "r_" + name
	}

	accepting := map[string]bool{}
	var order []string
	for _, loc := range a.Locations() {
		n := renameA(loc.Name)
		if _, ok := accepting[n]; !ok {
			order = append(order, n)
		}
		accepting[n] = accepting[n] || loc.IsAccepting
	}
	for _, loc := range b.Locations() {
		n := renameB(loc.Name)
		if _, ok := accepting[n]; !ok {
			order = append(order, n)
		}
		accepting[n] = accepting[n] || loc.IsAccepting
	}

	initialName := renameA(aInit)
	out := ra.NewAccepting(initialName, accepting[initialName])
	for _, n := range order {
		if n == initialName {
			continue
		}
		if _, err := out.AddLocation(n, accepting[n]); err != nil {
			return nil, err
		}
	}

	aInitVal := a.InitialValuation()
	for _, r := range a.Registers() {
		v, hasVal := aInitVal[r]
		var vp *int64
		if hasVal {
			vp = &v
		}
		if err := out.AddRegister(r, vp); err != nil {
			return nil, err
		}
	}

	bInitVal := b.InitialValuation()
	for _, r := range b.Registers() {
		v, hasVal := bInitVal[r]
		if hasVal {
			if a.HasRegister(r) {
				return nil, fmt.Errorf("concat: register %q already present in the left automaton: %w", r, rberrors.ErrRegisterConflict)
			}
			vv := v
			if err := out.AddRegister(r, &vv); err != nil {
				return nil, err
			}
			continue
		}
		if err := out.AddRegister(r, nil); err != nil {
			return nil, err
		}
	}

	for _, t := range a.Transitions() {
		if err := out.AddTransition(renameA(t.From), t.Symbol, t.Guard, t.Assignment, renameA(t.To)); err != nil {
			return nil, err
		}
	}
	for _, t := range b.Transitions() {
		if err := out.AddTransition(renameB(t.From), t.Symbol, t.Guard, t.Assignment, renameB(t.To)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
