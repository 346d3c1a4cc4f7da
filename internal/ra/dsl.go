package ra

import (
	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/symbol"
)

// MustAddLocation is AddLocation but panics on error, for call sites (tests,
// the sampler's deterministic lifting code) that have already established
// the declaration cannot conflict.
func (a *Automaton) MustAddLocation(name string, accepting bool) Location {
	loc, err := a.AddLocation(name, accepting)
	if err != nil {
		panic(err)
	}
	return loc
}

// MustAddRegister is AddRegister but panics on error.
func (a *Automaton) MustAddRegister(name string, initial *int64) {
	if err := a.AddRegister(name, initial); err != nil {
		panic(err)
	}
}

// MustAddTransition is AddTransition but panics on error.
func (a *Automaton) MustAddTransition(from string, sym symbol.LabeledSymbol, g guard.Guard, assignment map[string]symbol.Symbol, to string) {
	if err := a.AddTransition(from, sym, g, assignment, to); err != nil {
		panic(err)
	}
}
