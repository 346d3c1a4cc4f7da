package ra

import (
	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/symbol"
)

// Transition moves the automaton from From to To on Symbol, provided Guard
// holds, updating registers named in Assignment to the value of the
// corresponding source Symbol (a parameter of Symbol or another register).
//
// Endpoints are stored as location names rather than pointers: spec's
// "cyclic graphs without cycles in storage" design note. The owning
// Automaton resolves names lazily, which keeps Transition trivially
// copyable and serializable.
type Transition struct {
	From       string
	Symbol     symbol.LabeledSymbol
	Guard      guard.Guard
	Assignment map[string]symbol.Symbol
	To         string
}
