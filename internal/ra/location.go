package ra

// Location is a named state of a RegisterAutomaton. Outgoing, incoming, and
// self-loop transitions are derived views computed from the owning
// automaton rather than stored pointers, the way internal/ictiobus's
// DFAState keeps only a transitions map and leans on the owning DFA for
// everything else.
type Location struct {
	Name        string
	IsInitial   bool
	IsAccepting bool
}
