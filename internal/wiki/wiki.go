// Package wiki implements the Automata-Wiki-oriented data model: a parallel,
// serialisation-shaped representation of a register automaton distinct from
// internal/ra's runtime model. Where internal/ra's Symbol leaves are
// Parameter/Register only, a wiki.WikiGuard's leaves are Expressions, which
// may additionally be integer literals - the wire format allows constants a
// live automaton never needs, since acceptance there is encoded as explicit
// output symbols rather than a location flag.
package wiki

// Param is one parameter slot of a WikiSymbol.
type Param struct {
	Name string
	Type string
}

// WikiSymbol is a named input or output letter with an ordered parameter
// list. Type is always "int" for parameters in this generator; the field is
// carried because the wire format names it explicitly.
type WikiSymbol struct {
	Name   string
	Params []Param
}

// Alphabet splits a WikiRA's symbols into the input and output label sets,
// mirroring spec's separate <inputs>/<outputs> XML children.
type Alphabet struct {
	Inputs  []WikiSymbol
	Outputs []WikiSymbol
}

// WikiRegister is a constant or global register declaration. Type is
// currently always "INT"; Value is the textual initialiser exactly as it
// will appear in the XML body.
type WikiRegister struct {
	Name  string
	Type  string
	Value string
}

// WikiLocation is a named state; Initial marks the unique starting
// location of the owning WikiRA.
type WikiLocation struct {
	Initial bool
	Name    string
}

// Assignment updates register To with the value of expression From,
// evaluated in the transition's parameter/register scope.
type Assignment struct {
	To   string
	From Expression
}

// WikiTransition moves from From to To on Symbol with the given Params
// bound in order, provided Guard holds, then applies Assignments in order.
type WikiTransition struct {
	From        string
	Params      []string
	Symbol      string
	To          string
	Guard       WikiGuard
	Assignments []Assignment
}

// WikiRA is the Wiki-dialect register automaton: alphabet, constant and
// global register declarations, locations, and transitions.
type WikiRA struct {
	Alphabet    Alphabet
	Constants   []WikiRegister
	Globals     []WikiRegister
	Locations   []WikiLocation
	Transitions []WikiTransition
}

// InitialLocation returns the first location with Initial set, and false
// if none is marked; it does not check that only one is marked -
// internal/convert.FromWiki's validation rejects more than one, since
// WikiRA itself is a plain data holder.
func (w WikiRA) InitialLocation() (WikiLocation, bool) {
	for _, l := range w.Locations {
		if l.Initial {
			return l, true
		}
	}
	return WikiLocation{}, false
}
