package convert

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/symbol"
	"github.com/dekarrin/rabench/internal/wiki"
)

const (
	trapLocation   = "trap"
	ioTrapLocation = "io_trap"
)

// ToWiki converts a runtime automaton into the Wiki dialect, totalising and
// signal-encoding it per spec 4.G: acceptance becomes explicit OAccept/
// OReject transitions, every original transition is split through a fresh
// intermediate location, and missing input coverage is routed to a shared
// trap pair via OError. minInputSymbols pads the input alphabet with
// zero-arity IPad<N> symbols (wired to no transition) until the used-label
// count reaches it; pass 0 for no padding.
func ToWiki(a *ra.Automaton, minInputSymbols int) (*wiki.WikiRA, error) {
	w := &wiki.WikiRA{
		Alphabet: wiki.Alphabet{
			Outputs: []wiki.WikiSymbol{{Name: "OAccept"}, {Name: "OReject"}, {Name: "OError"}},
		},
	}

	used := a.UsedSymbols()
	for _, s := range used {
		w.Alphabet.Inputs = append(w.Alphabet.Inputs, wiki.WikiSymbol{
			Name:   "I" + s.Label,
			Params: wikiParams(s),
		})
	}
	for pad := 0; len(w.Alphabet.Inputs) < minInputSymbols; pad++ {
		w.Alphabet.Inputs = append(w.Alphabet.Inputs, wiki.WikiSymbol{Name: fmt.Sprintf("IPad%d", pad)})
	}

	for _, r := range a.Registers() {
		w.Globals = append(w.Globals, wiki.WikiRegister{Name: r, Type: "INT", Value: "0"})
	}

	initLoc := a.InitialLocation()
	for _, l := range a.Locations() {
		w.Locations = append(w.Locations, wiki.WikiLocation{Initial: l.Name == initLoc.Name, Name: l.Name})
	}

	id := 0
	for _, t := range a.Transitions() {
		toLoc, _ := a.Location(t.To)
		ioName := fmt.Sprintf("io_%d_%s_%s_%s", id, t.From, t.Symbol.Label, t.To)
		id++

		w.Locations = append(w.Locations, wiki.WikiLocation{Name: ioName})

		wg, err := toWikiGuard(t.Guard)
		if err != nil {
			return nil, err
		}
		targets := make([]string, 0, len(t.Assignment))
		for to := range t.Assignment {
			targets = append(targets, to)
		}
		sort.Strings(targets)

		var assigns []wiki.Assignment
		for _, to := range targets {
			assigns = append(assigns, wiki.Assignment{To: to, From: wiki.Variable{Name: t.Assignment[to].Name()}})
		}

		w.Transitions = append(w.Transitions,
			wiki.WikiTransition{
				From:        t.From,
				Params:      paramNames(t.Symbol),
				Symbol:      "I" + t.Symbol.Label,
				To:          ioName,
				Guard:       wg,
				Assignments: assigns,
			},
			wiki.WikiTransition{
				From:   ioName,
				Symbol: outputSymbolFor(toLoc.IsAccepting),
				To:     t.To,
				Guard:  wiki.WikiTrue{},
			},
		)
	}

	w.Locations = append(w.Locations, wiki.WikiLocation{Name: trapLocation}, wiki.WikiLocation{Name: ioTrapLocation})

	for _, loc := range a.Locations() {
		for _, s := range used {
			var existing []guard.Guard
			for _, t := range a.OutgoingFrom(loc.Name) {
				if t.Symbol.Label == s.Label {
					existing = append(existing, t.Guard)
				}
			}

			switch {
			case len(existing) == 0:
				w.Transitions = append(w.Transitions, wiki.WikiTransition{
					From:   loc.Name,
					Params: paramNames(s),
					Symbol: "I" + s.Label,
					To:     ioTrapLocation,
					Guard:  wiki.WikiTrue{},
				})
			case allTrue(existing):
				// every transition on s at loc already covers every
				// valuation; no sink needed.
			default:
				// matches source semantics, which double-wraps in
				// And-then-invert rather than Or-then-invert.
				combined := guard.And{Children: existing}
				inverted, err := guard.Invert(combined)
				if err != nil {
					return nil, err
				}
				wg, err := toWikiGuard(inverted)
				if err != nil {
					return nil, err
				}
				w.Transitions = append(w.Transitions, wiki.WikiTransition{
					From:   loc.Name,
					Params: paramNames(s),
					Symbol: "I" + s.Label,
					To:     ioTrapLocation,
					Guard:  wg,
				})
			}
		}
	}

	w.Transitions = append(w.Transitions, wiki.WikiTransition{
		From:   ioTrapLocation,
		Symbol: "OError",
		To:     trapLocation,
		Guard:  wiki.WikiTrue{},
	})

	return w, nil
}

func outputSymbolFor(accepting bool) string {
	if accepting {
		return "OAccept"
	}
	return "OReject"
}

func allTrue(gs []guard.Guard) bool {
	for _, g := range gs {
		if _, ok := g.(guard.TrueGuard); !ok {
			return false
		}
	}
	return true
}

func paramNames(s symbol.LabeledSymbol) []string {
	ps := s.Parameters()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name()
	}
	return out
}

func wikiParams(s symbol.LabeledSymbol) []wiki.Param {
	ps := s.Parameters()
	out := make([]wiki.Param, len(ps))
	for i, p := range ps {
		out[i] = wiki.Param{Name: p.Name(), Type: "int"}
	}
	return out
}

func toWikiGuard(g guard.Guard) (wiki.WikiGuard, error) {
	switch n := g.(type) {
	case guard.TrueGuard:
		return wiki.WikiTrue{}, nil
	case guard.BinaryRel:
		return wiki.WikiRel{Rel: n.Rel, Left: wiki.Variable{Name: n.Left.Name()}, Right: wiki.Variable{Name: n.Right.Name()}}, nil
	case guard.And:
		return foldWikiGuard(n.Children, false)
	case guard.Or:
		return foldWikiGuard(n.Children, true)
	default:
		return nil, fmt.Errorf("toWikiGuard: unrecognized guard node %T", g)
	}
}

func foldWikiGuard(children []guard.Guard, isOr bool) (wiki.WikiGuard, error) {
	if len(children) == 0 {
		return wiki.WikiTrue{}, nil
	}
	acc, err := toWikiGuard(children[0])
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		next, err := toWikiGuard(c)
		if err != nil {
			return nil, err
		}
		if isOr {
			acc = wiki.WikiOr{Left: acc, Right: next}
		} else {
			acc = wiki.WikiAnd{Left: acc, Right: next}
		}
	}
	return acc, nil
}
