// Package convert implements the lossless Wiki-to-internal direction
// (FromWiki) and the totalising, signal-encoding internal-to-Wiki
// direction (ToWiki), mirroring the symmetric ToRow/FromRow encode/decode
// pairs in server/dao/sqlite/sqlite.go.
package convert

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/symbol"
	"github.com/dekarrin/rabench/internal/wiki"
)

// FromWiki converts a Wiki-dialect automaton into the internal runtime
// model. The conversion is acceptance-blind: every location in the result
// is non-accepting, since the Wiki form encodes acceptance via explicit
// output symbols rather than a location flag.
func FromWiki(w wiki.WikiRA) (*ra.Automaton, error) {
	var initial *wiki.WikiLocation
	for i := range w.Locations {
		if w.Locations[i].Initial {
			if initial != nil {
				return nil, fmt.Errorf("wiki automaton has more than one initial location: %w", rberrors.ErrInvalidArgument)
			}
			l := w.Locations[i]
			initial = &l
		}
	}
	if initial == nil {
		return nil, fmt.Errorf("wiki automaton has no initial location: %w", rberrors.ErrInvalidArgument)
	}

	a := ra.New(initial.Name)
	for _, l := range w.Locations {
		if l.Name == initial.Name {
			continue
		}
		if _, err := a.AddLocation(l.Name, false); err != nil {
			return nil, err
		}
	}

	valueToReg := map[int64]string{}
	for _, c := range w.Constants {
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("constant %q: invalid integer value %q: %w", c.Name, c.Value, rberrors.ErrInvalidArgument)
		}
		if err := a.AddRegister(c.Name, &v); err != nil {
			return nil, err
		}
		if _, taken := valueToReg[v]; !taken {
			valueToReg[v] = c.Name
		}
	}
	for _, g := range w.Globals {
		if err := a.AddRegister(g.Name, nil); err != nil {
			return nil, err
		}
	}

	for _, t := range w.Transitions {
		sym := symbol.NewLabeledSymbol(t.Symbol, t.Params...)

		scope := map[string]symbol.Symbol{}
		for _, p := range sym.Parameters() {
			scope[p.Name()] = p
		}
		for _, r := range a.Registers() {
			scope[r] = symbol.Register(r)
		}

		g, err := convertGuard(t.Guard, scope, valueToReg)
		if err != nil {
			return nil, err
		}

		assignment := map[string]symbol.Symbol{}
		for _, asn := range t.Assignments {
			src, err := resolveExpr(asn.From, scope, valueToReg)
			if err != nil {
				return nil, err
			}
			assignment[asn.To] = src
		}

		if err := a.AddTransition(t.From, sym, g, assignment, t.To); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func convertGuard(g wiki.WikiGuard, scope map[string]symbol.Symbol, valueToReg map[int64]string) (guard.Guard, error) {
	switch n := g.(type) {
	case nil, wiki.WikiTrue:
		return guard.TrueGuard{}, nil
	case wiki.WikiRel:
		left, err := resolveExpr(n.Left, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		right, err := resolveExpr(n.Right, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		return guard.BinaryRel{Rel: n.Rel, Left: left, Right: right}, nil
	case wiki.WikiAnd:
		left, err := convertGuard(n.Left, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		right, err := convertGuard(n.Right, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		return guard.And{Children: []guard.Guard{left, right}}, nil
	case wiki.WikiOr:
		left, err := convertGuard(n.Left, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		right, err := convertGuard(n.Right, scope, valueToReg)
		if err != nil {
			return nil, err
		}
		return guard.Or{Children: []guard.Guard{left, right}}, nil
	default:
		return nil, fmt.Errorf("convert guard: unrecognized wiki guard node %T", g)
	}
}

func resolveExpr(e wiki.Expression, scope map[string]symbol.Symbol, valueToReg map[int64]string) (symbol.Symbol, error) {
	switch n := e.(type) {
	case wiki.Variable:
		s, ok := scope[n.Name]
		if !ok {
			return symbol.Symbol{}, fmt.Errorf("variable %q: %w", n.Name, rberrors.ErrUnboundSymbol)
		}
		return s, nil
	case wiki.Constant:
		name, ok := valueToReg[n.Value]
		if !ok {
			return symbol.Symbol{}, fmt.Errorf("literal %d has no matching declared constant: %w", n.Value, rberrors.ErrUnboundSymbol)
		}
		return symbol.Register(name), nil
	default:
		return symbol.Symbol{}, fmt.Errorf("resolve expression: unrecognized node %T", e)
	}
}
