package lang

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/symbol"
	"github.com/dekarrin/rabench/internal/wiki"
)

// ToInternalGuard converts a literal-free WikiGuard into a component-B
// guard.Guard by resolving every Variable leaf through scope. It is the
// direct (no constants table) counterpart of internal/convert's
// Wiki-automaton import, used by cmd/rabench's guard-repl subcommand to let
// an operator type mini-language text and exercise guard.Invert/
// SimplifyInequalities/ToDisjunctiveNormalForm against it directly. Fails
// with ErrUnboundSymbol if the guard contains an integer literal or a
// variable absent from scope.
func ToInternalGuard(g wiki.WikiGuard, scope map[string]symbol.Symbol) (guard.Guard, error) {
	switch n := g.(type) {
	case wiki.WikiTrue:
		return guard.TrueGuard{}, nil
	case wiki.WikiRel:
		left, err := resolveScopedExpr(n.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := resolveScopedExpr(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return guard.BinaryRel{Rel: n.Rel, Left: left, Right: right}, nil
	case wiki.WikiAnd:
		left, err := ToInternalGuard(n.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := ToInternalGuard(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return guard.And{Children: []guard.Guard{left, right}}, nil
	case wiki.WikiOr:
		left, err := ToInternalGuard(n.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := ToInternalGuard(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return guard.Or{Children: []guard.Guard{left, right}}, nil
	default:
		return nil, fmt.Errorf("toInternalGuard: unrecognized wiki guard node %T", g)
	}
}

func resolveScopedExpr(e wiki.Expression, scope map[string]symbol.Symbol) (symbol.Symbol, error) {
	v, ok := e.(wiki.Variable)
	if !ok {
		return symbol.Symbol{}, fmt.Errorf("literal expression has no internal-guard representation: %w", rberrors.ErrUnboundSymbol)
	}
	s, ok := scope[v.Name]
	if !ok {
		return symbol.Symbol{}, fmt.Errorf("variable %q: %w", v.Name, rberrors.ErrUnboundSymbol)
	}
	return s, nil
}

// FromInternalGuard converts a guard.Guard into a WikiGuard, for printing a
// component-B guard through FormatFull in the REPL.
func FromInternalGuard(g guard.Guard) wiki.WikiGuard {
	switch n := g.(type) {
	case guard.TrueGuard:
		return wiki.WikiTrue{}
	case guard.BinaryRel:
		return wiki.WikiRel{Rel: n.Rel, Left: wiki.Variable{Name: n.Left.Name()}, Right: wiki.Variable{Name: n.Right.Name()}}
	case guard.And:
		return foldInternal(n.Children, false)
	case guard.Or:
		return foldInternal(n.Children, true)
	default:
		return wiki.WikiTrue{}
	}
}

func foldInternal(children []guard.Guard, isOr bool) wiki.WikiGuard {
	if len(children) == 0 {
		return wiki.WikiTrue{}
	}
	acc := FromInternalGuard(children[0])
	for _, c := range children[1:] {
		next := FromInternalGuard(c)
		if isOr {
			acc = wiki.WikiOr{Left: acc, Right: next}
		} else {
			acc = wiki.WikiAnd{Left: acc, Right: next}
		}
	}
	return acc
}
