package wiki

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/rabench/internal/guard"
)

// Expression is a leaf of a WikiGuard or the source of an Assignment: either
// a named variable (a transition parameter, a register, or a constant's
// name once merged) or an integer literal. Closed sum type, same shape as
// internal/guard's guardNode pattern.
type Expression interface {
	fmt.Stringer
	expressionNode()
}

// Variable is a reference to a parameter, register, or constant by name.
type Variable struct {
	Name string
}

func (Variable) expressionNode() {}
func (v Variable) String() string { return v.Name }

// Constant is an integer literal appearing directly in wiki-dialect guard
// or assignment text.
type Constant struct {
	Value int64
}

func (Constant) expressionNode() {}
func (c Constant) String() string { return strconv.FormatInt(c.Value, 10) }

// WikiGuard mirrors internal/guard's Guard sum type (True/And/Or/BinaryRel)
// but with Expression leaves instead of symbol.Symbol, since wiki-dialect
// guards may compare a variable against an integer literal directly.
type WikiGuard interface {
	fmt.Stringer
	wikiGuardNode()
}

// WikiTrue is the constant True; the empty guard string parses to this.
type WikiTrue struct{}

func (WikiTrue) wikiGuardNode()  {}
func (WikiTrue) String() string { return "" }

// WikiAnd is a conjunction, preserved unflattened: parsing "(a && b) && c"
// yields a WikiAnd whose left child is itself a WikiAnd, not a 3-ary one.
type WikiAnd struct {
	Left, Right WikiGuard
}

func (WikiAnd) wikiGuardNode() {}
func (a WikiAnd) String() string {
	return fmt.Sprintf("(%s && %s)", a.Left, a.Right)
}

// WikiOr is a disjunction, preserved unflattened the same way as WikiAnd.
type WikiOr struct {
	Left, Right WikiGuard
}

func (WikiOr) wikiGuardNode() {}
func (o WikiOr) String() string {
	return fmt.Sprintf("(%s || %s)", o.Left, o.Right)
}

// WikiRel is a relation between two expressions.
type WikiRel struct {
	Rel   guard.Relation
	Left  Expression
	Right Expression
}

func (WikiRel) wikiGuardNode() {}
func (r WikiRel) String() string {
	return fmt.Sprintf("(%s %s %s)", r.Left, r.Rel, r.Right)
}
