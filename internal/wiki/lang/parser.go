package lang

import (
	"strconv"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/wiki"
)

// ParseGuard parses the guard mini-language grammar:
//
//	guard     ::= orChain
//	orChain   ::= andChain ("||" andChain)*
//	andChain  ::= clause   ("&&" clause)*
//	clause    ::= expr relop expr | "(" orChain ")"
//	relop     ::= "==" | "!=" | ">=" | ">" | "<=" | "<"
//	expr      ::= IDENT | ("-"? DIGIT+)
//
// "&&" binds tighter than "||", matching the RALib-safe wire dialect's
// unparenthesized DNF emission (FormatGuardForWire). The empty string
// parses to wiki.WikiTrue{}. Grouping parentheses are preserved
// structurally: the parser never flattens a nested WikiAnd/WikiOr into its
// parent's chain.
func ParseGuard(src string) (wiki.WikiGuard, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	if p.peek().kind == tokEOF {
		return wiki.WikiTrue{}, nil
	}
	g, err := p.parseOrChain()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, newParseError(src, p.peek().line, p.peek().pos, "unexpected trailing input")
	}
	return g, nil
}

// ParseExpression parses a single expr production (IDENT or integer
// literal) - the grammar used for an <assign>'s textual body, which is not
// itself a full guard.
func ParseExpression(src string) (wiki.Expression, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, newParseError(src, p.peek().line, p.peek().pos, "unexpected trailing input")
	}
	return e, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseOrChain() (wiki.WikiGuard, error) {
	left, err := p.parseAndChain()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOrOr {
		p.next()
		right, err := p.parseAndChain()
		if err != nil {
			return nil, err
		}
		left = wiki.WikiOr{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAndChain() (wiki.WikiGuard, error) {
	left, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAndAnd {
		p.next()
		right, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		left = wiki.WikiAnd{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseClause() (wiki.WikiGuard, error) {
	if p.peek().kind == tokLParen {
		p.next()
		inner, err := p.parseOrChain()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			t := p.peek()
			return nil, newParseError(p.src, t.line, t.pos, "expected ')'")
		}
		p.next()
		return inner, nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	rel, err := p.parseRelop()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return wiki.WikiRel{Rel: rel, Left: left, Right: right}, nil
}

func (p *parser) parseExpr() (wiki.Expression, error) {
	t := p.peek()
	switch t.kind {
	case tokIdent:
		p.next()
		return wiki.Variable{Name: t.text}, nil
	case tokNumber:
		p.next()
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, newParseError(p.src, t.line, t.pos, "invalid integer literal "+t.text)
		}
		return wiki.Constant{Value: n}, nil
	default:
		return nil, newParseError(p.src, t.line, t.pos, "expected identifier or integer literal")
	}
}

func (p *parser) parseRelop() (guard.Relation, error) {
	t := p.peek()
	switch t.kind {
	case tokEqEq:
		p.next()
		return guard.Eq, nil
	case tokNotEq:
		p.next()
		return guard.Neq, nil
	case tokGtEq:
		p.next()
		return guard.Geq, nil
	case tokGt:
		p.next()
		return guard.Gt, nil
	case tokLtEq:
		p.next()
		return guard.Leq, nil
	case tokLt:
		p.next()
		return guard.Lt, nil
	default:
		return 0, newParseError(p.src, t.line, t.pos, "expected relational operator")
	}
}
