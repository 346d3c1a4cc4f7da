// Package lang implements the guard mini-language: the textual grammar used
// inside Wiki-dialect <guard> elements (and Assignment sources), its
// lexer/recursive-descent parser, and its two pretty-printers (Wiki-full,
// RALib-safe). Modeled on internal/tunascript's lexer/parser split: a
// hand-written lexer producing a flat token slice, then a hand-written
// recursive-descent parser walking it - the corpus never reaches for a
// parser-combinator or lexer-generator library even for its much larger
// tunascript grammar, so this smaller grammar follows the same shape.
package lang

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokAndAnd
	tokOrOr
	tokEqEq
	tokNotEq
	tokGtEq
	tokGt
	tokLtEq
	tokLt
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int // 1-indexed column
	line int // 1-indexed line
}

// lex tokenizes src in full before parsing begins, the way
// internal/tunascript's fe/lexer.ict.go produces a complete token stream
// ahead of the parser rather than interleaving lexing with parsing.
func lex(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1
	runes := []rune(src)
	i := 0

	advance := func(n int) {
		for k := 0; k < n; k++ {
			if i+k < len(runes) && runes[i+k] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		i += n
	}

	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(1)
		case c == '(':
			toks = append(toks, token{tokLParen, "(", col, line})
			advance(1)
		case c == ')':
			toks = append(toks, token{tokRParen, ")", col, line})
			advance(1)
		case c == '&':
			if i+1 < len(runes) && runes[i+1] == '&' {
				toks = append(toks, token{tokAndAnd, "&&", col, line})
				advance(2)
			} else {
				return nil, newParseError(src, line, col, "unexpected character '&'")
			}
		case c == '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				toks = append(toks, token{tokOrOr, "||", col, line})
				advance(2)
			} else {
				return nil, newParseError(src, line, col, "unexpected character '|'")
			}
		case c == '=':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{tokEqEq, "==", col, line})
				advance(2)
			} else {
				return nil, newParseError(src, line, col, "unexpected character '='")
			}
		case c == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{tokNotEq, "!=", col, line})
				advance(2)
			} else {
				return nil, newParseError(src, line, col, "unexpected character '!'")
			}
		case c == '>':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{tokGtEq, ">=", col, line})
				advance(2)
			} else {
				toks = append(toks, token{tokGt, ">", col, line})
				advance(1)
			}
		case c == '<':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{tokLtEq, "<=", col, line})
				advance(2)
			} else {
				toks = append(toks, token{tokLt, "<", col, line})
				advance(1)
			}
		case c == '-' || isDigit(c):
			start := i
			startCol, startLine := col, line
			advance(1)
			for i < len(runes) && isDigit(runes[i]) {
				advance(1)
			}
			text := string(runes[start:i])
			if text == "-" {
				return nil, newParseError(src, startLine, startCol, "expected digits after '-'")
			}
			toks = append(toks, token{tokNumber, text, startCol, startLine})
		case isIdentStart(c):
			start := i
			startCol, startLine := col, line
			for i < len(runes) && isIdentPart(runes[i]) {
				advance(1)
			}
			toks = append(toks, token{tokIdent, string(runes[start:i]), startCol, startLine})
		default:
			return nil, newParseError(src, line, col, fmt.Sprintf("unexpected character %q", c))
		}
	}
	toks = append(toks, token{tokEOF, "", col, line})
	return toks, nil
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

// sourceLine extracts the 1-indexed line from src, for error reporting.
func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
