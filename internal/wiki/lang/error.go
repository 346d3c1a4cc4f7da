package lang

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/rberrors"
)

// ParseError is a guard/expression mini-language parse failure. Shape
// mirrors internal/tunascript.SyntaxError: a source line, a 1-indexed
// line/pos, and a message, with the same FullMessage/cursor rendering.
type ParseError struct {
	source     string
	sourceLine string
	line       int
	pos        int
	message    string
}

func newParseError(src string, line, pos int, msg string) ParseError {
	return ParseError{
		source:     src,
		sourceLine: sourceLine(src, line),
		line:       line,
		pos:        pos,
		message:    msg,
	}
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%v: around line %d, char %d: %s", rberrors.ErrParseError, e.line, e.pos, e.message)
}

// Unwrap exposes rberrors.ErrParseError for errors.Is checks.
func (e ParseError) Unwrap() error { return rberrors.ErrParseError }

// Line returns the 1-indexed line the error occurred on.
func (e ParseError) Line() int { return e.line }

// Position returns the 1-indexed character position within the line.
func (e ParseError) Position() int { return e.pos }

// FullMessage shows the error message together with the offending source
// line and a cursor pointing at the failure column.
func (e ParseError) FullMessage() string {
	return e.SourceLineWithCursor() + "\n" + e.Error()
}

// SourceLineWithCursor returns the offending line and, under it, a cursor
// aligned to the failure column.
func (e ParseError) SourceLineWithCursor() string {
	if e.sourceLine == "" {
		return ""
	}
	cursor := ""
	for i := 0; i < e.pos-1; i++ {
		cursor += " "
	}
	return e.sourceLine + "\n" + cursor
}
