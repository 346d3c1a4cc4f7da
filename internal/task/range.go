// Package task implements the external batch-generation harness spec
// section 5 describes but leaves out of the core: integer range parsing,
// a generic Cartesian-product combinator, a bounded worker pool, and
// atomic file writes.
package task

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dekarrin/rabench/internal/rberrors"
)

// rangePattern mirrors the regexp-driven tokenizing style in
// internal/tunascript/lexer.go, matching the grammar:
//
//	range ::= INT ( ".." "<"? INT )? ( "step" INT )?
var rangePattern = regexp.MustCompile(
	`^\s*(-?\d+)\s*(?:\.\.\s*(<)?\s*(-?\d+)\s*)?(?:step\s+(\d+)\s*)?$`,
)

// Range is a parsed integer-range parameter, as used for the size/seed
// arguments of the CLI subcommands in spec section 6.
type Range struct {
	Start     int
	End       int
	Inclusive bool
	Step      int
}

// ParseRange parses the syntax `a`, `a..b`, `a..<b`, with an optional
// trailing `step k` (default step 1). `a..b` is inclusive of b; `a..<b`
// excludes it. A bare `a` is a single-value range equivalent to `a..a`.
func ParseRange(s string) (Range, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return Range{}, fmt.Errorf("invalid range syntax %q: %w", s, rberrors.ErrInvalidArgument)
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range syntax %q: %w", s, rberrors.ErrInvalidArgument)
	}

	r := Range{Start: start, End: start, Inclusive: true, Step: 1}

	if m[3] != "" {
		end, err := strconv.Atoi(m[3])
		if err != nil {
			return Range{}, fmt.Errorf("invalid range syntax %q: %w", s, rberrors.ErrInvalidArgument)
		}
		r.End = end
		r.Inclusive = m[2] != "<"
	}

	if m[4] != "" {
		step, err := strconv.Atoi(m[4])
		if err != nil || step <= 0 {
			return Range{}, fmt.Errorf("invalid range step in %q: %w", s, rberrors.ErrInvalidArgument)
		}
		r.Step = step
	}

	return r, nil
}

// Values expands the range to its progression, in ascending order. An
// empty range (start already past the end) yields an empty, non-nil
// slice.
func (r Range) Values() []int {
	out := []int{}
	for v := r.Start; ; v += r.Step {
		if r.Inclusive && v > r.End {
			break
		}
		if !r.Inclusive && v >= r.End {
			break
		}
		out = append(out, v)
		if r.Step <= 0 {
			break
		}
	}
	return out
}
