package lang

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/wiki"
)

// FormatFull renders g in the Wiki-full dialect: parentheses around every
// compound subformula, relations as "(left OP right)", True as "".
func FormatFull(g wiki.WikiGuard) string {
	switch n := g.(type) {
	case wiki.WikiTrue:
		return ""
	case wiki.WikiRel:
		return fmt.Sprintf("(%s %s %s)", n.Left, n.Rel, n.Right)
	case wiki.WikiAnd:
		return fmt.Sprintf("(%s && %s)", FormatFull(n.Left), FormatFull(n.Right))
	case wiki.WikiOr:
		return fmt.Sprintf("(%s || %s)", FormatFull(n.Left), FormatFull(n.Right))
	default:
		return g.String()
	}
}

// FormatRALibSafe renders d, a DNFOr already produced by
// guard.SimplifyInequalities followed by guard.ToDisjunctiveNormalForm, in
// the restricted dialect RALib's guard reader accepts: "||" between
// disjuncts, "&&" between conjuncts, no parentheses anywhere. Fails with
// ErrUnsupportedInRALibDialect if any atom still carries <= or >=, which
// means the caller skipped the required normalisation pass.
func FormatRALibSafe(d guard.DNFOr) (string, error) {
	conjuncts := make([]string, len(d.Conjuncts))
	for i, conj := range d.Conjuncts {
		atoms := make([]string, len(conj.Atoms))
		for j, a := range conj.Atoms {
			if a.Rel == guard.Geq || a.Rel == guard.Leq {
				return "", fmt.Errorf("format RALib-safe: %w", rberrors.ErrUnsupportedInRALibDialect)
			}
			atoms[j] = fmt.Sprintf("%s%s%s", a.Left, a.Rel, a.Right)
		}
		conjuncts[i] = strings.Join(atoms, "&&")
	}
	return strings.Join(conjuncts, "||"), nil
}
