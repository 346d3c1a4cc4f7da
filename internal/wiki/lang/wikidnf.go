package lang

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/wiki"
)

// WikiDNFAnd is a conjunction of WikiRel atoms, the Expression-leaved
// counterpart of internal/guard's DNFAnd. Wiki guards can carry integer
// literal leaves (internal guards cannot), so this is not a generic-over-
// guard.DNFAnd reuse: the whole normalisation pipeline is duplicated here
// at the Expression level.
type WikiDNFAnd struct {
	Atoms []wiki.WikiRel
}

// WikiDNFOr is a disjunction of WikiDNFAnds.
type WikiDNFOr struct {
	Conjuncts []WikiDNFAnd
}

// SimplifyInequalitiesWiki rewrites x >= y into (x > y) || (x == y) and
// x <= y into (x < y) || (x == y), recursively, mirroring
// guard.SimplifyInequalities over Expression leaves.
func SimplifyInequalitiesWiki(g wiki.WikiGuard) wiki.WikiGuard {
	switch n := g.(type) {
	case wiki.WikiTrue:
		return n
	case wiki.WikiRel:
		switch n.Rel {
		case guard.Geq:
			return wiki.WikiOr{
				Left:  wiki.WikiRel{Rel: guard.Gt, Left: n.Left, Right: n.Right},
				Right: wiki.WikiRel{Rel: guard.Eq, Left: n.Left, Right: n.Right},
			}
		case guard.Leq:
			return wiki.WikiOr{
				Left:  wiki.WikiRel{Rel: guard.Lt, Left: n.Left, Right: n.Right},
				Right: wiki.WikiRel{Rel: guard.Eq, Left: n.Left, Right: n.Right},
			}
		default:
			return n
		}
	case wiki.WikiAnd:
		return wiki.WikiAnd{Left: SimplifyInequalitiesWiki(n.Left), Right: SimplifyInequalitiesWiki(n.Right)}
	case wiki.WikiOr:
		return wiki.WikiOr{Left: SimplifyInequalitiesWiki(n.Left), Right: SimplifyInequalitiesWiki(n.Right)}
	default:
		panic(fmt.Sprintf("simplifyInequalitiesWiki: unrecognized guard node %T", g))
	}
}

// ToDisjunctiveNormalFormWiki converts g into DNF, mirroring
// guard.ToDisjunctiveNormalForm over Expression leaves. True becomes the
// empty disjunction.
func ToDisjunctiveNormalFormWiki(g wiki.WikiGuard) WikiDNFOr {
	switch n := g.(type) {
	case wiki.WikiTrue:
		return WikiDNFOr{}
	case wiki.WikiRel:
		return WikiDNFOr{Conjuncts: []WikiDNFAnd{{Atoms: []wiki.WikiRel{n}}}}
	case wiki.WikiAnd:
		return wikiDNFCartesianProduct(ToDisjunctiveNormalFormWiki(n.Left), ToDisjunctiveNormalFormWiki(n.Right))
	case wiki.WikiOr:
		left := ToDisjunctiveNormalFormWiki(n.Left)
		right := ToDisjunctiveNormalFormWiki(n.Right)
		return WikiDNFOr{Conjuncts: append(append([]WikiDNFAnd{}, left.Conjuncts...), right.Conjuncts...)}
	default:
		panic(fmt.Sprintf("toDisjunctiveNormalFormWiki: unrecognized guard node %T", g))
	}
}

func wikiDNFCartesianProduct(left, right WikiDNFOr) WikiDNFOr {
	var out WikiDNFOr
	for _, l := range left.Conjuncts {
		for _, r := range right.Conjuncts {
			merged := make([]wiki.WikiRel, 0, len(l.Atoms)+len(r.Atoms))
			merged = append(merged, l.Atoms...)
			merged = append(merged, r.Atoms...)
			out.Conjuncts = append(out.Conjuncts, WikiDNFAnd{Atoms: merged})
		}
	}
	return out
}

// FormatRALibSafeWiki renders a Wiki-level DNF (already normalised via
// SimplifyInequalitiesWiki + ToDisjunctiveNormalFormWiki) in the RALib-safe
// dialect: "||" between disjuncts, "&&" between conjuncts, no parens.
// Fails with ErrUnsupportedInRALibDialect if any atom still carries <= or
// >=.
func FormatRALibSafeWiki(d WikiDNFOr) (string, error) {
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

// FormatGuardForWire runs a WikiGuard through the full normalisation
// pipeline (simplify inequalities, then DNF) and renders it RALib-safe, the
// single entry point xmlio uses to serialise a <guard> body.
func FormatGuardForWire(g wiki.WikiGuard) (string, error) {
	simplified := SimplifyInequalitiesWiki(g)
	dnf := ToDisjunctiveNormalFormWiki(simplified)
	return FormatRALibSafeWiki(dnf)
}
