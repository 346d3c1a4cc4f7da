package sampler

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/symbol"
)

// LiftOptions configures the tree->RA lifting step (Theorem 6).
type LiftOptions struct {
	// Alphabet names the input letters, in the order used to decode the
	// tree; len(Alphabet) is the alphabet size m.
	Alphabet []string

	// NParameters is the arity every LabeledSymbol is given; registers is
	// empty whenever NParameters is 0.
	NParameters int

	// DefaultGuard labels every transition produced by the lift.
	DefaultGuard guard.Guard

	// PAccept is the Bernoulli probability that each location (including
	// the initial one) is accepting. A zero value is replaced by 0.5, so an
	// acceptance probability of exactly 0 cannot be expressed.
	PAccept float64

	// InitialPrefix names the root location; it also becomes the stem of
	// every other location's access-sequence-derived name.
	InitialPrefix string

	// Rng supplies every random decision (Bernoulli acceptance draws and
	// closure-target selection). Required.
	Rng *rand.Rand
}

// LiftToRA turns an ExtendedTree into a Register Automaton: every internal
// node becomes a location, every internal-to-internal edge becomes a
// transition with DefaultGuard and an empty assignment, and every
// internal-to-leaf edge becomes a transition to a uniformly chosen internal
// node whose access sequence lexicographically precedes the leaf's — the
// closure step that turns the tree into a minimal DFA.
func LiftToRA(tree *ExtendedTree, opts LiftOptions) (*ra.Automaton, error) {
	m := len(opts.Alphabet)
	if m == 0 {
		return nil, fmt.Errorf("sampler: alphabet must be non-empty")
	}
	pAccept := opts.PAccept
	if pAccept == 0 {
		pAccept = 0.5
	}

	internals := tree.InternalNodes()
	if len(internals) == 0 {
		return nil, fmt.Errorf("sampler: tree has no internal nodes")
	}

	names := make(map[*TreeNode]string, len(internals))
	for _, n := range internals {
		names[n] = locationName(opts.InitialPrefix, opts.Alphabet, n.Access)
	}

	rootName := names[internals[0]]
	rootAccepting := opts.Rng.Float64() < pAccept
	automaton := ra.NewAccepting(rootName, rootAccepting)

	for _, n := range internals[1:] {
		accepting := opts.Rng.Float64() < pAccept
		if _, err := automaton.AddLocation(names[n], accepting); err != nil {
			return nil, err
		}
	}

	if opts.NParameters > 0 {
		// champarnaudParanthoenRA is specified to leave registers empty
		// when NParameters is 0; when it's nonzero nothing in spec section
		// 4.D requires registers either, so none are declared here - the
		// parameters live entirely on the LabeledSymbols.
	}

	symbols := make([]symbol.LabeledSymbol, m)
	for i, label := range opts.Alphabet {
		paramNames := make([]string, opts.NParameters)
		for j := range paramNames {
			paramNames[j] = fmt.Sprintf("p%d", j)
		}
		symbols[i] = symbol.NewLabeledSymbol(label, paramNames...)
	}

	for _, n := range internals {
		for letter, child := range n.Children {
			var targetName string
			if !child.IsLeaf {
				targetName = names[child]
			} else {
				candidates := closureCandidates(internals, names, child.Access)
				if len(candidates) == 0 {
					return nil, fmt.Errorf("sampler: leaf %v has no eligible closure target", child.Access)
				}
				targetName = candidates[opts.Rng.Intn(len(candidates))]
			}

			if err := automaton.AddTransition(names[n], symbols[letter], opts.DefaultGuard, nil, targetName); err != nil {
				return nil, err
			}
		}
	}

	return automaton, nil
}

func locationName(prefix string, alphabet []string, access []int) string {
	if len(access) == 0 {
		return prefix
	}
	labels := make([]string, len(access))
	for i, idx := range access {
		labels[i] = alphabet[idx]
	}
	return prefix + "." + strings.Join(labels, ".")
}

// closureCandidates returns, in deterministic (preorder) order, the names
// of internal nodes whose access sequence lexicographically precedes
// leafAccess.
func closureCandidates(internals []*TreeNode, names map[*TreeNode]string, leafAccess []int) []string {
	var out []string
	for _, n := range internals {
		if accessLess(n.Access, leafAccess) {
			out = append(out, names[n])
		}
	}
	return out
}
