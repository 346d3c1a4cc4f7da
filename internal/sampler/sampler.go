package sampler

import (
	"fmt"
	"math/rand"

	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/util"
)

// Options configures a call to ChamparnaudParanthoenRA.
type Options struct {
	// NStates is the number of locations (internal tree nodes) the sampled
	// RA must have. Per spec section 4.D.1 the counting-table tuple length
	// is T = NStates*(m-1), where m = len(Alphabet), not NStates itself.
	NStates int

	// Alphabet names the input letters; its length is the alphabet size m
	// (m >= 2).
	Alphabet []string

	// NParameters is the arity given to every LabeledSymbol built from
	// Alphabet.
	NParameters int

	// DefaultGuard labels every transition produced by the lift; True()
	// is the natural choice for an unconstrained RA.
	DefaultGuard guard.Guard

	// PAccept is the per-location Bernoulli acceptance probability;
	// defaults to 0.5 when zero.
	PAccept float64

	// InitialPrefix names the initial location ("q" is a reasonable
	// default); every other location is named by appending its access
	// sequence.
	InitialPrefix string

	// Seed drives the RNG; identical Options and Seed always produce an
	// identical RA, per spec section 5's ordering guarantee.
	Seed int64
}

// ChamparnaudParanthoenRA uniformly samples a minimal DFA-shaped Register
// Automaton with exactly opts.NStates locations over opts.Alphabet, using
// the Champarnaud-Paranthoën counting-table algorithm: build the counting
// table, draw a constrained tuple, decode it to an extended tree, and lift
// the tree to an Automaton.
//
// Per spec section 4.D.1, the tuple length is T = NStates*(m-1), not
// NStates itself: an m-ary extended tree with NStates internal nodes has
// NStates*(m-1)+1 leaves, each consuming one entry, and the tuple encodes
// all but the fixed first entry. P is bounded by NStates: no tuple entry can exceed
// the number of internal nodes, so building the table with P = NStates is
// always sufficient.
func ChamparnaudParanthoenRA(opts Options) (*ra.Automaton, error) {
	if opts.NStates < 1 {
		return nil, fmt.Errorf("sampler: NStates must be >= 1")
	}
	if len(opts.Alphabet) < 2 {
		return nil, fmt.Errorf("sampler: alphabet must have at least 2 letters")
	}
	if seen := util.StringSetOf(opts.Alphabet); seen.Len() != len(opts.Alphabet) {
		return nil, fmt.Errorf("sampler: alphabet %s contains duplicate letters", seen)
	}
	if opts.DefaultGuard == nil {
		opts.DefaultGuard = guard.TrueGuard{}
	}
	if opts.InitialPrefix == "" {
		opts.InitialPrefix = "q"
	}

	m := len(opts.Alphabet)
	T := opts.NStates * (m - 1)
	P := opts.NStates

	table := BuildCountingTable(m, T, P)
	rng := rand.New(rand.NewSource(opts.Seed))

	tuple := SampleTuple(rng, table, T, P)
	if len(tuple) != T {
		return nil, fmt.Errorf("sampler: sampled tuple has length %d, want %d (NStates=%d not representable with alphabet size %d)",
			len(tuple), T, opts.NStates, m)
	}

	tree := TupleToTree(tuple, m)

	return LiftToRA(tree, LiftOptions{
		Alphabet:      opts.Alphabet,
		NParameters:   opts.NParameters,
		DefaultGuard:  opts.DefaultGuard,
		PAccept:       opts.PAccept,
		InitialPrefix: opts.InitialPrefix,
		Rng:           rng,
	})
}
