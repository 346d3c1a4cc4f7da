package compose

import (
	"fmt"
	"math/rand"

	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
)

// PartialReplacement splices replacements into a fraction of a's
// transitions:
//
//  1. find a maximal independent edge set of a's transitions (repeatedly
//     pick a random remaining transition, keep it, drop every remaining
//     transition touching either of its endpoints);
//  2. sample floor(|candidates| * share) of them, shuffled;
//  3. distribute the sample across replacements in round-robin buckets
//     of as-equal-as-possible size (Bucket);
//  4. for each chosen transition t assigned replacement R: delete t and
//     splice R between t.From (as R's initial) and t.To (as R's
//     rendezvous).
//
// Every replacement must have an empty initial valuation
// (ErrInitializedReplacement otherwise).
func PartialReplacement(a *ra.Automaton, share float64, replacements []*ra.Automaton, rng *rand.Rand) (*ra.Automaton, error) {
	if share < 0 || share > 1 {
		return nil, fmt.Errorf("compose: share %v not in [0,1]: %w", share, rberrors.ErrInvalidArgument)
	}
	if len(replacements) == 0 {
		return nil, fmt.Errorf("compose: at least one replacement required: %w", rberrors.ErrInvalidArgument)
	}
	for _, r := range replacements {
		if len(r.InitialValuation()) > 0 {
			return nil, fmt.Errorf("compose: %w", rberrors.ErrInitializedReplacement)
		}
	}

	all := a.Transitions()
	candidateIdx := maximalIndependentTransitionIndices(all, rng)

	n := int(float64(len(candidateIdx)) * share)
	shuffled := append([]int(nil), candidateIdx...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	chosen := shuffled[:n]

	buckets := Bucket(chosen, len(replacements))
	assignment := map[int]*ra.Automaton{}
	for bi, bucket := range buckets {
		for _, idx := range bucket {
			assignment[idx] = replacements[bi]
		}
	}

	initLoc := a.InitialLocation()
	out := ra.NewAccepting(initLoc.Name, initLoc.IsAccepting)
	for _, loc := range a.Locations() {
		if loc.Name == initLoc.Name {
			continue
		}
		if _, err := out.AddLocation(loc.Name, loc.IsAccepting); err != nil {
			return nil, err
		}
	}

	initVal := a.InitialValuation()
	for _, r := range a.Registers() {
		v, hasVal := initVal[r]
		var vp *int64
		if hasVal {
			vp = &v
		}
		if err := out.AddRegister(r, vp); err != nil {
			return nil, err
		}
	}

	spliceCounter := 0
	for i, t := range all {
		repl, replaced := assignment[i]
		if !replaced {
			if err := out.AddTransition(t.From, t.Symbol, t.Guard, t.Assignment, t.To); err != nil {
				return nil, err
			}
			continue
		}
		prefix := fmt.Sprintf("pr%d_", spliceCounter)
		spliceCounter++
		if err := spliceBetween(out, repl, t.From, t.To, prefix); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// maximalIndependentTransitionIndices implements the "share a vertex" edge
// matching: repeatedly pick a random remaining transition, keep its index,
// then drop every remaining transition touching either of its endpoints.
func maximalIndependentTransitionIndices(all []ra.Transition, rng *rand.Rand) []int {
	remaining := make([]int, len(all))
	for i := range all {
		remaining[i] = i
	}

	var candidates []int
	for len(remaining) > 0 {
		pick := rng.Intn(len(remaining))
		idx := remaining[pick]
		candidates = append(candidates, idx)

		from, to := all[idx].From, all[idx].To
		next := remaining[:0:0]
		for _, r := range remaining {
			t := all[r]
			if t.From == from || t.From == to || t.To == from || t.To == to {
				continue
			}
			next = append(next, r)
		}
		remaining = next
	}
	return candidates
}
