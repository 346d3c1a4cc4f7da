package compose

import (
	"fmt"
	"math/rand"

	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
)

// SplitSingle picks a non-initial, non-accepting location q of a with at
// least two non-loop incoming and two non-loop outgoing transitions,
// replaces it with four fresh locations (inL, inR, outL, outR) inheriting
// q's acceptance, and splices two independent copies of discriminator
// between (inL, outL) and (inR, outR). q's non-loop incoming edges are
// shuffled and bucketed in half onto inL/inR; its non-loop outgoing edges
// likewise onto outL/outR. Self-loops on q are dropped.
//
// discriminator must have an empty initial valuation
// (ErrInitializedDiscriminator otherwise). Fails with
// ErrNoSplittableLocation if no candidate q exists.
func SplitSingle(a *ra.Automaton, discriminator *ra.Automaton, rng *rand.Rand) (*ra.Automaton, error) {
	if len(discriminator.InitialValuation()) > 0 {
		return nil, fmt.Errorf("compose: %w", rberrors.ErrInitializedDiscriminator)
	}

	var candidates []string
	for _, loc := range a.Locations() {
		if loc.IsInitial || loc.IsAccepting {
			continue
		}
		if len(a.NonLoopIncoming(loc.Name)) >= 2 && len(a.NonLoopOutgoing(loc.Name)) >= 2 {
			candidates = append(candidates, loc.Name)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("compose: %w", rberrors.ErrNoSplittableLocation)
	}
	q := candidates[rng.Intn(len(candidates))]
	qLoc, _ := a.Location(q)

	inL, inR := "inL_"+q, "inR_"+q
	outL, outR := "outL_"+q, "outR_"+q

	// q itself is left in place as an isolated location once its edges are
	// redirected away from it: nothing in the operator deletes a location,
	// only the four fresh ones are genuinely new (matching the
	// |locations| += 4 + 2*(|D.locations|-2) invariant).
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
	for _, n := range []string{inL, inR, outL, outR} {
		if _, err := out.AddLocation(n, qLoc.IsAccepting); err != nil {
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

	all := a.Transitions()
	var inIdx, outIdx []int
	for i, t := range all {
		if t.From == q && t.To == q {
			continue // self-loop, dropped
		}
		if t.To == q {
			inIdx = append(inIdx, i)
		}
		if t.From == q {
			outIdx = append(outIdx, i)
		}
	}
	rng.Shuffle(len(inIdx), func(i, j int) { inIdx[i], inIdx[j] = inIdx[j], inIdx[i] })
	rng.Shuffle(len(outIdx), func(i, j int) { outIdx[i], outIdx[j] = outIdx[j], outIdx[i] })

	inBuckets := Bucket(inIdx, 2)
	outBuckets := Bucket(outIdx, 2)

	redirectTo := map[int]string{}
	for _, idx := range inBuckets[0] {
		redirectTo[idx] = inL
	}
	for _, idx := range inBuckets[1] {
		redirectTo[idx] = inR
	}
	redirectFrom := map[int]string{}
	for _, idx := range outBuckets[0] {
		redirectFrom[idx] = outL
	}
	for _, idx := range outBuckets[1] {
		redirectFrom[idx] = outR
	}

	for i, t := range all {
		if t.From == q && t.To == q {
			continue
		}
		from, to := t.From, t.To
		if nf, ok := redirectFrom[i]; ok {
			from = nf
		}
		if nt, ok := redirectTo[i]; ok {
			to = nt
		}
		if err := out.AddTransition(from, t.Symbol, t.Guard, t.Assignment, to); err != nil {
			return nil, err
		}
	}

	if err := spliceBetween(out, discriminator, inL, outL, "dl_"); err != nil {
		return nil, err
	}
	if err := spliceBetween(out, discriminator, inR, outR, "dr_"); err != nil {
		return nil, err
	}

	return out, nil
}
