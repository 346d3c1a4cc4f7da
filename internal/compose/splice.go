package compose

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/ra"
)

// spliceBetween splices a copy of sub into dst, with sub's initial
// location identified with dst's existing entryName location and sub's
// rendezvous (findFirstTerminal(sub)) identified with dst's existing
// exitName location. Every other sub location is added fresh, renamed
// with prefix. Callers are responsible for verifying sub has no initial
// register values before calling this (InitializedReplacement /
// InitializedDiscriminator).
func spliceBetween(dst, sub *ra.Automaton, entryName, exitName, prefix string) error {
	subInit := sub.InitialLocation().Name
	subTerm, err := findFirstTerminal(sub)
	if err != nil {
		return err
	}

	rename := func(name string) string {
		switch name {
		case subInit:
			return entryName
		case subTerm:
			return exitName
		default:
			return prefix + name
		}
	}

	for _, loc := range sub.Locations() {
		n := rename(loc.Name)
		if n == entryName || n == exitName {
			continue
		}
		if _, err := dst.AddLocation(n, loc.IsAccepting); err != nil {
			return fmt.Errorf("splice %s: %w", prefix, err)
		}
	}

	for _, r := range sub.Registers() {
		if err := dst.AddRegister(r, nil); err != nil {
			return fmt.Errorf("splice %s: %w", prefix, err)
		}
	}

	for _, t := range sub.Transitions() {
		if err := dst.AddTransition(rename(t.From), t.Symbol, t.Guard, t.Assignment, rename(t.To)); err != nil {
			return fmt.Errorf("splice %s: %w", prefix, err)
		}
	}

	return nil
}
