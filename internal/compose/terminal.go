package compose

import (
	"fmt"

	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
)

// findFirstTerminal returns the accepting location maximising BFS distance
// from a's initial location, ties broken by insertion order (the earliest
// declared location among those tied for maximum distance wins).
func findFirstTerminal(a *ra.Automaton) (string, error) {
	initName := a.InitialLocation().Name

	dist := map[string]int{initName: 0}
	queue := []string{initName}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range a.OutgoingFrom(cur) {
			if _, seen := dist[t.To]; !seen {
				dist[t.To] = dist[cur] + 1
				queue = append(queue, t.To)
			}
		}
	}

	best := ""
	bestDist := -1
	for _, loc := range a.Locations() {
		if !loc.IsAccepting {
			continue
		}
		d, reachable := dist[loc.Name]
		if !reachable {
			continue
		}
		if d > bestDist {
			bestDist = d
			best = loc.Name
		}
	}

	if best == "" {
		return "", fmt.Errorf("compose: no accepting location reachable from the initial location: %w", rberrors.ErrInvalidArgument)
	}
	return best, nil
}
