// Package util contains small generic helpers shared across rabench's
// internal packages, chiefly for making map iteration deterministic.
package util

import (
	"sort"
	"strings"
)

// OrderedKeys returns the keys of m sorted ascending. Spec ordering
// guarantees require every randomized decision to consume a deterministic
// traversal of whatever collection it's drawing from; this is the one place
// that traversal order is established for string-keyed maps.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	if len(items) == 1 {
		return items[0]
	} else if len(items) == 2 {
		return items[0] + " and " + items[1]
	}

	cp := make([]string, len(items))
	copy(cp, items)
	cp[len(cp)-1] = "and " + cp[len(cp)-1]
	return strings.Join(cp, ", ")
}
