// Package compose implements the three structural composition operators
// over Register Automata — concat, PartialReplacement, SplitSingle — and
// the bucketing utility they share.
//
// All three construct a fresh automaton, preserve initial-location
// semantics, rename colliding entities deterministically, and never
// mutate their inputs, mirroring the "build a joined copy" shape of
// internal/ictiobus/automaton/nfa.go's Join (prefix-renamed state names,
// add-then-link, no in-place mutation of either input).
package compose

// Bucket splits items into k sublists whose sizes differ by at most one:
// the first n mod k buckets get ceil(n/k) items, the rest get floor(n/k).
// Order within each bucket preserves input order.
func Bucket[T any](items []T, k int) [][]T {
	if k < 1 {
		panic("compose: k must be >= 1")
	}
	n := len(items)
	base := n / k
	extra := n % k

	buckets := make([][]T, k)
	pos := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		buckets[i] = append([]T(nil), items[pos:pos+size]...)
		pos += size
	}
	return buckets
}
