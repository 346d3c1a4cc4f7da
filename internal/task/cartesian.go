package task

// CartesianProduct is the single generic combinator spec section 9
// ("Variadic boilerplate") calls for in place of a 1..22-argument
// overload family: given k iterables, it produces every combination as a
// flat, ordered slice, one per element of the Cartesian product, in
// lexicographic order on the index tuple (the last iterable varies
// fastest, matching an ordinary nested-loop expansion).
//
// An empty iterables list yields a single empty combination. Any
// zero-length iterable yields no combinations at all.
func CartesianProduct[T any](iterables ...[]T) [][]T {
	combos := [][]T{{}}
	for _, it := range iterables {
		if len(it) == 0 {
			return nil
		}
		var next [][]T
		for _, combo := range combos {
			for _, v := range it {
				extended := make([]T, len(combo), len(combo)+1)
				copy(extended, combo)
				next = append(next, append(extended, v))
			}
		}
		combos = next
	}
	return combos
}
