package transcript

// MultisetEqual reports whether a and b contain the same elements with the
// same multiplicities, irrespective of order: lengths must match, and every
// element of a is removed from a mutable copy of b exactly once, leaving it
// empty.
func MultisetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	remaining := make([]string, len(b))
	copy(remaining, b)

	for _, x := range a {
		found := false
		for i, y := range remaining {
			if x == y {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return len(remaining) == 0
}

// MultisetRemove removes each element of a from pool, one occurrence per
// match, and returns the remaining pool plus the count actually removed.
// Every match is removed conservatively: resubmitting an already-removed
// value fails the count rather than silently succeeding.
func MultisetRemove(pool []string, a []string) (remaining []string, removed int) {
	remaining = make([]string, len(pool))
	copy(remaining, pool)

	for _, x := range a {
		for i, y := range remaining {
			if x == y {
				remaining = append(remaining[:i], remaining[i+1:]...)
				removed++
				break
			}
		}
	}

	return remaining, removed
}
