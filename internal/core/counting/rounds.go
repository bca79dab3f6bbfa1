package counting

// Shared round arithmetic for the elimination counters.

func tiedAtMax[C comparable](counts map[C]int) ([]C, int) {
	var tied []C
	best := 0
	for c, n := range counts {
		switch {
		case tied == nil || n > best:
			best = n
			tied = []C{c}
		case n == best:
			tied = append(tied, c)
		}
	}
	return tied, best
}

func tiedAtMin[C comparable](counts map[C]int) ([]C, int) {
	var tied []C
	least := 0
	for c, n := range counts {
		switch {
		case tied == nil || n < least:
			least = n
			tied = []C{c}
		case n == least:
			tied = append(tied, c)
		}
	}
	return tied, least
}

func stripEliminated[C comparable](ranking []C, eliminated map[C]struct{}) []C {
	var remaining []C
	for _, c := range ranking {
		if _, out := eliminated[c]; !out {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
