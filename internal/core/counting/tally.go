package counting

import "iter"

// AllMaxScores accumulates (candidate, weight) pairs into running
// per-candidate totals in a single forward pass, tracking the current
// maximum and every candidate tied at it. It returns the tied-leader
// set: one element is an outright winner, more is a tie. An empty
// sequence yields ErrEmptyInput.
//
// Every single-pass counter bottoms out here, feeding the sequence
// lazily so a streamed ballot source is consumed exactly once.
func AllMaxScores[C comparable](pairs iter.Seq2[C, float64]) ([]C, error) {
	totals := make(map[C]float64)
	leaders := make(map[C]struct{})
	var max float64
	seen := false
	for c, w := range pairs {
		totals[c] += w
		t := totals[c]
		switch {
		case !seen || t > max:
			max = t
			clear(leaders)
			leaders[c] = struct{}{}
		case t == max:
			leaders[c] = struct{}{}
		}
		seen = true
	}
	if !seen {
		return nil, ErrEmptyInput
	}
	winners := make([]C, 0, len(leaders))
	for c := range leaders {
		winners = append(winners, c)
	}
	return winners, nil
}
