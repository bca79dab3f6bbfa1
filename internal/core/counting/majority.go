package counting

import (
	"iter"
	"sort"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// MajorityJudgement collects each candidate's scores across all
// ballots and returns the candidates sharing the highest median.
// Medians of even-sized score lists are the mean of the two middle
// elements.
func MajorityJudgement[C comparable](ballots iter.Seq[domain.ScoreBallot[C]]) ([]C, error) {
	byCandidate := make(map[C][]float64)
	seen := false
	for b := range ballots {
		seen = true
		for c, s := range b.Scores() {
			byCandidate[c] = append(byCandidate[c], s)
		}
	}
	if !seen {
		return nil, ErrEmptyInput
	}
	var (
		winners []C
		best    float64
	)
	for c, scores := range byCandidate {
		m, err := median(scores)
		if err != nil {
			return nil, err
		}
		switch {
		case winners == nil || m > best:
			best = m
			winners = []C{c}
		case m == best:
			winners = append(winners, c)
		}
	}
	return winners, nil
}

func median(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}
