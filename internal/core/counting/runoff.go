package counting

import "github.com/dlemos/ballotbox/internal/core/domain"

// PluralityWithRunoff tallies first choices and declares any candidate
// holding a strict majority the winner outright. Otherwise the
// candidates tied for first and second place advance to a single
// runoff, where each ballot votes for its most preferred candidate in
// the pool; ballots naming none are dropped. A runoff leader with a
// strict majority of the counted runoff ballots wins, and anything
// short of that is a nil result ("no winner").
func PluralityWithRunoff[C comparable](ballots []domain.RankedBallot[C]) ([]C, error) {
	if len(ballots) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make(map[C]int)
	total := 0
	for _, b := range ballots {
		ranking := b.Ranking()
		if len(ranking) == 0 {
			continue
		}
		counts[ranking[0]]++
		total++
	}
	if total == 0 {
		return nil, nil
	}
	leaders, most := tiedAtMax(counts)
	if float64(most)/float64(total) > 0.5 {
		return leaders, nil
	}

	pool := make(map[C]struct{}, len(leaders))
	for _, c := range leaders {
		pool[c] = struct{}{}
	}
	second := 0
	for _, n := range counts {
		if n < most && n > second {
			second = n
		}
	}
	for c, n := range counts {
		if n == second && second > 0 {
			pool[c] = struct{}{}
		}
	}

	runoff := make(map[C]int)
	counted := 0
	for _, b := range ballots {
		for _, c := range b.Ranking() {
			if _, ok := pool[c]; ok {
				runoff[c]++
				counted++
				break
			}
		}
	}
	if counted == 0 {
		return nil, nil
	}
	finalists, votes := tiedAtMax(runoff)
	if float64(votes)/float64(counted) > 0.5 {
		return finalists, nil
	}
	return nil, nil
}
