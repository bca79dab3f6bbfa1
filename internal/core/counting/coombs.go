package counting

import "github.com/dlemos/ballotbox/internal/core/domain"

// Coombs tallies first choices like instant runoff but eliminates the
// candidates with the most last-place votes each round. A candidate
// whose first-choice share exceeds half of the remaining ballots wins;
// if elimination exhausts every ballot first, the result is nil ("no
// winner").
func Coombs[C comparable](ballots []domain.RankedBallot[C]) ([]C, error) {
	eliminated := make(map[C]struct{})
	for {
		var active [][]C
		for _, b := range ballots {
			remaining := stripEliminated(b.Ranking(), eliminated)
			if len(remaining) > 0 {
				active = append(active, remaining)
			}
		}
		if len(active) == 0 {
			return nil, nil
		}

		firsts := make(map[C]int)
		for _, remaining := range active {
			firsts[remaining[0]]++
		}
		leaders, most := tiedAtMax(firsts)
		if float64(most) > float64(len(active))/2 {
			return leaders, nil
		}

		lasts := make(map[C]int)
		for _, remaining := range active {
			lasts[remaining[len(remaining)-1]]++
		}
		losers, _ := tiedAtMax(lasts)
		for _, c := range losers {
			eliminated[c] = struct{}{}
		}
	}
}
