package counting

import (
	"fmt"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// InstantRunoff repeatedly tallies each ballot's first choice among
// the candidates still standing and eliminates the candidates tied for
// fewest votes, until one candidate's share strictly exceeds
// winPercentage. Ties for last place eliminate every tied candidate in
// the same round. Ballots whose every candidate is eliminated stop
// counting toward the denominator; a nil result means the field was
// exhausted before anyone reached the threshold.
//
// winPercentage must be within [50, 100]. Above 50 the returned set is
// always a single candidate, since two candidates cannot both hold a
// majority.
func InstantRunoff[C comparable](ballots []domain.RankedBallot[C], winPercentage float64) ([]C, error) {
	if winPercentage < 50 || winPercentage > 100 {
		return nil, fmt.Errorf("%w: win percentage must be within [50, 100], got %v", ErrInvalidArgument, winPercentage)
	}
	eliminated := make(map[C]struct{})
	for {
		counts := make(map[C]int)
		total := 0
		for _, b := range ballots {
			remaining := stripEliminated(b.Ranking(), eliminated)
			if len(remaining) == 0 {
				continue
			}
			counts[remaining[0]]++
			total++
		}
		if total == 0 {
			return nil, nil
		}
		leaders, most := tiedAtMax(counts)
		if float64(most)/float64(total)*100 > winPercentage {
			return leaders, nil
		}
		losers, _ := tiedAtMin(counts)
		for _, c := range losers {
			eliminated[c] = struct{}{}
		}
	}
}
