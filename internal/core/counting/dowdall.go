package counting

import (
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Dowdall awards the candidate at 0-based position i of a ranking
// 1/(i+1) points, decaying harmonically instead of linearly.
func Dowdall[C comparable](ballots iter.Seq[domain.RankedBallot[C]]) ([]C, error) {
	return AllMaxScores(func(yield func(C, float64) bool) {
		for b := range ballots {
			for i, c := range b.Ranking() {
				if !yield(c, 1/float64(i+1)) {
					return
				}
			}
		}
	})
}
