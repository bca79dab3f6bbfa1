package counting

import (
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Score sums each candidate's raw scores across all ballots. The
// comparison is over sums, not means: when every ballot scores every
// candidate the two orderings coincide, and the sum is the behavior
// callers rely on when they don't.
func Score[C comparable](ballots iter.Seq[domain.ScoreBallot[C]]) ([]C, error) {
	return AllMaxScores(func(yield func(C, float64) bool) {
		for b := range ballots {
			for c, s := range b.Scores() {
				if !yield(c, s) {
					return
				}
			}
		}
	})
}
