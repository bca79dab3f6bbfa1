package counting

import (
	"fmt"
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Borda awards the candidate at 0-based position i of an n-long
// ranking n-i-1+startingAt points. startingAt must be 0 or 1; it
// shifts every total by the same per-ballot constant, so the winner
// set is identical either way.
func Borda[C comparable](ballots iter.Seq[domain.RankedBallot[C]], startingAt int) ([]C, error) {
	if startingAt != 0 && startingAt != 1 {
		return nil, fmt.Errorf("%w: starting_at must be 0 or 1, got %d", ErrInvalidArgument, startingAt)
	}
	return AllMaxScores(func(yield func(C, float64) bool) {
		for b := range ballots {
			ranking := b.Ranking()
			n := len(ranking)
			for i, c := range ranking {
				if !yield(c, float64(n-i-1+startingAt)) {
					return
				}
			}
		}
	})
}
