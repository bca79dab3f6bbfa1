package counting

import (
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Plurality counts one vote per ballot and returns the candidates tied
// for the highest count.
func Plurality[C comparable](ballots iter.Seq[domain.PluralityBallot[C]]) ([]C, error) {
	return AllMaxScores(func(yield func(C, float64) bool) {
		for b := range ballots {
			if !yield(b.Choice(), 1) {
				return
			}
		}
	})
}
