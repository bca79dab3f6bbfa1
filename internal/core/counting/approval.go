package counting

import (
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Approval counts one vote per distinct candidate a ballot approves.
func Approval[C comparable](ballots iter.Seq[domain.ApprovalBallot[C]]) ([]C, error) {
	return AllMaxScores(func(yield func(C, float64) bool) {
		for b := range ballots {
			for _, c := range b.Choices() {
				if !yield(c, 1) {
					return
				}
			}
		}
	})
}
