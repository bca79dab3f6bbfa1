package counting

import (
	"fmt"
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

var ballotSeq int

func nextID() string {
	ballotSeq++
	return fmt.Sprintf("ballot-%d", ballotSeq)
}

func pluralityBallots(choices ...string) []domain.PluralityBallot[string] {
	out := make([]domain.PluralityBallot[string], 0, len(choices))
	for _, c := range choices {
		out = append(out, domain.NewPluralityBallot(nextID(), c))
	}
	return out
}

func rankedBallots(rankings ...[]string) []domain.RankedBallot[string] {
	out := make([]domain.RankedBallot[string], 0, len(rankings))
	for _, r := range rankings {
		out = append(out, domain.NewRankedBallot(nextID(), r))
	}
	return out
}

func approvalBallots(choices ...[]string) []domain.ApprovalBallot[string] {
	out := make([]domain.ApprovalBallot[string], 0, len(choices))
	for _, c := range choices {
		out = append(out, domain.NewApprovalBallot(nextID(), c))
	}
	return out
}

func scoreBallots(scores ...map[string]float64) []domain.ScoreBallot[string] {
	out := make([]domain.ScoreBallot[string], 0, len(scores))
	for _, s := range scores {
		out = append(out, domain.NewScoreBallot(nextID(), s))
	}
	return out
}

type pair struct {
	candidate string
	weight    float64
}

func pairs(ps ...pair) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, p := range ps {
			if !yield(p.candidate, p.weight) {
				return
			}
		}
	}
}
