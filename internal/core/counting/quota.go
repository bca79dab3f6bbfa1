package counting

import (
	"fmt"
	"iter"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Quota returns every candidate whose share of the ballots meets the
// threshold q, read as a percentage when q > 1 and as a fraction
// otherwise. A nil result means no candidate reached the quota, which
// is a normal outcome rather than an error.
func Quota[C comparable](ballots iter.Seq[domain.PluralityBallot[C]], q float64) ([]C, error) {
	if q <= 0 || q > 100 {
		return nil, fmt.Errorf("%w: quota must be within (0, 100], got %v", ErrInvalidArgument, q)
	}
	fraction := q
	if q > 1 {
		fraction = q / 100
	}
	counts := make(map[C]int)
	total := 0
	for b := range ballots {
		counts[b.Choice()]++
		total++
	}
	if total == 0 {
		return nil, ErrEmptyInput
	}
	var winners []C
	for c, n := range counts {
		if float64(n)/float64(total) >= fraction {
			winners = append(winners, c)
		}
	}
	return winners, nil
}
