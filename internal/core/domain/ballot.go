package domain

import (
	"maps"
	"slices"
)

// Kind discriminates the four ballot variants. An election only ever
// holds ballots of a single kind.
type Kind string

const (
	KindPlurality Kind = "plurality"
	KindApproval  Kind = "approval"
	KindRanked    Kind = "ranked"
	KindScore     Kind = "score"
)

// Ballot is the closed union of the four cast-ballot shapes. The id is
// fixed at construction; Candidates reports every candidate the ballot
// names, which the election aggregate validates against its registered
// candidate set.
type Ballot[C comparable] interface {
	ID() string
	Kind() Kind
	Candidates() []C
}

// PluralityBallot names exactly one candidate.
type PluralityBallot[C comparable] struct {
	id     string
	choice C
}

func NewPluralityBallot[C comparable](id string, choice C) PluralityBallot[C] {
	return PluralityBallot[C]{id: id, choice: choice}
}

func (b PluralityBallot[C]) ID() string      { return b.id }
func (b PluralityBallot[C]) Kind() Kind      { return KindPlurality }
func (b PluralityBallot[C]) Choice() C       { return b.choice }
func (b PluralityBallot[C]) Candidates() []C { return []C{b.choice} }

// ApprovalBallot names an unordered set of approved candidates.
// Duplicates collapse to a single approval at construction.
type ApprovalBallot[C comparable] struct {
	id      string
	choices []C
}

func NewApprovalBallot[C comparable](id string, choices []C) ApprovalBallot[C] {
	seen := make(map[C]struct{}, len(choices))
	distinct := make([]C, 0, len(choices))
	for _, c := range choices {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		distinct = append(distinct, c)
	}
	return ApprovalBallot[C]{id: id, choices: distinct}
}

func (b ApprovalBallot[C]) ID() string      { return b.id }
func (b ApprovalBallot[C]) Kind() Kind      { return KindApproval }
func (b ApprovalBallot[C]) Choices() []C    { return slices.Clone(b.choices) }
func (b ApprovalBallot[C]) Candidates() []C { return slices.Clone(b.choices) }

// RankedBallot lists candidates in strict preference order, most
// preferred first. Omitted candidates count as abstentions.
type RankedBallot[C comparable] struct {
	id      string
	ranking []C
}

func NewRankedBallot[C comparable](id string, ranking []C) RankedBallot[C] {
	return RankedBallot[C]{id: id, ranking: slices.Clone(ranking)}
}

func (b RankedBallot[C]) ID() string      { return b.id }
func (b RankedBallot[C]) Kind() Kind      { return KindRanked }
func (b RankedBallot[C]) Ranking() []C    { return slices.Clone(b.ranking) }
func (b RankedBallot[C]) Candidates() []C { return slices.Clone(b.ranking) }

// ScoreBallot assigns a numeric score to each candidate it names.
type ScoreBallot[C comparable] struct {
	id     string
	scores map[C]float64
}

func NewScoreBallot[C comparable](id string, scores map[C]float64) ScoreBallot[C] {
	return ScoreBallot[C]{id: id, scores: maps.Clone(scores)}
}

func (b ScoreBallot[C]) ID() string            { return b.id }
func (b ScoreBallot[C]) Kind() Kind            { return KindScore }
func (b ScoreBallot[C]) Scores() map[C]float64 { return maps.Clone(b.scores) }

func (b ScoreBallot[C]) Candidates() []C {
	return slices.Collect(maps.Keys(b.scores))
}
