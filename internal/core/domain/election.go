package domain

import "slices"

// Election owns a fixed candidate set and the ballots cast so far. It
// is an immutable value: Cast returns a fresh Election and leaves the
// receiver untouched, so callers holding older snapshots are never
// affected by later casts.
type Election[C comparable] struct {
	candidates map[C]struct{}
	ballots    []Ballot[C]
}

// NewElection builds an empty election over the given candidates.
// Duplicate candidates collapse.
func NewElection[C comparable](candidates []C) Election[C] {
	set := make(map[C]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return Election[C]{candidates: set}
}

// Cast validates the ballot and returns a new election with it
// included. The checks run in order: the ballot kind must match the
// ballots already cast (ErrWrongVoteType), its id must be unused
// (ErrDuplicateVote), and every candidate it names must be registered
// (ErrCandidateNotInElection). On failure the receiver is returned
// unchanged alongside the error.
func (e Election[C]) Cast(b Ballot[C]) (Election[C], error) {
	if len(e.ballots) > 0 && b.Kind() != e.ballots[0].Kind() {
		return e, ErrWrongVoteType
	}
	for _, cast := range e.ballots {
		if cast.ID() == b.ID() {
			return e, ErrDuplicateVote
		}
	}
	for _, c := range b.Candidates() {
		if _, ok := e.candidates[c]; !ok {
			return e, ErrCandidateNotInElection
		}
	}
	ballots := make([]Ballot[C], 0, len(e.ballots)+1)
	ballots = append(ballots, b)
	ballots = append(ballots, e.ballots...)
	return Election[C]{candidates: e.candidates, ballots: ballots}, nil
}

// Ballots returns the cast ballots, most recent first.
func (e Election[C]) Ballots() []Ballot[C] {
	return slices.Clone(e.ballots)
}

// Candidates returns the registered candidates in no particular order.
func (e Election[C]) Candidates() []C {
	out := make([]C, 0, len(e.candidates))
	for c := range e.candidates {
		out = append(out, c)
	}
	return out
}

// BallotKind reports the kind shared by all cast ballots; ok is false
// while the election is empty.
func (e Election[C]) BallotKind() (Kind, bool) {
	if len(e.ballots) == 0 {
		return "", false
	}
	return e.ballots[0].Kind(), true
}

func (e Election[C]) Len() int {
	return len(e.ballots)
}
