package domain

import "errors"

var (
	ErrElectionNotFound       = errors.New("election not found")
	ErrInvalidElectionID      = errors.New("invalid election id")
	ErrNoCandidates           = errors.New("election needs at least one candidate")
	ErrWrongVoteType          = errors.New("ballot kind differs from the ballots already cast")
	ErrDuplicateVote          = errors.New("a ballot with this id was already cast")
	ErrCandidateNotInElection = errors.New("ballot names a candidate not in this election")
	ErrUnknownBallotKind      = errors.New("unknown ballot kind")
	ErrUnknownMethod          = errors.New("unknown counting method")
	ErrMethodNotApplicable    = errors.New("counting method does not apply to the ballots cast")
)
