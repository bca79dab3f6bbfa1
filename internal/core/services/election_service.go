package services

import (
	"context"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/dlemos/ballotbox/internal/core/counting"
	"github.com/dlemos/ballotbox/internal/core/domain"
	"github.com/dlemos/ballotbox/internal/core/ports"
)

type electionService struct {
	repo ports.ElectionRepository
}

func NewElectionService(repo ports.ElectionRepository) ports.ElectionService {
	return &electionService{
		repo: repo,
	}
}

func (s *electionService) Create(ctx context.Context, candidates []string) (ports.ElectionRecord, error) {
	if len(candidates) == 0 {
		return ports.ElectionRecord{}, domain.ErrNoCandidates
	}

	record := ports.ElectionRecord{
		ID:       uuid.New(),
		Election: domain.NewElection(candidates),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return ports.ElectionRecord{}, err
	}
	return record, nil
}

func (s *electionService) Get(ctx context.Context, id uuid.UUID) (ports.ElectionRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *electionService) Cast(ctx context.Context, input ports.CastInput) (string, error) {
	ballot, err := buildBallot(input)
	if err != nil {
		return "", err
	}

	_, err = s.repo.Update(ctx, input.ElectionID, func(e domain.Election[string]) (domain.Election[string], error) {
		return e.Cast(ballot)
	})
	if err != nil {
		return "", err
	}
	return ballot.ID(), nil
}

func (s *electionService) Count(ctx context.Context, input ports.CountInput) (ports.ElectionResult, error) {
	record, err := s.repo.GetByID(ctx, input.ElectionID)
	if err != nil {
		return ports.ElectionResult{}, err
	}

	winners, err := countBallots(record.Election, input)
	if err != nil {
		return ports.ElectionResult{}, err
	}
	sort.Strings(winners)
	return ports.ElectionResult{Method: input.Method, Winners: winners}, nil
}

// buildBallot assembles the domain ballot for a cast request. Ballot
// ids are opaque strings generated here; the aggregate only requires
// uniqueness within the election.
func buildBallot(input ports.CastInput) (domain.Ballot[string], error) {
	id := uuid.NewString()
	switch input.Kind {
	case domain.KindPlurality:
		return domain.NewPluralityBallot(id, input.Choice), nil
	case domain.KindApproval:
		return domain.NewApprovalBallot(id, input.Choices), nil
	case domain.KindRanked:
		return domain.NewRankedBallot(id, input.Ranking), nil
	case domain.KindScore:
		return domain.NewScoreBallot(id, input.Scores), nil
	default:
		return nil, domain.ErrUnknownBallotKind
	}
}

func countBallots(election domain.Election[string], input ports.CountInput) ([]string, error) {
	ballots := election.Ballots()
	switch input.Method {
	case ports.MethodPlurality:
		bs, err := ballotsAs[domain.PluralityBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Plurality(slices.Values(bs))
	case ports.MethodQuota:
		bs, err := ballotsAs[domain.PluralityBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Quota(slices.Values(bs), input.Quota)
	case ports.MethodPluralityWithRunoff:
		bs, err := ballotsAs[domain.RankedBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.PluralityWithRunoff(bs)
	case ports.MethodInstantRunoff:
		bs, err := ballotsAs[domain.RankedBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.InstantRunoff(bs, input.WinPercentage)
	case ports.MethodCoombs:
		bs, err := ballotsAs[domain.RankedBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Coombs(bs)
	case ports.MethodBorda:
		bs, err := ballotsAs[domain.RankedBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Borda(slices.Values(bs), input.StartingAt)
	case ports.MethodDowdall:
		bs, err := ballotsAs[domain.RankedBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Dowdall(slices.Values(bs))
	case ports.MethodApproval:
		bs, err := ballotsAs[domain.ApprovalBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Approval(slices.Values(bs))
	case ports.MethodScore:
		bs, err := ballotsAs[domain.ScoreBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.Score(slices.Values(bs))
	case ports.MethodMajorityJudgement:
		bs, err := ballotsAs[domain.ScoreBallot[string]](ballots)
		if err != nil {
			return nil, err
		}
		return counting.MajorityJudgement(slices.Values(bs))
	default:
		return nil, domain.ErrUnknownMethod
	}
}

// ballotsAs narrows the election's ballots to the concrete variant a
// counting method consumes. The aggregate guarantees all ballots share
// one kind, so a single mismatch means the whole election uses a
// different variant.
func ballotsAs[B domain.Ballot[string]](ballots []domain.Ballot[string]) ([]B, error) {
	out := make([]B, 0, len(ballots))
	for _, b := range ballots {
		v, ok := b.(B)
		if !ok {
			return nil, domain.ErrMethodNotApplicable
		}
		out = append(out, v)
	}
	return out, nil
}
