package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/dlemos/ballotbox/internal/core/domain"
)

// Counting method identifiers accepted by ElectionService.Count.
const (
	MethodPlurality           = "plurality"
	MethodQuota               = "quota"
	MethodPluralityWithRunoff = "plurality-with-runoff"
	MethodInstantRunoff       = "instant-runoff"
	MethodCoombs              = "coombs"
	MethodBorda               = "borda"
	MethodDowdall             = "dowdall"
	MethodApproval            = "approval"
	MethodScore               = "score"
	MethodMajorityJudgement   = "majority-judgement"
)

type ElectionRecord struct {
	ID       uuid.UUID
	Election domain.Election[string]
}

type ElectionRepository interface {
	Save(ctx context.Context, record ElectionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (ElectionRecord, error)
	// Update applies fn to the stored election atomically and persists
	// the returned snapshot. The stored value is untouched when fn
	// errors.
	Update(ctx context.Context, id uuid.UUID, fn func(domain.Election[string]) (domain.Election[string], error)) (ElectionRecord, error)
}

type CastInput struct {
	ElectionID uuid.UUID
	Kind       domain.Kind
	Choice     string
	Choices    []string
	Ranking    []string
	Scores     map[string]float64
}

type CountInput struct {
	ElectionID    uuid.UUID
	Method        string
	Quota         float64
	StartingAt    int
	WinPercentage float64
}

type ElectionResult struct {
	Method  string
	Winners []string
}

type ElectionService interface {
	Create(ctx context.Context, candidates []string) (ElectionRecord, error)
	Get(ctx context.Context, id uuid.UUID) (ElectionRecord, error)
	Cast(ctx context.Context, input CastInput) (string, error)
	Count(ctx context.Context, input CountInput) (ElectionResult, error)
}
