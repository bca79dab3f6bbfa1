package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dlemos/ballotbox/internal/core/domain"
	"github.com/dlemos/ballotbox/internal/core/ports"
)

// electionRepository keeps elections in process memory. Election
// values are immutable snapshots, so reads need no copying beyond the
// record itself.
type electionRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]ports.ElectionRecord
}

func NewElectionRepository() ports.ElectionRepository {
	return &electionRepository{
		records: make(map[uuid.UUID]ports.ElectionRecord),
	}
}

func (r *electionRepository) Save(_ context.Context, record ports.ElectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *electionRepository) GetByID(_ context.Context, id uuid.UUID) (ports.ElectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return ports.ElectionRecord{}, domain.ErrElectionNotFound
	}
	return record, nil
}

func (r *electionRepository) Update(_ context.Context, id uuid.UUID, fn func(domain.Election[string]) (domain.Election[string], error)) (ports.ElectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return ports.ElectionRecord{}, domain.ErrElectionNotFound
	}
	next, err := fn(record.Election)
	if err != nil {
		return ports.ElectionRecord{}, err
	}
	record.Election = next
	r.records[id] = record
	return record, nil
}
