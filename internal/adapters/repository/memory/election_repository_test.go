package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlemos/ballotbox/internal/core/domain"
	"github.com/dlemos/ballotbox/internal/core/ports"
)

func TestSaveAndGet(t *testing.T) {
	repo := NewElectionRepository()
	record := ports.ElectionRecord{ID: uuid.New(), Election: domain.NewElection([]string{"alice"})}

	require.NoError(t, repo.Save(context.Background(), record))

	fetched, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.ElementsMatch(t, []string{"alice"}, fetched.Election.Candidates())
}

func TestGetMissing(t *testing.T) {
	repo := NewElectionRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}

func TestUpdatePersistsNewSnapshot(t *testing.T) {
	repo := NewElectionRepository()
	record := ports.ElectionRecord{ID: uuid.New(), Election: domain.NewElection([]string{"alice"})}
	require.NoError(t, repo.Save(context.Background(), record))

	updated, err := repo.Update(context.Background(), record.ID, func(e domain.Election[string]) (domain.Election[string], error) {
		return e.Cast(domain.NewPluralityBallot("b-1", "alice"))
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Election.Len())

	fetched, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Election.Len())
}

func TestUpdateErrorLeavesStoredValue(t *testing.T) {
	repo := NewElectionRepository()
	record := ports.ElectionRecord{ID: uuid.New(), Election: domain.NewElection([]string{"alice"})}
	require.NoError(t, repo.Save(context.Background(), record))

	_, err := repo.Update(context.Background(), record.ID, func(e domain.Election[string]) (domain.Election[string], error) {
		return e.Cast(domain.NewPluralityBallot("b-1", "mallory"))
	})
	assert.ErrorIs(t, err, domain.ErrCandidateNotInElection)

	fetched, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.Election.Len())
}

func TestUpdateMissing(t *testing.T) {
	repo := NewElectionRepository()

	_, err := repo.Update(context.Background(), uuid.New(), func(e domain.Election[string]) (domain.Election[string], error) {
		return e, nil
	})
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}
