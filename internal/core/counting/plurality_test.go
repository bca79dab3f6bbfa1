package counting

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralityWinner(t *testing.T) {
	ballots := pluralityBallots("alice", "alice", "bob")

	winners, err := Plurality(slices.Values(ballots))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, winners)
}

func TestPluralityTie(t *testing.T) {
	ballots := pluralityBallots("alice", "bob", "bob", "alice", "carol")

	winners, err := Plurality(slices.Values(ballots))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, winners)
}

func TestPluralityEmptyInput(t *testing.T) {
	_, err := Plurality(slices.Values(pluralityBallots()))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestQuota(t *testing.T) {
	tests := []struct {
		name    string
		quota   float64
		winners []string
	}{
		{name: "unmet threshold has no winner", quota: 70, winners: nil},
		{name: "low threshold ties both", quota: 30, winners: []string{"alice", "bob"}},
		{name: "threshold met by majority only", quota: 60, winners: []string{"alice"}},
		{name: "fraction form", quota: 0.6, winners: []string{"alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ballots := pluralityBallots("alice", "alice", "bob")

			winners, err := Quota(slices.Values(ballots), tt.quota)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.winners, winners)
		})
	}
}

func TestQuotaInvalidThreshold(t *testing.T) {
	for _, q := range []float64{0, -1, 100.5} {
		_, err := Quota(slices.Values(pluralityBallots("alice")), q)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestQuotaEmptyInput(t *testing.T) {
	_, err := Quota(slices.Values(pluralityBallots()), 50)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
