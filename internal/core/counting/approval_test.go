package counting

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalWinner(t *testing.T) {
	ballots := approvalBallots(
		[]string{"alice", "bob"},
		[]string{"alice"},
		[]string{"bob", "carol"},
		[]string{"alice", "carol"},
	)

	winners, err := Approval(slices.Values(ballots))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, winners)
}

func TestApprovalDuplicatesWithinBallotCollapse(t *testing.T) {
	ballots := approvalBallots(
		[]string{"alice", "alice", "alice"},
		[]string{"bob"},
		[]string{"bob"},
	)

	winners, err := Approval(slices.Values(ballots))
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, winners)
}

func TestApprovalEmptyInput(t *testing.T) {
	_, err := Approval(slices.Values(approvalBallots()))
	assert.ErrorIs(t, err, ErrEmptyInput)
}
