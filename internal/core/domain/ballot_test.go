package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralityBallot(t *testing.T) {
	b := NewPluralityBallot("b-1", "alice")

	assert.Equal(t, "b-1", b.ID())
	assert.Equal(t, KindPlurality, b.Kind())
	assert.Equal(t, "alice", b.Choice())
	assert.Equal(t, []string{"alice"}, b.Candidates())
}

func TestApprovalBallotCollapsesDuplicates(t *testing.T) {
	b := NewApprovalBallot("b-2", []string{"alice", "bob", "alice", "bob"})

	assert.Equal(t, KindApproval, b.Kind())
	assert.Equal(t, []string{"alice", "bob"}, b.Choices())
}

func TestRankedBallotIsDetachedFromInput(t *testing.T) {
	ranking := []string{"alice", "bob"}
	b := NewRankedBallot("b-3", ranking)
	ranking[0] = "mallory"

	assert.Equal(t, []string{"alice", "bob"}, b.Ranking())
}

func TestScoreBallotCandidates(t *testing.T) {
	scores := map[string]float64{"alice": 5, "bob": 2}
	b := NewScoreBallot("b-4", scores)
	scores["mallory"] = 10

	assert.Equal(t, KindScore, b.Kind())
	assert.ElementsMatch(t, []string{"alice", "bob"}, b.Candidates())
	assert.Equal(t, map[string]float64{"alice": 5, "bob": 2}, b.Scores())
}
