package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteLevelIsIdempotent(t *testing.T) {
	p := NewUserProfile("u1", "Alice")

	require.True(t, p.CompleteLevel(AgeTierJunior, 2))
	require.True(t, p.CompleteLevel(AgeTierJunior, 1))
	assert.False(t, p.CompleteLevel(AgeTierJunior, 2))

	assert.Equal(t, []int{1, 2}, p.CompletedByTier[AgeTierJunior])
	assert.Equal(t, []int{1, 2}, p.CompletedLevelIDs)

	// Same id in another tier lands in that tier's ledger but not twice in the union.
	require.True(t, p.CompleteLevel(AgeTierSenior, 1))
	assert.Equal(t, []int{1}, p.CompletedByTier[AgeTierSenior])
	assert.Equal(t, []int{1, 2}, p.CompletedLevelIDs)
}

func TestAddPointsRejectsNegative(t *testing.T) {
	p := NewUserProfile("u1", "Alice")
	require.NoError(t, p.AddPoints(10))
	require.NoError(t, p.AddPoints(0))
	assert.ErrorIs(t, p.AddPoints(-1), ErrInvalidAmount)
	assert.Equal(t, 10, p.TotalPoints)
}

func TestRecordOutcomeKeepsCorrectBelowAnswered(t *testing.T) {
	p := NewUserProfile("u1", "Alice")
	for _, correct := range []bool{true, false, true, true, false} {
		p.RecordOutcome(correct)
		assert.LessOrEqual(t, p.CorrectAnswers, p.QuestionsAnswered)
	}
	assert.Equal(t, 5, p.QuestionsAnswered)
	assert.Equal(t, 3, p.CorrectAnswers)
}

func TestSelectTier(t *testing.T) {
	p := NewUserProfile("u1", "Alice")
	p.CompleteLevel(AgeTierJunior, 1)

	changed, err := p.SelectTier(AgeTierSenior)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = p.SelectTier(AgeTierSenior)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = p.SelectTier("adult")
	assert.ErrorIs(t, err, ErrInvalidTier)

	// switching keeps the other tier's ledger
	assert.True(t, p.HasCompleted(AgeTierJunior, 1))
}

func TestCloneDoesNotAlias(t *testing.T) {
	p := NewUserProfile("u1", "Alice")
	p.CompleteLevel(AgeTierJunior, 1)

	c := p.Clone()
	c.CompleteLevel(AgeTierJunior, 2)

	assert.Equal(t, []int{1}, p.CompletedByTier[AgeTierJunior])
	assert.Equal(t, []int{1}, p.CompletedLevelIDs)
}

func TestMergeProfiles(t *testing.T) {
	now := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)

	remote := NewUserProfile("u1", "Alice")
	remote.TotalPoints = 40
	remote.QuestionsAnswered = 8
	remote.CorrectAnswers = 4
	remote.CompleteLevel(AgeTierSenior, 1)
	remote.UpdatedAt = now

	local := NewUserProfile("u1", "Alice")
	local.AgeTier = AgeTierJunior
	local.TotalPoints = 60
	local.QuestionsAnswered = 5
	local.CorrectAnswers = 5
	local.CompleteLevel(AgeTierJunior, 1)
	local.CompleteLevel(AgeTierJunior, 2)
	local.UpdatedAt = now.Add(time.Minute)

	merged := MergeProfiles(remote, local)
	assert.Equal(t, AgeTierJunior, merged.AgeTier)
	assert.Equal(t, 60, merged.TotalPoints)
	assert.Equal(t, 8, merged.QuestionsAnswered)
	assert.Equal(t, 5, merged.CorrectAnswers)
	assert.Equal(t, []int{1}, merged.CompletedByTier[AgeTierSenior])
	assert.Equal(t, []int{1, 2}, merged.CompletedByTier[AgeTierJunior])
	assert.Equal(t, []int{1, 2}, merged.CompletedLevelIDs)
	assert.Equal(t, now.Add(time.Minute), merged.UpdatedAt)

	remote.AgeTier = AgeTierSenior
	assert.Equal(t, AgeTierSenior, MergeProfiles(remote, local).AgeTier)
}

func TestParseAgeTier(t *testing.T) {
	tier, err := ParseAgeTier("9-12")
	require.NoError(t, err)
	assert.Equal(t, AgeTierJunior, tier)

	_, err = ParseAgeTier("18+")
	assert.ErrorIs(t, err, ErrInvalidTier)
}
