package app_test

import (
	"testing"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardRanksPlayer(t *testing.T) {
	board := app.NewLeaderboardService(app.SampleLeaderboard())
	profile := domain.NewUserProfile("u1", "Zed")
	profile.TotalPoints = 225
	profile.CompleteLevel(domain.AgeTierSenior, 1)

	got := board.For(profile)
	assert.Len(t, got.Entries, 10)
	// ties break on name, so Liam stays ahead
	assert.Equal(t, 5, got.UserRank)
	assert.Equal(t, "Liam", got.Entries[3].DisplayName)
	assert.Equal(t, domain.LeaderboardEntry{UserID: "u1", DisplayName: "Zed", Points: 225, LevelsCompleted: 1, Rank: 5}, got.Entries[4])
	for i, entry := range got.Entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestLeaderboardReplacesSampleRow(t *testing.T) {
	board := app.NewLeaderboardService(app.SampleLeaderboard())
	profile := domain.NewUserProfile("user1", "Emma")

	got := board.For(profile)
	assert.Len(t, got.Entries, 9)
	assert.Equal(t, 9, got.UserRank)
}
