package app

import (
	"sort"

	"justice-play/internal/domain"
)

// LeaderboardService ranks the caller against a fixed sample of players.
type LeaderboardService struct {
	sample []domain.LeaderboardEntry
}

func NewLeaderboardService(sample []domain.LeaderboardEntry) *LeaderboardService {
	return &LeaderboardService{sample: sample}
}

// For merges the profile into the sample, replacing a sample row with the same id,
// and ranks by points descending, then name.
func (l *LeaderboardService) For(profile domain.UserProfile) domain.Leaderboard {
	entries := make([]domain.LeaderboardEntry, 0, len(l.sample)+1)
	for _, e := range l.sample {
		if e.UserID != profile.ID {
			entries = append(entries, e)
		}
	}
	entries = append(entries, domain.LeaderboardEntry{
		UserID:          profile.ID,
		DisplayName:     profile.DisplayName,
		Points:          profile.TotalPoints,
		LevelsCompleted: len(profile.CompletedLevelIDs),
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	board := domain.Leaderboard{Entries: entries}
	for i := range entries {
		entries[i].Rank = i + 1
		if entries[i].UserID == profile.ID {
			board.UserRank = i + 1
		}
	}
	return board
}

// SampleLeaderboard is the static table shown next to the player.
func SampleLeaderboard() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{UserID: "user1", DisplayName: "Emma", Points: 350, LevelsCompleted: 3},
		{UserID: "user2", DisplayName: "Noah", Points: 300, LevelsCompleted: 3},
		{UserID: "user3", DisplayName: "Olivia", Points: 280, LevelsCompleted: 2},
		{UserID: "user4", DisplayName: "Liam", Points: 225, LevelsCompleted: 2},
		{UserID: "user5", DisplayName: "Ava", Points: 200, LevelsCompleted: 2},
		{UserID: "user6", DisplayName: "Sophia", Points: 175, LevelsCompleted: 1},
		{UserID: "user7", DisplayName: "Jackson", Points: 150, LevelsCompleted: 1},
		{UserID: "user8", DisplayName: "Mia", Points: 120, LevelsCompleted: 1},
		{UserID: "user9", DisplayName: "Lucas", Points: 100, LevelsCompleted: 1},
	}
}
