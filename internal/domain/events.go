package domain

import "time"

// EventKind names a profile change notification.
type EventKind string

const (
	EventPointsChanged  EventKind = "points_changed"
	EventLevelCompleted EventKind = "level_completed"
	EventStatsChanged   EventKind = "stats_changed"
	EventAgeTierChanged EventKind = "age_tier_changed"
	EventLoggedOut      EventKind = "logged_out"
)

// ProfileEvent is published by the profile store after a change is persisted.
// Only the fields relevant to Kind are set.
type ProfileEvent struct {
	Kind              EventKind `json:"kind"`
	UserID            string    `json:"userId"`
	TotalPoints       int       `json:"totalPoints,omitempty"`
	LevelID           int       `json:"levelId,omitempty"`
	Tier              AgeTier   `json:"tier,omitempty"`
	CompletedLevelIDs []int     `json:"completedLevelIds,omitempty"`
	QuestionsAnswered int       `json:"questionsAnswered,omitempty"`
	CorrectAnswers    int       `json:"correctAnswers,omitempty"`
	At                time.Time `json:"at"`
}
