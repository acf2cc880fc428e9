package domain

import (
	"sort"
	"time"
)

// AgeTier is the coarse age bracket that selects a content track and a progress ledger.
type AgeTier string

const (
	AgeTierJunior AgeTier = "9-12"
	AgeTierSenior AgeTier = "12-16"
)

// AgeTiers lists every supported tier in display order.
func AgeTiers() []AgeTier {
	return []AgeTier{AgeTierJunior, AgeTierSenior}
}

// ParseAgeTier validates a raw tier label.
func ParseAgeTier(raw string) (AgeTier, error) {
	tier := AgeTier(raw)
	if !tier.Valid() {
		return "", ErrInvalidTier
	}
	return tier, nil
}

func (t AgeTier) Valid() bool {
	return t == AgeTierJunior || t == AgeTierSenior
}

// UserProfile is the mutable game state of one account.
type UserProfile struct {
	ID                string            `json:"id"`
	DisplayName       string            `json:"displayName"`
	AgeTier           AgeTier           `json:"ageTier,omitempty"`
	TotalPoints       int               `json:"totalPoints"`
	QuestionsAnswered int               `json:"questionsAnswered"`
	CorrectAnswers    int               `json:"correctAnswers"`
	CompletedLevelIDs []int             `json:"completedLevelIds"`
	CompletedByTier   map[AgeTier][]int `json:"completedLevelIdsByTier"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// NewUserProfile returns the zero state assigned at signup.
func NewUserProfile(id, displayName string) UserProfile {
	return UserProfile{
		ID:                id,
		DisplayName:       displayName,
		CompletedLevelIDs: []int{},
		CompletedByTier:   map[AgeTier][]int{},
	}
}

// Clone returns a deep copy so mutations never alias the original's sets.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.CompletedLevelIDs = append([]int{}, p.CompletedLevelIDs...)
	out.CompletedByTier = make(map[AgeTier][]int, len(p.CompletedByTier))
	for tier, ids := range p.CompletedByTier {
		out.CompletedByTier[tier] = append([]int{}, ids...)
	}
	return out
}

// HasCompleted reports whether levelID is in the per-tier ledger of tier.
func (p UserProfile) HasCompleted(tier AgeTier, levelID int) bool {
	return containsID(p.CompletedByTier[tier], levelID)
}

// CompletedIn returns a copy of the per-tier completed set, ascending.
func (p UserProfile) CompletedIn(tier AgeTier) []int {
	return append([]int{}, p.CompletedByTier[tier]...)
}

// AddPoints adds a non-negative amount to the running total.
func (p *UserProfile) AddPoints(amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	p.TotalPoints += amount
	return nil
}

// RecordOutcome counts one answered question.
func (p *UserProfile) RecordOutcome(correct bool) {
	p.QuestionsAnswered++
	if correct {
		p.CorrectAnswers++
	}
}

// CompleteLevel inserts levelID in the tier ledger and the global union.
// It reports false when the level was already completed for that tier.
func (p *UserProfile) CompleteLevel(tier AgeTier, levelID int) bool {
	if p.HasCompleted(tier, levelID) {
		return false
	}
	if p.CompletedByTier == nil {
		p.CompletedByTier = map[AgeTier][]int{}
	}
	p.CompletedByTier[tier] = insertID(p.CompletedByTier[tier], levelID)
	p.CompletedLevelIDs = insertID(p.CompletedLevelIDs, levelID)
	return true
}

// SelectTier sets the tier and reports whether it changed. Per-tier ledgers are preserved.
func (p *UserProfile) SelectTier(tier AgeTier) (bool, error) {
	if !tier.Valid() {
		return false, ErrInvalidTier
	}
	if p.AgeTier == tier {
		return false, nil
	}
	p.AgeTier = tier
	return true, nil
}

// MergeProfiles reconciles a remote and a local copy of the same record.
// Counters take the max, completion sets are unioned per tier and the remote tier wins when set.
func MergeProfiles(remote, local UserProfile) UserProfile {
	out := remote.Clone()
	if out.DisplayName == "" {
		out.DisplayName = local.DisplayName
	}
	if out.AgeTier == "" {
		out.AgeTier = local.AgeTier
	}
	out.TotalPoints = max(remote.TotalPoints, local.TotalPoints)
	out.QuestionsAnswered = max(remote.QuestionsAnswered, local.QuestionsAnswered)
	out.CorrectAnswers = max(remote.CorrectAnswers, local.CorrectAnswers)
	if out.CorrectAnswers > out.QuestionsAnswered {
		out.QuestionsAnswered = out.CorrectAnswers
	}
	for tier, ids := range local.CompletedByTier {
		for _, id := range ids {
			out.CompleteLevel(tier, id)
		}
	}
	for _, id := range local.CompletedLevelIDs {
		out.CompletedLevelIDs = insertID(out.CompletedLevelIDs, id)
	}
	if local.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = local.UpdatedAt
	}
	return out
}

func containsID(ids []int, id int) bool {
	i := sort.SearchInts(ids, id)
	return i < len(ids) && ids[i] == id
}

// insertID keeps ids sorted and duplicate free.
func insertID(ids []int, id int) []int {
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

// Position places a level on the map, in percent of the map size.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Question is a single-answer multiple choice question.
type Question struct {
	ID                 int      `json:"id"`
	Prompt             string   `json:"prompt"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
	SupplementalFact   string   `json:"supplementalFact"`
}

// LevelDefinition is static catalog content for one tier.
type LevelDefinition struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	MapPosition  Position   `json:"mapPosition"`
	Questions    []Question `json:"questions"`
	PointsToEarn int        `json:"pointsToEarn"`
}

// LevelView is a level as seen by one user.
type LevelView struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	MapPosition   Position `json:"mapPosition"`
	QuestionCount int      `json:"questionCount"`
	PointsToEarn  int      `json:"pointsToEarn"`
	IsLocked      bool     `json:"isLocked"`
	Completed     bool     `json:"completed"`
}

// Video is an entry of the educational video library.
type Video struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	Points      int       `json:"points"`
	Tiers       []AgeTier `json:"tiers"`
}

// ShownTo reports whether the video belongs to the tier's library.
func (v Video) ShownTo(tier AgeTier) bool {
	for _, t := range v.Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Post is a community feed message.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	LikedBy   []string  `json:"-"`
}

// LikedByUser reports whether userID liked the post.
func (p Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	UserID          string `json:"userId"`
	DisplayName     string `json:"displayName"`
	Points          int    `json:"points"`
	LevelsCompleted int    `json:"levelsCompleted"`
	Rank            int    `json:"rank"`
}

// Leaderboard is the ranked table plus the caller's own rank.
type Leaderboard struct {
	Entries  []LeaderboardEntry `json:"entries"`
	UserRank int                `json:"userRank"`
}
