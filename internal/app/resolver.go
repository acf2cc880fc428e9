package app

import (
	"justice-play/internal/domain"
)

// ContentCatalog is the read-only content the resolver projects over.
type ContentCatalog interface {
	Levels(tier domain.AgeTier) []domain.LevelDefinition
	Level(tier domain.AgeTier, levelID int) (domain.LevelDefinition, error)
	HasLevel(tier domain.AgeTier, levelID int) bool
}

// DefaultTier applies to profiles that have not picked a tier yet.
const DefaultTier = domain.AgeTierSenior

// Resolver derives the per-user view of the catalog from a profile. It never mutates profiles.
type Resolver struct {
	catalog     ContentCatalog
	defaultTier domain.AgeTier
}

func NewResolver(catalog ContentCatalog, defaultTier domain.AgeTier) *Resolver {
	if !defaultTier.Valid() {
		defaultTier = DefaultTier
	}
	return &Resolver{catalog: catalog, defaultTier: defaultTier}
}

// EffectiveTier is the profile's tier, or the default tier when none was selected.
func (r *Resolver) EffectiveTier(profile domain.UserProfile) domain.AgeTier {
	if profile.AgeTier.Valid() {
		return profile.AgeTier
	}
	return r.defaultTier
}

// ResolveLevels returns the tier's levels in catalog order with lock and completion state.
func (r *Resolver) ResolveLevels(profile domain.UserProfile) []domain.LevelView {
	tier := r.EffectiveTier(profile)
	levels := r.catalog.Levels(tier)
	views := make([]domain.LevelView, 0, len(levels))
	for _, level := range levels {
		locked, completed := levelState(profile, tier, level.ID)
		views = append(views, domain.LevelView{
			ID:            level.ID,
			Name:          level.Name,
			Description:   level.Description,
			MapPosition:   level.MapPosition,
			QuestionCount: len(level.Questions),
			PointsToEarn:  level.PointsToEarn,
			IsLocked:      locked,
			Completed:     completed,
		})
	}
	return views
}

// Level returns the tier-specific definition of levelID.
func (r *Resolver) Level(levelID int, profile domain.UserProfile) (domain.LevelDefinition, error) {
	return r.catalog.Level(r.EffectiveTier(profile), levelID)
}

// ResolveQuestions returns the tier-specific question set in authoring order.
func (r *Resolver) ResolveQuestions(levelID int, profile domain.UserProfile) ([]domain.Question, error) {
	level, err := r.Level(levelID, profile)
	if err != nil {
		return nil, err
	}
	return append([]domain.Question(nil), level.Questions...), nil
}

// IsLocked reports the lock state of levelID for the profile's effective tier.
func (r *Resolver) IsLocked(levelID int, profile domain.UserProfile) (bool, error) {
	tier := r.EffectiveTier(profile)
	if !r.catalog.HasLevel(tier, levelID) {
		return false, domain.ErrUnknownLevel
	}
	locked, _ := levelState(profile, tier, levelID)
	return locked, nil
}

// UnlockedLevelCount counts levels the profile may play in its effective tier.
func (r *Resolver) UnlockedLevelCount(profile domain.UserProfile) int {
	count := 0
	for _, view := range r.ResolveLevels(profile) {
		if !view.IsLocked {
			count++
		}
	}
	return count
}

// TotalPointsAvailable sums the rewards of every level in the effective tier.
func (r *Resolver) TotalPointsAvailable(profile domain.UserProfile) int {
	total := 0
	for _, level := range r.catalog.Levels(r.EffectiveTier(profile)) {
		total += level.PointsToEarn
	}
	return total
}

// levelState is the only lock derivation in the service. It reads the per-tier ledger only;
// the global completed set is display data and must never decide lock state.
func levelState(profile domain.UserProfile, tier domain.AgeTier, levelID int) (locked, completed bool) {
	completed = profile.HasCompleted(tier, levelID)
	locked = levelID != 1 && !profile.HasCompleted(tier, levelID-1)
	return locked, completed
}
