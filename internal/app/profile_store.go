package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"justice-play/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProfileRepository abstracts the durable user record (in-memory, Redis, Postgres, SQLite, hybrid).
// Get returns domain.ErrProfileNotFound when no record exists.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (domain.UserProfile, error)
	Put(ctx context.Context, profile domain.UserProfile) error
	SetSessionActive(ctx context.Context, userID string, active bool) error
}

// LevelCatalog answers whether a level exists in a tier's catalog.
type LevelCatalog interface {
	HasLevel(tier domain.AgeTier, levelID int) bool
}

// ProfileStore owns the mutable game state of signed-in users.
//
// Every command is a read-modify-write on a copy of the latest in-memory profile, executed under
// that profile's lock: the copy is persisted first, committed in memory only when the write
// succeeds and announced on the bus afterwards. A failed write leaves memory untouched.
type ProfileStore struct {
	repo    ProfileRepository
	levels  LevelCatalog
	bus     *Bus
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
	sf      singleflight.Group

	mu      sync.RWMutex
	entries map[string]*profileEntry
}

type profileEntry struct {
	mu      sync.Mutex
	profile domain.UserProfile
}

func NewProfileStore(repo ProfileRepository, levels LevelCatalog, bus *Bus, logger *zap.Logger, persistTimeout time.Duration) *ProfileStore {
	return NewProfileStoreWithClock(repo, levels, bus, logger, persistTimeout, time.Now)
}

// NewProfileStoreWithClock is test-only for deterministic timestamps.
func NewProfileStoreWithClock(repo ProfileRepository, levels LevelCatalog, bus *Bus, logger *zap.Logger, persistTimeout time.Duration, now func() time.Time) *ProfileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileStore{
		repo:    repo,
		levels:  levels,
		bus:     bus,
		logger:  logger,
		timeout: persistTimeout,
		now:     now,
		entries: make(map[string]*profileEntry),
	}
}

// Create persists the zero profile of a new account and opens its session.
func (s *ProfileStore) Create(ctx context.Context, userID, displayName string) (domain.UserProfile, error) {
	profile := domain.NewUserProfile(userID, displayName)
	profile.UpdatedAt = s.now()
	if err := s.persist(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	if err := s.activate(ctx, userID); err != nil {
		return domain.UserProfile{}, err
	}
	s.register(profile)
	return profile.Clone(), nil
}

// Open starts a session for userID, loading the persisted record.
// A user without a record gets a fresh one. Concurrent opens share a single load, which runs
// detached from any one caller: a caller that gives up gets ctx.Err() while the others still
// receive the loaded profile.
func (s *ProfileStore) Open(ctx context.Context, userID, displayName string) (domain.UserProfile, error) {
	if profile, err := s.Profile(userID); err == nil {
		return profile, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(userID, func() (interface{}, error) {
		return s.load(shared, userID, displayName)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.UserProfile{}, res.Err
		}
		return res.Val.(domain.UserProfile).Clone(), nil
	case <-ctx.Done():
		return domain.UserProfile{}, ctx.Err()
	}
}

func (s *ProfileStore) load(ctx context.Context, userID, displayName string) (domain.UserProfile, error) {
	if profile, err := s.Profile(userID); err == nil {
		return profile, nil
	}

	loadCtx, cancel := s.withTimeout(ctx)
	profile, err := s.repo.Get(loadCtx, userID)
	cancel()
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = domain.NewUserProfile(userID, displayName)
		profile.UpdatedAt = s.now()
		if err := s.persist(ctx, profile); err != nil {
			return domain.UserProfile{}, err
		}
	case err != nil:
		s.logger.Warn("profile load failed", zap.String("user_id", userID), zap.Error(err))
		return domain.UserProfile{}, fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	if err := s.activate(ctx, userID); err != nil {
		return domain.UserProfile{}, err
	}
	s.register(profile)
	return profile.Clone(), nil
}

// Profile returns a copy of the signed-in user's profile.
func (s *ProfileStore) Profile(userID string) (domain.UserProfile, error) {
	entry, ok := s.entry(userID)
	if !ok {
		return domain.UserProfile{}, domain.ErrNotAuthenticated
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.profile.Clone(), nil
}

// SelectAgeTier sets the user's tier. Progress recorded for other tiers is preserved.
func (s *ProfileStore) SelectAgeTier(ctx context.Context, userID string, tier domain.AgeTier) (domain.UserProfile, error) {
	if !tier.Valid() {
		return domain.UserProfile{}, domain.ErrInvalidTier
	}
	return s.mutate(ctx, userID, func(p *domain.UserProfile) ([]domain.ProfileEvent, error) {
		changed, err := p.SelectTier(tier)
		if err != nil || !changed {
			return nil, err
		}
		return []domain.ProfileEvent{{Kind: domain.EventAgeTierChanged, Tier: tier}}, nil
	})
}

// AwardPoints adds amount to the user's total.
func (s *ProfileStore) AwardPoints(ctx context.Context, userID string, amount int) (domain.UserProfile, error) {
	if amount < 0 {
		return domain.UserProfile{}, domain.ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(p *domain.UserProfile) ([]domain.ProfileEvent, error) {
		if amount == 0 {
			return nil, nil
		}
		if err := p.AddPoints(amount); err != nil {
			return nil, err
		}
		return []domain.ProfileEvent{{Kind: domain.EventPointsChanged, TotalPoints: p.TotalPoints}}, nil
	})
}

// RecordQuestionOutcome counts one answered question.
func (s *ProfileStore) RecordQuestionOutcome(ctx context.Context, userID string, correct bool) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(p *domain.UserProfile) ([]domain.ProfileEvent, error) {
		p.RecordOutcome(correct)
		return []domain.ProfileEvent{{
			Kind:              domain.EventStatsChanged,
			QuestionsAnswered: p.QuestionsAnswered,
			CorrectAnswers:    p.CorrectAnswers,
		}}, nil
	})
}

// RecordAnswer counts one answered question and pays award for it in a single write, so the
// points and the answer statistics are either both saved or both left unchanged.
func (s *ProfileStore) RecordAnswer(ctx context.Context, userID string, correct bool, award int) (domain.UserProfile, error) {
	if award < 0 {
		return domain.UserProfile{}, domain.ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(p *domain.UserProfile) ([]domain.ProfileEvent, error) {
		var events []domain.ProfileEvent
		if award > 0 {
			if err := p.AddPoints(award); err != nil {
				return nil, err
			}
			events = append(events, domain.ProfileEvent{Kind: domain.EventPointsChanged, TotalPoints: p.TotalPoints})
		}
		p.RecordOutcome(correct)
		events = append(events, domain.ProfileEvent{
			Kind:              domain.EventStatsChanged,
			QuestionsAnswered: p.QuestionsAnswered,
			CorrectAnswers:    p.CorrectAnswers,
		})
		return events, nil
	})
}

// CompleteLevel records levelID as passed for tier. It is idempotent and awards no points;
// the boolean reports whether this call newly completed the level.
func (s *ProfileStore) CompleteLevel(ctx context.Context, userID string, levelID int, tier domain.AgeTier) (domain.UserProfile, bool, error) {
	if !tier.Valid() {
		return domain.UserProfile{}, false, domain.ErrInvalidTier
	}
	if !s.levels.HasLevel(tier, levelID) {
		return domain.UserProfile{}, false, domain.ErrUnknownLevel
	}
	completed := false
	profile, err := s.mutate(ctx, userID, func(p *domain.UserProfile) ([]domain.ProfileEvent, error) {
		if !p.CompleteLevel(tier, levelID) {
			return nil, nil
		}
		completed = true
		return []domain.ProfileEvent{{
			Kind:              domain.EventLevelCompleted,
			LevelID:           levelID,
			Tier:              tier,
			CompletedLevelIDs: p.CompletedIn(tier),
		}}, nil
	})
	if err != nil {
		return domain.UserProfile{}, false, err
	}
	return profile, completed, nil
}

// Logout drops the in-memory profile and clears the persisted session marker.
// The record itself is kept.
func (s *ProfileStore) Logout(ctx context.Context, userID string) error {
	s.mu.Lock()
	entry, ok := s.entries[userID]
	delete(s.entries, userID)
	s.mu.Unlock()
	if !ok {
		return domain.ErrNotAuthenticated
	}

	// wait for an in-flight command on this profile to finish
	entry.mu.Lock()
	defer entry.mu.Unlock()

	markCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.repo.SetSessionActive(markCtx, userID, false)
	s.publish(domain.ProfileEvent{Kind: domain.EventLoggedOut, UserID: userID})
	if err != nil {
		s.logger.Warn("clear session marker failed", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}
	return nil
}

// Active reports whether userID has an open session.
func (s *ProfileStore) Active(userID string) bool {
	_, ok := s.entry(userID)
	return ok
}

func (s *ProfileStore) mutate(ctx context.Context, userID string, apply func(p *domain.UserProfile) ([]domain.ProfileEvent, error)) (domain.UserProfile, error) {
	entry, ok := s.entry(userID)
	if !ok {
		return domain.UserProfile{}, domain.ErrNotAuthenticated
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	next := entry.profile.Clone()
	events, err := apply(&next)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if len(events) == 0 {
		return next, nil
	}

	next.UpdatedAt = s.now()
	if err := s.persist(ctx, next); err != nil {
		return domain.UserProfile{}, err
	}
	entry.profile = next
	s.logger.Debug("profile updated",
		zap.String("user_id", userID),
		zap.Int("total_points", next.TotalPoints),
		zap.Int("events", len(events)),
	)

	for _, event := range events {
		event.UserID = userID
		event.At = next.UpdatedAt
		s.publish(event)
	}
	return next.Clone(), nil
}

func (s *ProfileStore) persist(ctx context.Context, profile domain.UserProfile) error {
	putCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Put(putCtx, profile); err != nil {
		s.logger.Warn("profile write failed", zap.String("user_id", profile.ID), zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (s *ProfileStore) activate(ctx context.Context, userID string) error {
	markCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.SetSessionActive(markCtx, userID, true); err != nil {
		s.logger.Warn("set session marker failed", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (s *ProfileStore) register(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[profile.ID]; ok {
		return
	}
	s.entries[profile.ID] = &profileEntry{profile: profile}
}

func (s *ProfileStore) entry(userID string) (*profileEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[userID]
	return entry, ok
}

func (s *ProfileStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *ProfileStore) publish(event domain.ProfileEvent) {
	if s.bus == nil {
		return
	}
	if event.At.IsZero() {
		event.At = s.now()
	}
	s.bus.Publish(event)
}
