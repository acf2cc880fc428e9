package memory

import (
	"context"
	"sync"

	"justice-play/internal/domain"
)

// ProfileRepository is an in-memory app.ProfileRepository.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
	sessions map[string]bool
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]domain.UserProfile),
		sessions: make(map[string]bool),
	}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	return profile.Clone(), nil
}

func (r *ProfileRepository) Put(ctx context.Context, profile domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *ProfileRepository) SetSessionActive(ctx context.Context, userID string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if active {
		r.sessions[userID] = true
	} else {
		delete(r.sessions, userID)
	}
	return nil
}

// SessionActive reports the session marker of userID.
func (r *ProfileRepository) SessionActive(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[userID]
}
