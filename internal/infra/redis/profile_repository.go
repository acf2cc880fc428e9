package redis

import (
	"context"
	"encoding/json"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ProfileRepository keeps each user record as one JSON document.
// Records live at profile:{userID}; the session marker at profile:{userID}:session.
type ProfileRepository struct {
	client *redis.Client
}

func NewProfileRepository(client *redis.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	raw, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "get profile")
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "unmarshal profile")
	}
	if profile.CompletedByTier == nil {
		profile.CompletedByTier = make(map[domain.AgeTier][]int)
	}
	return profile, nil
}

func (r *ProfileRepository) Put(ctx context.Context, profile domain.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}
	if err := r.client.Set(ctx, r.key(profile.ID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "put profile")
	}
	return nil
}

func (r *ProfileRepository) SetSessionActive(ctx context.Context, userID string, active bool) error {
	var err error
	if active {
		err = r.client.Set(ctx, r.sessionKey(userID), "1", 0).Err()
	} else {
		err = r.client.Del(ctx, r.sessionKey(userID)).Err()
	}
	return errors.Wrap(err, "set session marker")
}

func (r *ProfileRepository) key(userID string) string {
	return "profile:" + userID
}

func (r *ProfileRepository) sessionKey(userID string) string {
	return "profile:" + userID + ":session"
}
