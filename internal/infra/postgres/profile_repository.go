package postgres

import (
	"context"
	"encoding/json"

	"justice-play/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// ProfileRepository stores the remote copy of each user record as JSONB in the profiles table.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM profiles WHERE id=$1`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "load profile")
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
	_, err = r.pool.Exec(ctx, `
INSERT INTO profiles (id, data, total_points, updated_at)
VALUES ($1, $2::jsonb, $3, $4)
ON CONFLICT (id) DO UPDATE
SET data=EXCLUDED.data, total_points=EXCLUDED.total_points, updated_at=EXCLUDED.updated_at`,
		profile.ID, string(raw), profile.TotalPoints, profile.UpdatedAt)
	return errors.Wrap(err, "store profile")
}

func (r *ProfileRepository) SetSessionActive(ctx context.Context, userID string, active bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE profiles SET session_active=$2 WHERE id=$1`, userID, active)
	return errors.Wrap(err, "set session marker")
}
