package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS profiles (
    id             TEXT PRIMARY KEY,
    data           TEXT NOT NULL,
    session_active INTEGER NOT NULL DEFAULT 0,
    updated_at     TEXT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS accounts (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    name_key      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL
)`,
}

// ProfileRepository is the on-device copy of user records, one JSON document per row.
type ProfileRepository struct {
	db *sql.DB
}

// Open opens (and creates when missing) the SQLite database at path.
func Open(path string) (*ProfileRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "create schema")
		}
	}
	return &ProfileRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *ProfileRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, err
	}
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM profiles WHERE id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "load profile")
	}
	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "unmarshal profile")
	}
	if profile.CompletedByTier == nil {
		profile.CompletedByTier = make(map[domain.AgeTier][]int)
	}
	return profile, nil
}

func (r *ProfileRepository) Put(ctx context.Context, profile domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO profiles (id, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		profile.ID, string(raw), profile.UpdatedAt.UTC().Format(time.RFC3339Nano))
	return errors.Wrap(err, "store profile")
}

func (r *ProfileRepository) SetSessionActive(ctx context.Context, userID string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	flag := 0
	if active {
		flag = 1
	}
	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET session_active = ? WHERE id = ?`, flag, userID)
	return errors.Wrap(err, "set session marker")
}

// SessionActive reports the stored session marker of userID.
func (r *ProfileRepository) SessionActive(ctx context.Context, userID string) (bool, error) {
	var flag int
	err := r.db.QueryRowContext(ctx, `SELECT session_active FROM profiles WHERE id = ?`, userID).Scan(&flag)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "load session marker")
	}
	return flag == 1, nil
}
