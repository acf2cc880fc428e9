package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
)

// AccountRepository stores sign-in identities in the same database file as the profiles,
// so a restarted device keeps both the account and the record it owns.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(profiles *ProfileRepository) *AccountRepository {
	return &AccountRepository{db: profiles.db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (id, name, name_key, password_hash, created_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name_key) DO NOTHING`,
		account.ID, account.Name, strings.ToLower(account.Name), account.PasswordHash,
		account.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrap(err, "insert account")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "insert account")
	}
	if n == 0 {
		return domain.ErrAccountExists
	}
	return nil
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (domain.Account, error) {
	var (
		account   domain.Account
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, password_hash, created_at FROM accounts WHERE name_key = ?`,
		strings.ToLower(name),
	).Scan(&account.ID, &account.Name, &account.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "find account")
	}
	if account.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Account{}, errors.Wrap(err, "parse account created_at")
	}
	return account, nil
}
