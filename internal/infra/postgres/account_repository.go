package postgres

import (
	"context"
	"database/sql"
	"strings"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// AccountRepository stores sign-in identities in the accounts table. Names are unique
// case-insensitively through the name_key column.
type AccountRepository struct {
	db *bun.DB
}

func NewAccountRepository(db *bun.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	model := accountModel{
		ID:           account.ID,
		Name:         account.Name,
		NameKey:      strings.ToLower(account.Name),
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
	_, err := r.db.NewInsert().Model(&model).Exec(ctx)
	if isUniqueViolation(err) {
		return domain.ErrAccountExists
	}
	return errors.Wrap(err, "insert account")
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (domain.Account, error) {
	var model accountModel
	err := r.db.NewSelect().
		Model(&model).
		Where("name_key = ?", strings.ToLower(name)).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "find account")
	}
	return domain.Account{
		ID:           model.ID,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}
