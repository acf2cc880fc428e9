package redis

import (
	"context"
	"strings"
	"time"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// AccountRepository keeps each sign-in identity as a hash at account:{lowercased name}.
type AccountRepository struct {
	client *redis.Client
}

func NewAccountRepository(client *redis.Client) *AccountRepository {
	return &AccountRepository{client: client}
}

// Create claims the name with WATCH/MULTI so two sign ups for the same name cannot both win.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	key := r.key(account.Name)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrAccountExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				"id", account.ID,
				"name", account.Name,
				"password_hash", account.PasswordHash,
				"created_at", account.CreatedAt.UTC().Format(time.RFC3339Nano),
			)
			return nil
		})
		return err
	}, key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAccountExists), errors.Is(err, redis.TxFailedErr):
		return domain.ErrAccountExists
	}
	return errors.Wrap(err, "create account")
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (domain.Account, error) {
	fields, err := r.client.HGetAll(ctx, r.key(name)).Result()
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "find account")
	}
	if fields["id"] == "" {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "parse account created_at")
	}
	return domain.Account{
		ID:           fields["id"],
		Name:         fields["name"],
		PasswordHash: fields["password_hash"],
		CreatedAt:    createdAt,
	}, nil
}

func (r *AccountRepository) key(name string) string {
	return "account:" + strings.ToLower(name)
}
