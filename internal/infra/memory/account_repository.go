package memory

import (
	"context"
	"strings"
	"sync"

	"justice-play/internal/domain"
)

// AccountRepository is an in-memory app.AccountRepository. Names are case-insensitive.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) error {
	key := strings.ToLower(account.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[key]; ok {
		return domain.ErrAccountExists
	}
	r.accounts[key] = account
	return nil
}

func (r *AccountRepository) FindByName(_ context.Context, name string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[strings.ToLower(name)]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}
