package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"justice-play/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountRepository stores sign-in identities.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	FindByName(ctx context.Context, name string) (domain.Account, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	Validate(token string) (string, error)
}

// AccountService is the identity collaborator: it owns sign up, sign in and sign out and
// opens or closes the matching profile session.
type AccountService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   TokenService
	profiles *ProfileStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewAccountService(accounts AccountRepository, hasher PasswordHasher, tokens TokenService, profiles *ProfileStore, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// SignUp creates the account and its zero profile.
func (s *AccountService) SignUp(ctx context.Context, name, password string) (domain.AuthSession, error) {
	name = strings.TrimSpace(name)
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.AuthSession{}, err
	}
	account := domain.Account{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return domain.AuthSession{}, err
	}
	profile, err := s.profiles.Create(ctx, account.ID, name)
	if err != nil {
		return domain.AuthSession{}, err
	}
	s.logger.Info("account created", zap.String("user_id", account.ID))
	return s.session(profile)
}

// SignIn verifies the password and opens the profile session.
func (s *AccountService) SignIn(ctx context.Context, name, password string) (domain.AuthSession, error) {
	account, err := s.accounts.FindByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.AuthSession{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.AuthSession{}, err
	}
	if !s.hasher.Check(password, account.PasswordHash) {
		return domain.AuthSession{}, domain.ErrInvalidCredentials
	}
	profile, err := s.profiles.Open(ctx, account.ID, account.Name)
	if err != nil {
		return domain.AuthSession{}, err
	}
	s.logger.Info("signed in", zap.String("user_id", account.ID))
	return s.session(profile)
}

// SignOut ends the profile session.
func (s *AccountService) SignOut(ctx context.Context, userID string) error {
	return s.profiles.Logout(ctx, userID)
}

// Authenticate resolves a token to a user with an open session.
func (s *AccountService) Authenticate(token string) (string, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return "", domain.ErrNotAuthenticated
	}
	if !s.profiles.Active(userID) {
		return "", domain.ErrNotAuthenticated
	}
	return userID, nil
}

func (s *AccountService) session(profile domain.UserProfile) (domain.AuthSession, error) {
	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return domain.AuthSession{}, err
	}
	return domain.AuthSession{Token: token, Profile: profile}, nil
}
