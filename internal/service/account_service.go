package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// AccountService provides registration and login operations.
type AccountService interface {
	// Register creates a new account after validating the candidate
	// credentials and checking username uniqueness. Validation order is
	// fixed: blank username, then password length, then uniqueness; the
	// store is not consulted until the field checks pass.
	// Returns a domain.ErrValidation-wrapped error or store.ErrUsernameExists
	// on rejection; the stored account with its assigned ID on success.
	Register(ctx context.Context, username, password string) (*domain.Account, error)

	// Login authenticates by exact username/password match.
	// Returns ErrInvalidCredentials if no stored account matches.
	Login(ctx context.Context, username, password string) (*domain.Account, error)
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accountStore store.AccountStore
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService backed by the given store.
func NewAccountService(accountStore store.AccountStore, logger *slog.Logger) AccountService {
	return &AccountServiceImpl{
		accountStore: accountStore,
		logger:       logger.With("component", "account_service"),
	}
}

// Register creates a new account with the given credentials.
//
// The uniqueness pre-check and the subsequent insert are not atomic: two
// concurrent registrations of the same username can both pass the check.
// The database's unique constraint decides the race, and the losing
// insert surfaces as store.ErrUsernameExists, identical to the pre-check
// rejection.
func (s *AccountServiceImpl) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := domain.NewAccount(username, password)
	if err != nil {
		s.logger.Debug("registration rejected by validation",
			"error", err,
			"username", username)
		return nil, err
	}

	_, err = s.accountStore.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Debug("registration rejected, username taken",
			"username", username)
		return nil, store.ErrUsernameExists
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		s.logger.Error("failed to check username uniqueness",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	if err := s.accountStore.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("registration lost insert race",
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to create account",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account registered",
		"account_id", account.ID,
		"username", account.Username)

	return account, nil
}

// Login authenticates an account by matching credentials exactly.
// There is no lockout or rate limiting; those are out of scope.
func (s *AccountServiceImpl) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountStore.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("login rejected", "username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up credentials",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	s.logger.Debug("login succeeded",
		"account_id", account.ID,
		"username", account.Username)

	return account, nil
}
