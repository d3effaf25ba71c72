package store

import (
	"context"

	"github.com/blurtlabs/blurt-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store and populates its assigned ID.
	// The account must already have passed domain validation.
	// Returns ErrUsernameExists if the username is already taken, including
	// when a concurrent registration wins the insert race.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// GetByUsername retrieves an account by its exact username.
	// Used for the uniqueness pre-check during registration.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// GetByCredentials retrieves the account matching both username and
	// password exactly. Returns ErrAccountNotFound if no account matches;
	// callers must not be able to tell an unknown username from a wrong
	// password.
	GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error)
}
