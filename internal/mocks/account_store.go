package mocks

import (
	"context"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
// By default it behaves as an in-memory account store; individual
// methods can be overridden through the function fields.
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, account *domain.Account) error
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsernameFn    func(ctx context.Context, username string) (*domain.Account, error)
	GetByCredentialsFn func(ctx context.Context, username, password string) (*domain.Account, error)

	// Call counters for interaction assertions
	CreateCalls           int
	GetByIDCalls          int
	GetByUsernameCalls    int
	GetByCredentialsCalls int

	// In-memory state for the default implementation
	Accounts map[int64]*domain.Account
	nextID   int64
}

// NewMockAccountStore creates a new mock store with initialized defaults.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[int64]*domain.Account),
	}
}

// Ensure MockAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*MockAccountStore)(nil)

// Create implements the AccountStore interface.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	for _, existing := range m.Accounts {
		if existing.Username == account.Username {
			return store.ErrUsernameExists
		}
	}

	m.nextID++
	account.ID = m.nextID
	stored := *account
	m.Accounts[account.ID] = &stored
	return nil
}

// GetByID implements the AccountStore interface.
func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	account, ok := m.Accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// GetByUsername implements the AccountStore interface.
func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	m.GetByUsernameCalls++
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, account := range m.Accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByCredentials implements the AccountStore interface.
func (m *MockAccountStore) GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	m.GetByCredentialsCalls++
	if m.GetByCredentialsFn != nil {
		return m.GetByCredentialsFn(ctx, username, password)
	}

	for _, account := range m.Accounts {
		if account.Username == username && account.Password == password {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

