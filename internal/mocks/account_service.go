package mocks

import (
	"context"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/service"
)

// MockAccountService implements service.AccountService for testing
// handlers in isolation from the real business logic.
type MockAccountService struct {
	RegisterFn func(ctx context.Context, username, password string) (*domain.Account, error)
	LoginFn    func(ctx context.Context, username, password string) (*domain.Account, error)
}

// Ensure MockAccountService implements service.AccountService interface
var _ service.AccountService = (*MockAccountService)(nil)

// Register implements the AccountService interface.
func (m *MockAccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	return m.RegisterFn(ctx, username, password)
}

// Login implements the AccountService interface.
func (m *MockAccountService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	return m.LoginFn(ctx, username, password)
}
