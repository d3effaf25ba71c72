package mocks

import (
	"context"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/service"
)

// MockMessageService implements service.MessageService for testing
// handlers in isolation from the real business logic.
type MockMessageService struct {
	CreateFn        func(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error)
	GetAllFn        func(ctx context.Context) ([]domain.Message, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Message, error)
	DeleteByIDFn    func(ctx context.Context, id int64) (*domain.Message, error)
	UpdateFn        func(ctx context.Context, id int64, text string) (*domain.Message, error)
	ListByAccountFn func(ctx context.Context, accountID int64) ([]domain.Message, error)
}

// Ensure MockMessageService implements service.MessageService interface
var _ service.MessageService = (*MockMessageService)(nil)

// Create implements the MessageService interface.
func (m *MockMessageService) Create(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error) {
	return m.CreateFn(ctx, postedBy, text, postedAt)
}

// GetAll implements the MessageService interface.
func (m *MockMessageService) GetAll(ctx context.Context) ([]domain.Message, error) {
	return m.GetAllFn(ctx)
}

// GetByID implements the MessageService interface.
func (m *MockMessageService) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	return m.GetByIDFn(ctx, id)
}

// DeleteByID implements the MessageService interface.
func (m *MockMessageService) DeleteByID(ctx context.Context, id int64) (*domain.Message, error) {
	return m.DeleteByIDFn(ctx, id)
}

// Update implements the MessageService interface.
func (m *MockMessageService) Update(ctx context.Context, id int64, text string) (*domain.Message, error) {
	return m.UpdateFn(ctx, id, text)
}

// ListByAccount implements the MessageService interface.
func (m *MockMessageService) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	return m.ListByAccountFn(ctx, accountID)
}
