package mocks

import (
	"context"
	"sort"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// MockMessageStore implements store.MessageStore for testing.
// By default it behaves as an in-memory message store; individual
// methods can be overridden through the function fields.
type MockMessageStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, message *domain.Message) error
	ListFn         func(ctx context.Context) ([]domain.Message, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Message, error)
	DeleteFn       func(ctx context.Context, id int64) (*domain.Message, error)
	UpdateTextFn   func(ctx context.Context, id int64, text string) (*domain.Message, error)
	ListByAuthorFn func(ctx context.Context, accountID int64) ([]domain.Message, error)

	// Call counters for interaction assertions
	CreateCalls     int
	DeleteCalls     int
	UpdateTextCalls int

	// In-memory state for the default implementation
	Messages map[int64]*domain.Message
	nextID   int64
}

// NewMockMessageStore creates a new mock store with initialized defaults.
func NewMockMessageStore() *MockMessageStore {
	return &MockMessageStore{
		Messages: make(map[int64]*domain.Message),
	}
}

// Ensure MockMessageStore implements store.MessageStore interface
var _ store.MessageStore = (*MockMessageStore)(nil)

// Create implements the MessageStore interface.
func (m *MockMessageStore) Create(ctx context.Context, message *domain.Message) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, message)
	}

	m.nextID++
	message.ID = m.nextID
	stored := *message
	m.Messages[message.ID] = &stored
	return nil
}

// List implements the MessageStore interface. Results are ordered by ID
// to match the stable ordering of the real store.
func (m *MockMessageStore) List(ctx context.Context) ([]domain.Message, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.collect(func(*domain.Message) bool { return true }), nil
}

// GetByID implements the MessageStore interface.
func (m *MockMessageStore) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	message, ok := m.Messages[id]
	if !ok {
		return nil, store.ErrMessageNotFound
	}
	copied := *message
	return &copied, nil
}

// Delete implements the MessageStore interface.
func (m *MockMessageStore) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	message, ok := m.Messages[id]
	if !ok {
		return nil, store.ErrMessageNotFound
	}
	delete(m.Messages, id)
	return message, nil
}

// UpdateText implements the MessageStore interface.
func (m *MockMessageStore) UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error) {
	m.UpdateTextCalls++
	if m.UpdateTextFn != nil {
		return m.UpdateTextFn(ctx, id, text)
	}

	message, ok := m.Messages[id]
	if !ok {
		return nil, store.ErrMessageNotFound
	}
	message.Text = text
	copied := *message
	return &copied, nil
}

// ListByAuthor implements the MessageStore interface.
func (m *MockMessageStore) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Message, error) {
	if m.ListByAuthorFn != nil {
		return m.ListByAuthorFn(ctx, accountID)
	}
	return m.collect(func(msg *domain.Message) bool { return msg.PostedBy == accountID }), nil
}


func (m *MockMessageStore) collect(keep func(*domain.Message) bool) []domain.Message {
	messages := make([]domain.Message, 0)
	for _, message := range m.Messages {
		if keep(message) {
			messages = append(messages, *message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}
