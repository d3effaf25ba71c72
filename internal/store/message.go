package store

import (
	"context"

	"github.com/blurtlabs/blurt-api/internal/domain"
)

// MessageStore defines the interface for message data persistence.
type MessageStore interface {
	// Create saves a new message to the store and populates its assigned ID.
	// The message must already have passed domain validation; author
	// existence is checked by the service, not here.
	Create(ctx context.Context, message *domain.Message) error

	// List retrieves all stored messages. The order is unspecified but
	// stable for a given database state. Returns an empty slice, not nil,
	// when the store is empty.
	List(ctx context.Context) ([]domain.Message, error)

	// GetByID retrieves a message by its unique ID.
	// Returns ErrMessageNotFound if the message does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Message, error)

	// Delete removes the message with the given ID and returns its
	// pre-deletion value. Returns ErrMessageNotFound without mutating
	// anything if the message does not exist, making deletion idempotent.
	Delete(ctx context.Context, id int64) (*domain.Message, error)

	// UpdateText overwrites the text of the message with the given ID and
	// returns the post-update record. All other fields are left untouched.
	// Returns ErrMessageNotFound if the message does not exist.
	UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error)

	// ListByAuthor retrieves all messages posted by the given account.
	// Returns an empty slice for an unknown account ID, indistinguishable
	// from an existing account with no messages.
	ListByAuthor(ctx context.Context, accountID int64) ([]domain.Message, error)
}
