package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// MessageService provides message CRUD operations with business-rule
// validation. It reads the account store to confirm authorship but never
// mutates accounts.
type MessageService interface {
	// Create validates the candidate message and checks that the author
	// account exists, then persists it. Both checks must pass; either
	// failure rejects the whole operation with no insert.
	Create(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error)

	// GetAll returns all stored messages.
	GetAll(ctx context.Context) ([]domain.Message, error)

	// GetByID returns the message with the given ID. Absence is a normal
	// outcome, reported as store.ErrMessageNotFound, never a failure.
	GetByID(ctx context.Context, id int64) (*domain.Message, error)

	// DeleteByID removes the message with the given ID and returns its
	// pre-deletion value. Deleting an absent ID is an idempotent no-op
	// reported as store.ErrMessageNotFound.
	DeleteByID(ctx context.Context, id int64) (*domain.Message, error)

	// Update overwrites the message's text after validating it. Invalid
	// text rejects the update without touching storage. An unknown ID
	// surfaces as store.ErrMessageNotFound from the store.
	Update(ctx context.Context, id int64, text string) (*domain.Message, error)

	// ListByAccount returns all messages posted by the given account.
	// The account's existence is not checked; an unknown ID yields an
	// empty slice.
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error)
}

// MessageServiceImpl implements the MessageService interface.
type MessageServiceImpl struct {
	messageStore store.MessageStore
	accountStore store.AccountStore
	logger       *slog.Logger
}

// NewMessageService creates a new MessageService. The account store is
// used read-only, to validate authorship at creation time.
func NewMessageService(
	messageStore store.MessageStore,
	accountStore store.AccountStore,
	logger *slog.Logger,
) MessageService {
	return &MessageServiceImpl{
		messageStore: messageStore,
		accountStore: accountStore,
		logger:       logger.With("component", "message_service"),
	}
}

// Create validates and persists a new message.
func (s *MessageServiceImpl) Create(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error) {
	message, err := domain.NewMessage(postedBy, text, postedAt)
	if err != nil {
		s.logger.Debug("message rejected by validation",
			"error", err,
			"posted_by", postedBy)
		return nil, err
	}

	if _, err := s.accountStore.GetByID(ctx, postedBy); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("message rejected, unknown author",
				"posted_by", postedBy)
			return nil, ErrUnknownAuthor
		}
		s.logger.Error("failed to check author existence",
			"error", err,
			"posted_by", postedBy)
		return nil, fmt.Errorf("failed to check author existence: %w", err)
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		s.logger.Error("failed to create message",
			"error", err,
			"posted_by", postedBy)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.logger.Info("message created",
		"message_id", message.ID,
		"posted_by", message.PostedBy)

	return message, nil
}

// GetAll returns all stored messages.
func (s *MessageServiceImpl) GetAll(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.messageStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// GetByID returns the message with the given ID.
func (s *MessageServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	message, err := s.messageStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get message",
			"error", err,
			"message_id", id)
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return message, nil
}

// DeleteByID removes a message, reporting the pre-deletion value.
func (s *MessageServiceImpl) DeleteByID(ctx context.Context, id int64) (*domain.Message, error) {
	message, err := s.messageStore.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			s.logger.Debug("delete of absent message is a no-op",
				"message_id", id)
			return nil, err
		}
		s.logger.Error("failed to delete message",
			"error", err,
			"message_id", id)
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}
	return message, nil
}

// Update overwrites a message's text.
// The text is validated before any store call; the store's not-found
// result passes through unchanged, so callers can still distinguish the
// two internally even though the HTTP boundary folds them together.
func (s *MessageServiceImpl) Update(ctx context.Context, id int64, text string) (*domain.Message, error) {
	if err := domain.ValidateMessageText(text); err != nil {
		s.logger.Debug("update rejected by validation",
			"error", err,
			"message_id", id)
		return nil, err
	}

	message, err := s.messageStore.UpdateText(ctx, id, text)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			s.logger.Debug("update targeted absent message",
				"message_id", id)
			return nil, err
		}
		s.logger.Error("failed to update message",
			"error", err,
			"message_id", id)
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	s.logger.Info("message updated", "message_id", id)
	return message, nil
}

// ListByAccount returns all messages posted by the given account.
func (s *MessageServiceImpl) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	messages, err := s.messageStore.ListByAuthor(ctx, accountID)
	if err != nil {
		s.logger.Error("failed to list messages by account",
			"error", err,
			"account_id", accountID)
		return nil, fmt.Errorf("failed to list messages by account: %w", err)
	}
	return messages, nil
}
