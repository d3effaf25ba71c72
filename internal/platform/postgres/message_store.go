package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/platform/logger"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// MessageStore implements the store.MessageStore interface using a
// PostgreSQL database as the storage backend.
type MessageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMessageStore creates a new PostgreSQL implementation of the
// MessageStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewMessageStore(db store.DBTX, log *slog.Logger) *MessageStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &MessageStore{
		db:     db,
		logger: log.With(slog.String("component", "message_store")),
	}
}

// Ensure MessageStore implements store.MessageStore interface
var _ store.MessageStore = (*MessageStore)(nil)

// Create implements store.MessageStore.Create.
// The database assigns the ID, which is written back into the message.
func (s *MessageStore) Create(ctx context.Context, message *domain.Message) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO messages (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`
	err := s.db.QueryRowContext(ctx, query, message.PostedBy, message.Text, message.PostedAt).
		Scan(&message.ID)

	if err != nil {
		log.Error("failed to create message",
			slog.String("error", err.Error()),
			slog.Int64("posted_by", message.PostedBy))
		return store.NewStoreError("message", "create", "insert failed", MapError(err))
	}

	log.Info("message created",
		slog.Int64("message_id", message.ID),
		slog.Int64("posted_by", message.PostedBy))
	return nil
}

// List implements store.MessageStore.List.
// Rows are ordered by ID so the result is stable for a given state.
func (s *MessageStore) List(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		ORDER BY message_id
	`
	return s.queryMessages(ctx, query)
}

// GetByID implements store.MessageStore.GetByID.
// Returns store.ErrMessageNotFound if the message does not exist.
func (s *MessageStore) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		WHERE message_id = $1
	`
	var message domain.Message
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&message.ID, &message.PostedBy, &message.Text, &message.PostedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMessageNotFound
		}

		log.Error("failed to query message",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return nil, store.NewStoreError("message", "get", "query failed", MapError(err))
	}

	return &message, nil
}

// Delete implements store.MessageStore.Delete.
// DELETE ... RETURNING yields the pre-deletion row in one round trip, so
// there is no window between lookup and removal.
// Returns store.ErrMessageNotFound if the message does not exist.
func (s *MessageStore) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM messages
		WHERE message_id = $1
		RETURNING message_id, posted_by, message_text, time_posted_epoch
	`
	var message domain.Message
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&message.ID, &message.PostedBy, &message.Text, &message.PostedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMessageNotFound
		}

		log.Error("failed to delete message",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return nil, store.NewStoreError("message", "delete", "delete failed", MapError(err))
	}

	log.Info("message deleted", slog.Int64("message_id", id))
	return &message, nil
}

// UpdateText implements store.MessageStore.UpdateText.
// Only the text column changes; UPDATE ... RETURNING yields the
// post-update row.
// Returns store.ErrMessageNotFound if the message does not exist.
func (s *MessageStore) UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE messages
		SET message_text = $2
		WHERE message_id = $1
		RETURNING message_id, posted_by, message_text, time_posted_epoch
	`
	var message domain.Message
	err := s.db.QueryRowContext(ctx, query, id, text).
		Scan(&message.ID, &message.PostedBy, &message.Text, &message.PostedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMessageNotFound
		}

		log.Error("failed to update message text",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return nil, store.NewStoreError("message", "update", "update failed", MapError(err))
	}

	log.Info("message text updated", slog.Int64("message_id", id))
	return &message, nil
}

// ListByAuthor implements store.MessageStore.ListByAuthor.
// An unknown account ID simply yields an empty slice.
func (s *MessageStore) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		WHERE posted_by = $1
		ORDER BY message_id
	`
	return s.queryMessages(ctx, query, accountID)
}

// queryMessages runs a multi-row message query. It always returns a
// non-nil slice on success so transports serialize an empty JSON array
// rather than null.
func (s *MessageStore) queryMessages(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query messages",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("message", "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(&message.ID, &message.PostedBy, &message.Text, &message.PostedAt); err != nil {
			log.Error("failed to scan message row",
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("message", "list", "scan failed", MapError(err))
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		log.Error("failed while iterating message rows",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("message", "list", "iteration failed", MapError(err))
	}

	return messages, nil
}
