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

// AccountStore implements the store.AccountStore interface using a
// PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewAccountStore(db store.DBTX, log *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// Create implements store.AccountStore.Create.
// The database assigns the ID, which is written back into the account.
// Returns store.ErrUsernameExists if the username unique constraint is
// violated, including when a concurrent insert wins the race after this
// caller's pre-check passed.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`
	err := s.db.QueryRowContext(ctx, query, account.Username, account.Password).
		Scan(&account.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already taken",
				slog.String("username", account.Username))
			return MapUniqueViolation(err, store.ErrUsernameExists)
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("username", account.Username))
		return store.NewStoreError("account", "create", "insert failed", MapError(err))
	}

	log.Info("account created",
		slog.Int64("account_id", account.ID),
		slog.String("username", account.Username))
	return nil
}

// GetByID implements store.AccountStore.GetByID.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE account_id = $1
	`
	return s.scanAccount(ctx, query, id)
}

// GetByUsername implements store.AccountStore.GetByUsername.
// The match is case-sensitive and exact.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE username = $1
	`
	return s.scanAccount(ctx, query, username)
}

// GetByCredentials implements store.AccountStore.GetByCredentials.
// Both fields must match exactly; passwords are compared verbatim because
// credential hashing is out of scope for this service.
// Returns store.ErrAccountNotFound if no account matches.
func (s *AccountStore) GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE username = $1 AND password = $2
	`
	return s.scanAccount(ctx, query, username, password)
}

// scanAccount runs a single-row account query and maps its result.
// sql.ErrNoRows becomes store.ErrAccountNotFound; any other failure is
// wrapped as a storage failure so it can never be confused with absence.
func (s *AccountStore) scanAccount(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &account.Username, &account.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}

		log.Error("failed to query account",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("account", "get", "query failed", MapError(err))
	}

	return &account, nil
}
