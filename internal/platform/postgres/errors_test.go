package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/blurtlabs/blurt-api/internal/platform/postgres"
	"github.com/blurtlabs/blurt-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "accounts_username_key"}
}

func TestMapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		err := postgres.MapError(sql.ErrNoRows)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("wrapped no rows becomes not found", func(t *testing.T) {
		err := postgres.MapError(fmt.Errorf("scan: %w", sql.ErrNoRows))
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("unique violation becomes duplicate", func(t *testing.T) {
		err := postgres.MapError(pgError("23505"))
		assert.True(t, errors.Is(err, store.ErrDuplicate))
	})

	t.Run("foreign key violation becomes invalid entity", func(t *testing.T) {
		err := postgres.MapError(pgError("23503"))
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("check violation becomes invalid entity", func(t *testing.T) {
		err := postgres.MapError(pgError("23514"))
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		unknown := errors.New("connection refused")
		assert.Same(t, unknown, postgres.MapError(unknown))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(pgError("23505")))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert: %w", pgError("23505"))))
	assert.False(t, postgres.IsUniqueViolation(pgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestMapUniqueViolation(t *testing.T) {
	t.Run("maps to specific error", func(t *testing.T) {
		err := postgres.MapUniqueViolation(pgError("23505"), store.ErrUsernameExists)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrUsernameExists))
		assert.True(t, errors.Is(err, store.ErrDuplicate))
	})

	t.Run("other errors fall back to MapError", func(t *testing.T) {
		err := postgres.MapUniqueViolation(sql.ErrNoRows, store.ErrUsernameExists)
		assert.True(t, errors.Is(err, store.ErrNotFound))
		assert.False(t, errors.Is(err, store.ErrUsernameExists))
	})
}
