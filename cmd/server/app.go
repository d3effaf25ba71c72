package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/blurtlabs/blurt-api/internal/config"
	"github.com/blurtlabs/blurt-api/internal/platform/postgres"
	"github.com/blurtlabs/blurt-api/internal/service"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// application holds the dependencies shared across the server's
// components. Everything is wired here, explicitly: services receive
// their store collaborators through construction, never instantiate
// their own.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	accountStore store.AccountStore
	messageStore store.MessageStore

	accountService service.AccountService
	messageService service.MessageService
}

// newApplication connects to the database, applies migrations, and
// builds the dependency graph leaves-first: stores, then services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Database migrations applied")

	accountStore := postgres.NewAccountStore(db, logger)
	messageStore := postgres.NewMessageStore(db, logger)

	accountService := service.NewAccountService(accountStore, logger)
	messageService := service.NewMessageService(messageStore, accountStore, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountStore:   accountStore,
		messageStore:   messageStore,
		accountService: accountService,
		messageService: messageService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
