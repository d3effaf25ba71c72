package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blurtlabs/blurt-api/internal/api"
	apiMiddleware "github.com/blurtlabs/blurt-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. The route shapes mirror the public API:
// authentication at the root, message CRUD under /messages, and an
// author-scoped listing under /accounts.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	messageHandler := api.NewMessageHandler(app.messageService, app.logger)

	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", messageHandler.Create)
		r.Get("/", messageHandler.GetAll)
		r.Get("/{message_id}", messageHandler.GetByID)
		r.Delete("/{message_id}", messageHandler.Delete)
		r.Patch("/{message_id}", messageHandler.Update)
	})

	r.Get("/accounts/{account_id}/messages", messageHandler.ListByAccount)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
