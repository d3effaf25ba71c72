package api

import (
	"log/slog"
	"net/http"

	"github.com/blurtlabs/blurt-api/internal/service"
)

// AccountHandler handles registration and login API requests.
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With("component", "account_handler"),
	}
}

// Register handles POST /register.
// Responds 200 with the stored account on success, 400 on any rejection
// (blank username, short password, duplicate username).
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewAccountResponse(account))
}

// Login handles POST /login.
// Responds 200 with the matched account, or 401 when no stored account
// matches the credentials exactly.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewAccountResponse(account))
}
