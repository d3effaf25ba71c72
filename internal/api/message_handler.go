package api

import (
	"log/slog"
	"net/http"

	"github.com/blurtlabs/blurt-api/internal/api/shared"
	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/service"
	"github.com/blurtlabs/blurt-api/internal/store"
	"github.com/samber/lo"
)

// MessageHandler handles message CRUD API requests.
type MessageHandler struct {
	messageService service.MessageService
	logger         *slog.Logger
}

// NewMessageHandler creates a new MessageHandler with the given dependencies.
func NewMessageHandler(messageService service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger.With("component", "message_handler"),
	}
}

// Create handles POST /messages.
// Responds 200 with the stored message on success, 400 when the text is
// invalid or the author account does not exist.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	message, err := h.messageService.Create(r.Context(), req.PostedBy, req.Text, req.PostedAt)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewMessageResponse(*message))
}

// GetAll handles GET /messages.
// Always responds 200 with an array, possibly empty.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, lo.Map(messages, func(m domain.Message, _ int) MessageResponse {
		return NewMessageResponse(m)
	}))
}

// GetByID handles GET /messages/{message_id}.
// Responds 200 with the message, or 200 with an empty body when absent:
// a missing message is a normal outcome, not an error.
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "message_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	message, err := h.messageService.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithEmpty(w, r)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewMessageResponse(*message))
}

// Delete handles DELETE /messages/{message_id}.
// Responds 200 with the deleted message, or 200 with an empty body when
// the message was already absent (idempotent).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "message_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	message, err := h.messageService.DeleteByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithEmpty(w, r)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewMessageResponse(*message))
}

// Update handles PATCH /messages/{message_id}.
// Responds 200 with the updated message. Invalid text and an unknown
// message ID both respond 400; clients cannot tell the two apart.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "message_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	message, err := h.messageService.Update(r.Context(), id, req.Text)
	if err != nil {
		if store.IsNotFoundError(err) {
			respondError(w, r, http.StatusBadRequest, "Message not found")
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, NewMessageResponse(*message))
}

// ListByAccount handles GET /accounts/{account_id}/messages.
// Always responds 200 with an array; an unknown account yields an empty
// array indistinguishable from an account with no messages.
func (h *MessageHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathID(r, "account_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	messages, err := h.messageService.ListByAccount(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, lo.Map(messages, func(m domain.Message, _ int) MessageResponse {
		return NewMessageResponse(m)
	}))
}
