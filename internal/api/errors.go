package api

import (
	"errors"
	"net/http"

	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/service"
	"github.com/blurtlabs/blurt-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. This prevents leaking internal error types to clients.
//
// Not-found outcomes are not mapped here: whether absence means an empty
// 200 body (get, delete) or a 400 rejection (update) is an endpoint
// decision, handled at each handler.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Business-rule rejections and malformed identifiers
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrUnknownAuthor),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: storage failures and anything unexpected
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Raw error strings never reach clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, service.ErrUnknownAuthor):
		return "Author account does not exist"

	case errors.Is(err, domain.ErrBlankUsername):
		return "Username cannot be blank"

	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password is too short"

	case errors.Is(err, domain.ErrBlankMessageText):
		return "Message text cannot be blank"

	case errors.Is(err, domain.ErrMessageTextTooLong):
		return "Message text is too long"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the standard error response for err, combining
// the status mapping and the sanitized message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
