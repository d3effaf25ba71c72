package api

import "github.com/blurtlabs/blurt-api/internal/domain"

// Common request/response structures.
//
// Field names follow the table columns (account_id, posted_by,
// time_posted_epoch) so existing clients keep working.
// Business validation is deliberately absent here: ordering of
// rejections is a service-layer contract, and a login with blank fields
// must reach the service to produce 401 rather than 400.

// CredentialsRequest defines the payload for the registration and login
// endpoints.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateMessageRequest defines the payload for the message creation
// endpoint.
type CreateMessageRequest struct {
	PostedBy int64  `json:"posted_by"`
	Text     string `json:"message_text"`
	PostedAt int64  `json:"time_posted_epoch"`
}

// UpdateMessageRequest defines the payload for the message update
// endpoint. Only the text is updatable.
type UpdateMessageRequest struct {
	Text string `json:"message_text"`
}

// AccountResponse is the serialized representation of an account.
// The password travels back verbatim; credential hashing and secrecy are
// out of scope for this service.
type AccountResponse struct {
	ID       int64  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse is the serialized representation of a message.
type MessageResponse struct {
	ID       int64  `json:"message_id"`
	PostedBy int64  `json:"posted_by"`
	Text     string `json:"message_text"`
	PostedAt int64  `json:"time_posted_epoch"`
}

// NewAccountResponse converts a domain account to its wire form.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Password: account.Password,
	}
}

// NewMessageResponse converts a domain message to its wire form.
func NewMessageResponse(message domain.Message) MessageResponse {
	return MessageResponse{
		ID:       message.ID,
		PostedBy: message.PostedBy,
		Text:     message.Text,
		PostedAt: message.PostedAt,
	}
}
