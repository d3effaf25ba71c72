package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Message validation errors
var (
	ErrBlankMessageText   = fmt.Errorf("%w: message text cannot be blank", ErrValidation)
	ErrMessageTextTooLong = fmt.Errorf("%w: message text must be at most %d characters long", ErrValidation, MaxMessageTextLength)
)

// MaxMessageTextLength is the maximum number of characters a message may hold.
const MaxMessageTextLength = 255

// Message represents a short text post authored by an account.
//
// PostedAt is an epoch-milliseconds timestamp supplied by the caller at
// creation time and stored as given; the service neither generates nor
// range-checks it.
type Message struct {
	ID       int64  `json:"message_id"`
	PostedBy int64  `json:"posted_by"`
	Text     string `json:"message_text"`
	PostedAt int64  `json:"time_posted_epoch"`
}

// NewMessage creates a Message candidate for the given author.
// The ID is zero until the store assigns one on insert.
// Returns an error if the text fails validation; author existence is a
// service-level check against the account store.
func NewMessage(postedBy int64, text string, postedAt int64) (*Message, error) {
	message := &Message{
		PostedBy: postedBy,
		Text:     text,
		PostedAt: postedAt,
	}

	if err := message.Validate(); err != nil {
		return nil, err
	}

	return message, nil
}

// Validate checks if the Message has valid data.
func (m *Message) Validate() error {
	return ValidateMessageText(m.Text)
}

// ValidateMessageText checks the business rules for message text: it must
// be non-blank after trimming and at most MaxMessageTextLength characters.
// Updates apply the same rules as creation, so the check is shared.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankMessageText
	}

	if utf8.RuneCountInString(text) > MaxMessageTextLength {
		return ErrMessageTextTooLong
	}

	return nil
}
