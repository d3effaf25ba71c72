package domain

import (
	"fmt"
	"strings"
)

// Account validation errors
var (
	ErrBlankUsername    = fmt.Errorf("%w: username cannot be blank", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
)

// MinPasswordLength is the minimum number of characters a password must have.
const MinPasswordLength = 4

// Account represents a registered user of the service.
//
// Passwords are stored and compared verbatim: credential hashing is
// explicitly out of scope for this service, which authenticates by
// account ID existence only.
type Account struct {
	ID       int64  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAccount creates an Account candidate with the given credentials.
// The ID is zero until the store assigns one on insert.
// Returns an error if validation fails.
func NewAccount(username, password string) (*Account, error) {
	account := &Account{
		Username: username,
		Password: password,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// The username must be non-blank and the password at least
// MinPasswordLength characters. Uniqueness of the username is a store
// concern and is not checked here.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrBlankUsername
	}

	if len(a.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
