// Package service provides application-level services for managing
// accounts and messages. Services enforce the business rules; stores
// only persist.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions.
//  2. Validation failures surface as domain.ErrValidation-wrapped errors and
//     cause no side effects.
//  3. Storage failures are wrapped and propagated, never swallowed: a failed
//     insert is always distinguishable from "no matching record."
//  4. The API layer maps service errors to HTTP status codes with errors.Is.
var (
	// ErrInvalidCredentials indicates a login attempt that matched no stored
	// account. It deliberately does not reveal whether the username exists.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownAuthor indicates a message creation attempt whose author
	// account does not exist. API layer should map this to HTTP 400.
	ErrUnknownAuthor = errors.New("author account does not exist")
)
