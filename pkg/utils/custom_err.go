package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDatabaseError      = errors.New("database error")

	// ErrAIUpstream covers provider failures and empty payloads;
	// ErrAIMalformedResponse covers responses that cannot be parsed into an
	// itinerary. Both surface to clients as a generic retry message.
	ErrAIUpstream          = errors.New("ai upstream error")
	ErrAIMalformedResponse = errors.New("malformed ai response")
)
