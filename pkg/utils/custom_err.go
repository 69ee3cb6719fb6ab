package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrGenerationFailed     = errors.New("trip generation failed")
	ErrMalformedModelOutput = errors.New("model returned malformed output")
	ErrTripNotFound         = errors.New("trip not found")
	ErrDatabaseError        = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
