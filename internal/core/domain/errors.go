package domain

import "errors"

var (
	// ErrInvalidCredentials covers every unauthenticated outcome: missing or
	// malformed credentials, wrong password, and inactive accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an authenticated actor is denied by policy.
	ErrForbidden = errors.New("access forbidden")

	ErrAccountNotFound = errors.New("account not found")
	ErrShiftNotFound   = errors.New("shift not found")

	// ErrEmailTaken is returned when creating an account with an email that
	// already exists.
	ErrEmailTaken = errors.New("account already exists")

	// ErrValidation is wrapped by all malformed-field errors; the wrapping
	// message names the offending field.
	ErrValidation = errors.New("validation failed")
)
