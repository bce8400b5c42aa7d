package service

import "errors"

var (
	// ErrUnauthenticated is the parent of every token failure.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrProfileEmailMissing      = errors.New("provider profile has no email")
	ErrProfileProviderIDMissing = errors.New("provider profile has no provider id")

	ErrNoteNotFound = errors.New("note not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is the parent of the intent-specific permission errors.
	ErrForbidden       = errors.New("forbidden")
	ErrForbiddenAccess = errors.New("no permission to access this note")
	ErrForbiddenUpdate = errors.New("no permission to update this note")
	ErrForbiddenDelete = errors.New("no permission to delete this note")

	ErrConflict   = errors.New("duplicate entry")
	ErrValidation = errors.New("validation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
