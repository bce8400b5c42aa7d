package adapter

import "errors"

// Sentinel errors returned by adapters. HTTP status codes of the remote side
// are mapped onto them by mapStatus.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("provider unavailable")

	// ErrExchangeFailed wraps every failure of the authorization code
	// exchange, whatever the cause.
	ErrExchangeFailed = errors.New("oauth code exchange failed")

	// ErrEmptyCode is returned when ExchangeCode is called without a code.
	ErrEmptyCode = errors.New("empty authorization code")

	// ErrInvalidProviderResponse is returned when the provider answers with
	// a 2xx status but an unusable payload.
	ErrInvalidProviderResponse = errors.New("invalid provider response")

	// ErrEmailNotVerified is returned when the provider reports the email
	// address as unverified.
	ErrEmailNotVerified = errors.New("provider email is not verified")
)
