// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external systems the server talks
// to.
//
// The primary abstraction is [OAuthProvider], which decouples the login flow
// from a concrete identity provider. The package ships a Google OAuth 2.0
// implementation ([NewGoogleOAuthProvider]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OAuthProvider is a third-party identity provider using the OAuth 2.0
// authorization code flow.
type OAuthProvider interface {
	// Name returns the provider's short name, e.g. "google".
	Name() string

	// GetLoginURL returns the provider consent URL that carries state.
	GetLoginURL(state string) string

	// ExchangeCode trades an authorization code for the caller's verified
	// profile. Errors wrap [ErrExchangeFailed].
	ExchangeCode(ctx context.Context, code string) (models.ExternalProfile, error)
}
