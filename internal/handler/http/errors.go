// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidState is returned by the OAuth callback when the state query
	// parameter is missing or does not match the signed state cookie.
	ErrInvalidState = errors.New("invalid oauth state")

	// ErrMissingIdentity is returned by a protected handler reached without
	// an identity in the request context.
	ErrMissingIdentity = errors.New("no identity in request context")

	// ErrRouteNotFound is returned for unknown routes and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
