package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, missing sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOAuthConfigs indicates incomplete identity provider settings.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiter settings.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
