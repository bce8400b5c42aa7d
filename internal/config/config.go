// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields that
// no source has set.
const (
	DefaultTokenIssuer          = "go-notes-keeper"
	DefaultLogLevel             = "info"
	DefaultCORSOrigin           = "*"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultRequestTimeout       = 30 * time.Second
	DefaultOAuthRequestTimeout  = 10 * time.Second
	DefaultRateLimitRPS         = 2.0
	DefaultRateLimitBurst       = 120
	DefaultRateLimitCleanupTick = 5 * time.Minute
)

// StructuredConfig is the top-level configuration container for the
// notes server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing parameters and the application version.
	App App `envPrefix:"APP_"`

	// OAuth holds the identity provider client settings.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the per-user request rate limiter settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// tokens and versioning.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	// It is read once at startup; changing it invalidates every outstanding
	// token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance
	// (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// StateSignKey is the HMAC key used to sign the OAuth "state" parameter.
	// Falls back to TokenSignKey when empty.
	// Env: APP_STATE_SIGN_KEY
	StateSignKey string `env:"STATE_SIGN_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel filters log output: trace, debug, info, warn or error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// OAuth holds the Google OAuth 2.0 client settings.
type OAuth struct {
	// Env: OAUTH_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// Env: OAUTH_GOOGLE_CLIENT_SECRET
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// GoogleRedirectURL must point at GET /api/auth/google/callback.
	// Env: OAUTH_GOOGLE_REDIRECT_URL
	GoogleRedirectURL string `env:"GOOGLE_REDIRECT_URL"`

	// Endpoint overrides, mostly for tests. Empty values use Google's
	// public endpoints.
	GoogleAuthURL     string `env:"GOOGLE_AUTH_URL"`
	GoogleTokenURL    string `env:"GOOGLE_TOKEN_URL"`
	GoogleUserInfoURL string `env:"GOOGLE_USERINFO_URL"`

	// RequestTimeout bounds every outbound call to the provider.
	// Env: OAUTH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://" or
	// "postgresql://" use pgx, "sqlite://" or "file:" use SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Store calls inherit it through the request context.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the browser origins allowed to call the API.
	// "*" allows any origin.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// RateLimit holds the per-user token bucket settings applied to protected
// routes.
type RateLimit struct {
	// RPS is the sustained number of requests per second allowed per user.
	// Env: RATE_LIMIT_RPS
	RPS float64 `env:"RPS"`

	// Burst is the bucket size.
	// Env: RATE_LIMIT_BURST
	Burst int `env:"BURST"`

	// CleanupInterval controls how often idle per-user limiters are evicted.
	// Env: RATE_LIMIT_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources (see the package documentation
// for the priority order).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv(os.Getenv(envFileVariable)).
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills unset fields with their default values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.StateSignKey == "" {
		cfg.App.StateSignKey = cfg.App.TokenSignKey
	}
	if cfg.OAuth.RequestTimeout == 0 {
		cfg.OAuth.RequestTimeout = DefaultOAuthRequestTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{DefaultCORSOrigin}
	}
	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = DefaultRateLimitRPS
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = DefaultRateLimitBurst
	}
	if cfg.RateLimit.CleanupInterval == 0 {
		cfg.RateLimit.CleanupInterval = DefaultRateLimitCleanupTick
	}
}
