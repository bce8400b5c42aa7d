// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 implementation of TokenService.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens. It is read
	// once at startup; changing it invalidates every outstanding token.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected as malformed.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration

	// now is the clock used for iat, exp and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the App section of the
// configuration.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}
}

// IssueToken signs a token for user with claims
// {sub: UserID, email, iss, iat: now, exp: now + duration}.
func (t *tokenService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(t.issuer, user.UserID, user.Email, t.duration, t.signKey, t.now())
	if err != nil {
		log.Err(err).Str("func", "tokenService.IssueToken").Str("user_id", user.UserID).Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString and returns its claims.
//
// Expiry is checked on the unverified claims first, so an expired token is
// reported as ErrTokenExpired even when its signature is also wrong.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	log := logger.FromContext(ctx)
	now := t.now()

	if tokenString == "" {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenMalformed)
	}

	if utils.IsJWTExpired(tokenString, now) {
		log.Debug().Str("func", "tokenService.ParseToken").Msg("token is expired")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenExpired)
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer, now)
	if err != nil {
		kind := classifyTokenError(err)
		log.Debug().Err(err).Str("func", "tokenService.ParseToken").Str("reason", kind.Error()).Msg("token rejected")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, kind)
	}

	return claims, nil
}

// classifyTokenError maps jwt/v5 validation errors onto the three token
// failure kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return ErrTokenInvalidSignature
	default:
		// malformed segments, bad issuer, missing sub or exp, nbf in the future
		return ErrTokenMalformed
	}
}
