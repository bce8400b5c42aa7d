// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService wires the provider login flow: code exchange, identity
// resolution and token issuance.
type authService struct {
	// provider is the external identity provider (Google).
	provider adapter.OAuthProvider

	// identityService maps the verified profile to a local user.
	identityService IdentityService

	// tokenService signs the session token handed back to the client.
	tokenService TokenService

	logger *logger.Logger
}

func NewAuthService(provider adapter.OAuthProvider, identityService IdentityService, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		provider:        provider,
		identityService: identityService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

func (a *authService) GetLoginURL(state string) string {
	return a.provider.GetLoginURL(state)
}

// Login completes the callback leg of the provider flow.
//
// Returns errors wrapping adapter.ErrExchangeFailed when the provider
// rejects the code, the IdentityService errors (ErrValidation, ErrConflict)
// and ErrTokenCreationFailed.
func (a *authService) Login(ctx context.Context, code string) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	profile, err := a.provider.ExchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("provider", a.provider.Name()).Msg("code exchange failed")
		return models.LoginResponse{}, fmt.Errorf("code exchange failed: %w", err)
	}
	if profile.Provider == "" {
		profile.Provider = a.provider.Name()
	}

	user, err := a.identityService.ResolveUser(ctx, profile)
	if err != nil {
		return models.LoginResponse{}, err
	}

	token, err := a.tokenService.IssueToken(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken: token.String(),
		User:        user.Profile(),
	}, nil
}
