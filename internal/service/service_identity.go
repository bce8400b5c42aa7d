// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// idGenerator produces new primary keys.
type idGenerator interface {
	Generate() string
}

// identityService reconciles provider profiles with local accounts.
//
// Policy is accept-first, never-overwrite: the first provider id linked to
// an account stays; a later login presenting a different id for the same
// email is returned the stored user unchanged.
type identityService struct {
	userRepository store.UserRepository
	ids            idGenerator
	recorder       metrics.Recorder
	now            func() time.Time

	logger *logger.Logger
}

func NewIdentityService(userRepository store.UserRepository, ids idGenerator, recorder metrics.Recorder, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		ids:            ids,
		recorder:       recorder,
		now:            time.Now,
		logger:         logger,
	}
}

// ResolveUser returns the single local user for profile.
//
// Exactly one of three things happens:
//   - no user has the email: a user is created with the profile data
//     (outcome created);
//   - the user exists without a provider id: the id is linked (outcome
//     linked);
//   - the user already has a provider id: it is returned as is (outcome
//     existing), even if the ids differ.
//
// Returns ErrProfileEmailMissing or ErrProfileProviderIDMissing (both
// wrapping ErrValidation) for incomplete profiles and ErrConflict when a
// concurrent login created the same email first.
func (s *identityService) ResolveUser(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "identityService.ResolveUser").Logger()

	email := normalizeEmail(profile.Email)
	if email == "" {
		log.Warn().Str("provider", profile.Provider).Msg("provider profile carries no email")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrProfileEmailMissing)
	}
	providerID := strings.TrimSpace(profile.ProviderID)
	if providerID == "" {
		log.Warn().Str("provider", profile.Provider).Msg("provider profile carries no provider id")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrProfileProviderIDMissing)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return s.createUser(ctx, profile, email, providerID)
	case err != nil:
		log.Err(err).Msg("error looking up user by email")
		return models.User{}, fmt.Errorf("error looking up user by email: %w", err)
	}

	if user.HasProviderID() {
		if *user.ProviderID != providerID {
			log.Warn().
				Str("user_id", user.UserID).
				Str("provider", profile.Provider).
				Msg("provider id differs from the linked one, keeping the first")
		}
		s.report(ctx, user, models.ResolveExisting)
		return user, nil
	}

	linked, err := s.userRepository.LinkProviderID(ctx, user.UserID, providerID)
	if err != nil {
		if errors.Is(err, store.ErrProviderIDAlreadyExists) {
			log.Warn().Err(err).Str("user_id", user.UserID).Msg("provider id already linked to another account")
			return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Str("user_id", user.UserID).Msg("error linking provider id")
		return models.User{}, fmt.Errorf("error linking provider id: %w", err)
	}

	// a concurrent login may have linked first; the stored id wins
	outcome := models.ResolveLinked
	if linked.HasProviderID() && *linked.ProviderID != providerID {
		outcome = models.ResolveExisting
	}
	s.report(ctx, linked, outcome)

	return linked, nil
}

func (s *identityService) createUser(ctx context.Context, profile models.ExternalProfile, email, providerID string) (models.User, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	created, err := s.userRepository.CreateUser(ctx, models.User{
		UserID:     s.ids.Generate(),
		Email:      email,
		ProviderID: &providerID,
		FirstName:  profile.GivenName,
		LastName:   profile.FamilyName,
		Picture:    profile.Picture,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Err(err).Str("func", "identityService.createUser").Msg("user was created concurrently")
			return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Str("func", "identityService.createUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.report(ctx, created, models.ResolveCreated)
	return created, nil
}

func (s *identityService) report(ctx context.Context, user models.User, outcome models.ResolveOutcome) {
	logger.FromContext(ctx).Info().
		Str("user_id", user.UserID).
		Str("outcome", string(outcome)).
		Msg("identity resolved")
	s.recorder.RecordResolveOutcome(outcome)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
