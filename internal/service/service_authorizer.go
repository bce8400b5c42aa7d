// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type ownershipAuthorizer struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewOwnershipAuthorizer(noteRepository store.NoteRepository, logger *logger.Logger) OwnershipAuthorizer {
	return &ownershipAuthorizer{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// Authorize fetches noteID and compares its owner with identity.
// It only reads; a denied decision never leads to a write.
func (a *ownershipAuthorizer) Authorize(ctx context.Context, identity models.Identity, noteID string, intent models.Intent) (models.Decision, error) {
	log := logger.FromContext(ctx)
	decision := models.Decision{Intent: intent}

	note, err := a.noteRepository.FindNoteByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			decision.Outcome = models.AccessNotFound
			return decision, nil
		}
		log.Err(err).Str("func", "ownershipAuthorizer.Authorize").Str("note_id", noteID).Msg("error fetching note")
		return models.Decision{}, fmt.Errorf("error fetching note for authorization: %w", err)
	}

	decision.Note = note
	if identity.IsZero() || note.Owner != identity.UserID {
		log.Warn().
			Str("func", "ownershipAuthorizer.Authorize").
			Str("note_id", noteID).
			Str("user_id", identity.UserID).
			Str("intent", string(intent)).
			Msg("note belongs to another user")
		decision.Outcome = models.AccessForbidden
		return decision, nil
	}

	decision.Outcome = models.AccessPermitted
	return decision, nil
}

// DecisionError converts a terminal decision into its error: nil for
// AccessPermitted, ErrNoteNotFound for AccessNotFound and an
// intent-specific error wrapping ErrForbidden for AccessForbidden.
func DecisionError(d models.Decision) error {
	switch d.Outcome {
	case models.AccessPermitted:
		return nil
	case models.AccessNotFound:
		return ErrNoteNotFound
	case models.AccessForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, forbiddenFor(d.Intent))
	default:
		return fmt.Errorf("unknown access outcome %d", d.Outcome)
	}
}

func forbiddenFor(intent models.Intent) error {
	switch intent {
	case models.IntentUpdate:
		return ErrForbiddenUpdate
	case models.IntentDelete:
		return ErrForbiddenDelete
	default:
		return ErrForbiddenAccess
	}
}
