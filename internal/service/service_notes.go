// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/security"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService implements NoteService. Every by-id operation goes through the
// OwnershipAuthorizer before touching the NoteRepository write paths.
type noteService struct {
	noteRepository store.NoteRepository
	authorizer     OwnershipAuthorizer
	sanitizer      security.NoteSanitizer
	ids            idGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, authorizer OwnershipAuthorizer, sanitizer security.NoteSanitizer, ids idGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		authorizer:     authorizer,
		sanitizer:      sanitizer,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// ListNotes returns one page of the caller's notes, newest first. No
// per-item check is needed since the query is scoped to the owner.
func (s *noteService) ListNotes(ctx context.Context, identity models.Identity, pagination models.Pagination) (models.NotesPage, error) {
	log := logger.FromContext(ctx)

	notes, total, err := s.noteRepository.FindNotesByOwner(ctx, identity.UserID, pagination.Offset(), pagination.Limit)
	if err != nil {
		log.Err(err).Str("func", "noteService.ListNotes").Str("user_id", identity.UserID).Msg("error listing notes")
		return models.NotesPage{}, fmt.Errorf("error listing notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return models.NotesPage{
		Notes: notes,
		Total: total,
		Pages: pagination.Pages(total),
	}, nil
}

// CreateNote stores a new note owned by the caller.
func (s *noteService) CreateNote(ctx context.Context, identity models.Identity, request models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	title := s.sanitizer.SanitizeTitle(request.Title)
	if title == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyTitle)
	}
	content := s.sanitizer.SanitizeContent(request.Content)
	if content == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyContent)
	}
	tags := s.sanitizer.SanitizeTags(request.Tags)
	if tags == nil {
		tags = []string{}
	}

	now := s.now().UTC()
	note, err := s.noteRepository.InsertNote(ctx, models.Note{
		ID:        s.ids.Generate(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		Owner:     identity.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "noteService.CreateNote").Str("user_id", identity.UserID).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("error inserting note: %w", err)
	}

	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	decision, err := s.authorize(ctx, identity, noteID, models.IntentRead)
	if err != nil {
		return models.Note{}, err
	}

	return decision.Note, nil
}

// UpdateNote applies the fields present in request. The owner is never
// changed.
func (s *noteService) UpdateNote(ctx context.Context, identity models.Identity, noteID string, request models.UpdateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if _, err := s.authorize(ctx, identity, noteID, models.IntentUpdate); err != nil {
		return models.Note{}, err
	}

	update, err := s.sanitizeUpdate(request)
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.noteRepository.UpdateNoteByID(ctx, noteID, update)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteService.UpdateNote").Str("note_id", noteID).Msg("error updating note")
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, identity models.Identity, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.authorize(ctx, identity, noteID, models.IntentDelete); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNoteByID(ctx, noteID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteService.DeleteNote").Str("note_id", noteID).Msg("error deleting note")
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}

func (s *noteService) authorize(ctx context.Context, identity models.Identity, noteID string, intent models.Intent) (models.Decision, error) {
	decision, err := s.authorizer.Authorize(ctx, identity, noteID, intent)
	if err != nil {
		return models.Decision{}, err
	}
	if err = DecisionError(decision); err != nil {
		return models.Decision{}, err
	}
	return decision, nil
}

func (s *noteService) sanitizeUpdate(request models.UpdateNoteRequest) (models.NoteUpdate, error) {
	update := request.ToNoteUpdate()

	if update.Title != nil {
		title := s.sanitizer.SanitizeTitle(*update.Title)
		if title == "" {
			return models.NoteUpdate{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyTitle)
		}
		update.Title = &title
	}
	if update.Content != nil {
		content := s.sanitizer.SanitizeContent(*update.Content)
		if content == "" {
			return models.NoteUpdate{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyContent)
		}
		update.Content = &content
	}
	if update.Tags != nil {
		tags := s.sanitizer.SanitizeTags(*update.Tags)
		if tags == nil {
			tags = []string{}
		}
		update.Tags = &tags
	}

	if update.IsEmpty() {
		return models.NoteUpdate{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoFieldsToUpdate)
	}
	return update, nil
}
