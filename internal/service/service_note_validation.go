package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService validates requests before handing them to the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, identity models.Identity, pagination models.Pagination) (models.NotesPage, error) {
	if pagination.Page < 1 {
		return models.NotesPage{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidPage)
	}
	if pagination.Limit < 1 || pagination.Limit > models.MaxLimit {
		return models.NotesPage{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidLimit)
	}

	return v.inner.ListNotes(ctx, identity, pagination)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, identity models.Identity, request models.CreateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateNote(ctx, identity, request)
}

func (v *NoteValidationService) GetNote(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	if err := v.validateNoteID(ctx, noteID); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, identity, noteID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, identity models.Identity, noteID string, request models.UpdateNoteRequest) (models.Note, error) {
	if err := v.validateNoteID(ctx, noteID); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateNote(ctx, identity, noteID, request)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, identity models.Identity, noteID string) error {
	if err := v.validateNoteID(ctx, noteID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, identity, noteID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

// validateNoteID reports ids that cannot exist as ErrNoteNotFound.
func (v *NoteValidationService) validateNoteID(ctx context.Context, noteID string) error {
	if err := v.validator.Validate(ctx, noteID, validators.FieldNoteID); err != nil {
		if errors.Is(err, validators.ErrInvalidNoteID) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
