package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by NoteValidator.Validate.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldTags    = "tags"
	// FieldAnyUpdate requires an update request to carry at least one field.
	FieldAnyUpdate = "any_update"
	FieldNoteID    = "note_id"
)

// Size limits of note fields, counted in runes.
const (
	MaxTitleLength   = 200
	MaxContentLength = 100_000
	MaxTags          = 20
	MaxTagLength     = 50
)

// NoteValidator validates note create and update requests.
//
// Create requests must carry a non-blank title and content. Update requests
// are partial: only the fields present are checked, and at least one must be
// present.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, *value, fields...)

	case models.UpdateNoteRequest:
		return v.validateUpdateNoteRequest(ctx, value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateUpdateNoteRequest(ctx, *value, fields...)

	case string:
		return v.validateNoteID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateNoteRequest(ctx context.Context, request models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(request.Title); err != nil {
				return err
			}
		case FieldContent:
			if err := validateContent(request.Content); err != nil {
				return err
			}
		case FieldTags:
			if err := validateTags(request.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateUpdateNoteRequest(ctx context.Context, request models.UpdateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTitle, FieldContent, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if request.Title == nil && request.Content == nil && request.Tags == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if request.Title == nil {
				continue
			}
			if err := validateTitle(*request.Title); err != nil {
				return err
			}
		case FieldContent:
			if request.Content == nil {
				continue
			}
			if err := validateContent(*request.Content); err != nil {
				return err
			}
		case FieldTags:
			if request.Tags == nil {
				continue
			}
			if err := validateTags(*request.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteID(noteID string, fields ...string) error {
	for _, f := range fields {
		if f != FieldNoteID {
			return ErrUnknownField
		}
	}

	if strings.TrimSpace(noteID) == "" || utf8.RuneCountInString(noteID) > 64 {
		return ErrInvalidNoteID
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return ErrTooManyTags
	}
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" || utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("tag at index %d: %w", i, ErrInvalidTag)
		}
	}
	return nil
}
