package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyContent     = errors.New("content is required")
	ErrContentTooLong   = errors.New("content is too long")
	ErrTooManyTags      = errors.New("too many tags")
	ErrInvalidTag       = errors.New("invalid tag")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidNoteID    = errors.New("invalid note id")

	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
