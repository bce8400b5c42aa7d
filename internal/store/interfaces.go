package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists local user accounts.
//
// Email is unique; ProviderID is unique when set and is only ever written by
// LinkProviderID while it is still NULL.
type UserRepository interface {
	// CreateUser inserts a fully populated user. A unique-key collision on
	// email or provider id yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByProviderID(ctx context.Context, providerID string) (models.User, error)
	// LinkProviderID sets the provider id of userID only if it is still NULL
	// and returns the stored user. If another writer linked first, the
	// stored user is returned unchanged.
	LinkProviderID(ctx context.Context, userID, providerID string) (models.User, error)
}

// NoteRepository persists notes. It applies no ownership checks: callers
// are expected to authorize before reading or mutating by id.
type NoteRepository interface {
	FindNoteByID(ctx context.Context, noteID string) (models.Note, error)
	// FindNotesByOwner returns one page of the owner's notes, newest first,
	// and the owner's total note count.
	FindNotesByOwner(ctx context.Context, ownerID string, offset, limit int) ([]models.Note, int, error)
	InsertNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNoteByID applies the non-nil fields of update. The owner column
	// is never written.
	UpdateNoteByID(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNoteByID(ctx context.Context, noteID string) error
}
