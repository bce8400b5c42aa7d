package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService drives the provider login flow.
type AuthService interface {
	// GetLoginURL returns the provider consent URL carrying state.
	GetLoginURL(state string) string
	// Login exchanges the provider code, resolves the local user and
	// issues a session token.
	Login(ctx context.Context, code string) (models.LoginResponse, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken returns the verified claims. Errors wrap
	// ErrUnauthenticated and one of ErrTokenMalformed, ErrTokenExpired or
	// ErrTokenInvalidSignature.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// IdentityService maps a verified provider profile to exactly one local
// user, creating or linking it when needed.
type IdentityService interface {
	ResolveUser(ctx context.Context, profile models.ExternalProfile) (models.User, error)
}

// OwnershipAuthorizer decides whether identity may act on a note.
//
// The returned error is reserved for store failures; denials are reported
// through the Decision.
type OwnershipAuthorizer interface {
	Authorize(ctx context.Context, identity models.Identity, noteID string, intent models.Intent) (models.Decision, error)
}

// NoteService is the ownership-scoped note CRUD used by the HTTP layer.
type NoteService interface {
	ListNotes(ctx context.Context, identity models.Identity, pagination models.Pagination) (models.NotesPage, error)
	CreateNote(ctx context.Context, identity models.Identity, request models.CreateNoteRequest) (models.Note, error)
	GetNote(ctx context.Context, identity models.Identity, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, identity models.Identity, noteID string, request models.UpdateNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, identity models.Identity, noteID string) error
}

// UserService exposes the caller's stored account.
type UserService interface {
	GetProfile(ctx context.Context, identity models.Identity) (models.UserProfile, error)
}

// AppInfoService reports what build is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
