package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/security"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	AuthService         AuthService
	TokenService        TokenService
	IdentityService     IdentityService
	OwnershipAuthorizer OwnershipAuthorizer
	NoteService         NoteService
	UserService         UserService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, provider adapter.OAuthProvider, recorder metrics.Recorder, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg.App, logger)
	identityService := NewIdentityService(storages.UserRepository, ids, recorder, logger)
	authorizer := NewOwnershipAuthorizer(storages.NoteRepository, logger)

	noteService := NewNoteValidationService().Wrap(
		NewNoteService(storages.NoteRepository, authorizer, security.NewNoteSanitizer(), ids, logger),
	)

	return &Services{
		AuthService:         NewAuthService(provider, identityService, tokenService, logger),
		TokenService:        tokenService,
		IdentityService:     identityService,
		OwnershipAuthorizer: authorizer,
		NoteService:         noteService,
		UserService:         NewUserService(storages.UserRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}
