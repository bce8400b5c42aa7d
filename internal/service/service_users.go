package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the stored profile of the authenticated caller.
func (s *userService) GetProfile(ctx context.Context, identity models.Identity) (models.UserProfile, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.UserProfile{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetProfile").Str("user_id", identity.UserID).Msg("error fetching user")
		return models.UserProfile{}, fmt.Errorf("error fetching user: %w", err)
	}

	return user.Profile(), nil
}
