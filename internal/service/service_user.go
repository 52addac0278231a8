package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/store"
	"github.com/heydancer/dancer-profile/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by the user repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create persists a new profile and returns its full representation,
// identity included.
func (s *userService) Create(ctx context.Context, user models.ShortUser) (models.FullUser, error) {
	created, err := s.userRepository.CreateUser(ctx, models.ToUser(user))
	if err != nil {
		return models.FullUser{}, err
	}

	return models.ToFullUserDTO(created), nil
}

// GetByID returns the full representation of a single profile.
func (s *userService) GetByID(ctx context.Context, userID int64) (models.FullUser, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.FullUser{}, userError(err, userID)
	}

	return models.ToFullUserDTO(found), nil
}

// GetAll lists every profile in short form. Contact fields are never
// part of the listing.
func (s *userService) GetAll(ctx context.Context) ([]models.ShortUser, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	return models.ToShortUserDTOs(users), nil
}

// Update replaces the core profile fields of an existing user. Contact
// fields are left untouched and come back in the returned representation.
func (s *userService) Update(ctx context.Context, userID int64, user models.ShortUser) (models.FullUser, error) {
	toUpdate := models.ToUser(user)
	toUpdate.ID = userID

	updated, err := s.userRepository.UpdateUser(ctx, toUpdate)
	if err != nil {
		return models.FullUser{}, userError(err, userID)
	}

	return models.ToFullUserDTO(updated), nil
}

// Delete removes the profile together with any owned image.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return userError(err, userID)
	}

	return nil
}

// userError attaches the requested identifier to the not-found sentinel
// so the API reports which user was missing.
func userError(err error, userID int64) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w. Id: %d", store.ErrUserNotFound, userID)
	}

	return err
}
