package service

import (
	"context"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/store"
	"github.com/heydancer/dancer-profile/models"
)

type contactService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewContactService constructs a [ContactService]. Contacts live as
// nullable columns on the user row, so the service works entirely
// through the user repository.
func NewContactService(userRepository store.UserRepository, logger *logger.Logger) ContactService {
	return &contactService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Add attaches the contact pair to a user that has none yet. Even a
// half-set pair counts as already added.
func (s *contactService) Add(ctx context.Context, userID int64, contact models.UserContact) (models.UserContact, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserContact{}, userError(err, userID)
	}

	if user.HasAnyContact() {
		return models.UserContact{}, ErrContactsAlreadyAdded
	}

	if err := s.setContacts(ctx, userID, contact); err != nil {
		return models.UserContact{}, err
	}

	return contact, nil
}

// Get returns the contact pair of a user. Not found only when both
// fields are null; a half-set pair is still reported.
func (s *contactService) Get(ctx context.Context, userID int64) (models.UserContact, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserContact{}, userError(err, userID)
	}

	if !user.HasAnyContact() {
		return models.UserContact{}, ErrContactsNotFound
	}

	return models.ToContactDTO(user), nil
}

// Update replaces an already present contact pair. Both fields must be
// set for the pair to count as added.
func (s *contactService) Update(ctx context.Context, userID int64, contact models.UserContact) (models.UserContact, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserContact{}, userError(err, userID)
	}

	if !user.HasContacts() {
		return models.UserContact{}, ErrContactsNotAdded
	}

	if err := s.setContacts(ctx, userID, contact); err != nil {
		return models.UserContact{}, err
	}

	return contact, nil
}

// Delete clears both contact columns. Removing contacts from a user that
// has none is not an error.
func (s *contactService) Delete(ctx context.Context, userID int64) error {
	if err := s.userRepository.UpdateContacts(ctx, userID, nil, nil); err != nil {
		return userError(err, userID)
	}

	return nil
}

func (s *contactService) setContacts(ctx context.Context, userID int64, contact models.UserContact) error {
	if err := s.userRepository.UpdateContacts(ctx, userID, &contact.Email, &contact.PhoneNumber); err != nil {
		return userError(err, userID)
	}

	return nil
}
