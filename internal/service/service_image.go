package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/store"
	"github.com/heydancer/dancer-profile/models"
)

type imageService struct {
	userRepository  store.UserRepository
	imageRepository store.ImageRepository

	logger *logger.Logger
}

// NewImageService constructs an [ImageService]. The user repository is
// needed to verify the owner exists before touching the images table.
func NewImageService(userRepository store.UserRepository, imageRepository store.ImageRepository, logger *logger.Logger) ImageService {
	return &imageService{
		userRepository:  userRepository,
		imageRepository: imageRepository,
		logger:          logger,
	}
}

// Add stores a new profile image for the user. Fails if the user already
// owns one or the upload carries no bytes.
func (s *imageService) Add(ctx context.Context, userID int64, upload models.ImageUpload) (models.ImageInfo, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return models.ImageInfo{}, err
	}

	count, err := s.imageRepository.CountImagesByUser(ctx, userID)
	if err != nil {
		return models.ImageInfo{}, err
	}
	if count > 0 {
		return models.ImageInfo{}, ErrImageAlreadyAdded
	}

	if upload.Size == 0 {
		return models.ImageInfo{}, ErrEmptyImage
	}

	saved, err := s.imageRepository.SaveImage(ctx, models.ImageFromUpload(userID, upload))
	if err != nil {
		return models.ImageInfo{}, userError(err, userID)
	}

	return models.ToImageInfo(saved), nil
}

// Get returns the image with its binary payload, after verifying the
// requesting user owns it.
func (s *imageService) Get(ctx context.Context, userID int64, imageID int64) (models.Image, error) {
	image, err := s.checkImageByOwner(ctx, userID, imageID)
	if err != nil {
		return models.Image{}, err
	}

	return image, nil
}

// Update replaces the stored image payload and metadata in place. An
// empty upload leaves the image untouched and reports its current state.
func (s *imageService) Update(ctx context.Context, userID int64, imageID int64, upload models.ImageUpload) (models.ImageInfo, error) {
	current, err := s.checkImageByOwner(ctx, userID, imageID)
	if err != nil {
		return models.ImageInfo{}, err
	}

	if upload.Size == 0 {
		return models.ToImageInfo(current), nil
	}

	updated := models.ImageFromUpload(userID, upload)
	updated.ID = imageID

	if err := s.imageRepository.UpdateImage(ctx, updated); err != nil {
		return models.ImageInfo{}, imageError(err, imageID)
	}

	return models.ToImageInfo(updated), nil
}

// Delete removes the image, after verifying the requesting user owns it.
func (s *imageService) Delete(ctx context.Context, userID int64, imageID int64) error {
	if _, err := s.checkImageByOwner(ctx, userID, imageID); err != nil {
		return err
	}

	if err := s.imageRepository.DeleteImage(ctx, imageID); err != nil {
		return imageError(err, imageID)
	}

	return nil
}

// checkImageByOwner loads the image and makes sure the requesting user
// is its owner. The user's own existence is not verified here: a missing
// user can never match the owner of an existing image, so the mismatch
// answer already covers that case.
func (s *imageService) checkImageByOwner(ctx context.Context, userID int64, imageID int64) (models.Image, error) {
	image, err := s.imageRepository.GetImageByID(ctx, imageID)
	if err != nil {
		return models.Image{}, imageError(err, imageID)
	}

	if image.UserID != userID {
		return models.Image{}, ErrNotImageOwner
	}

	return image, nil
}

func (s *imageService) checkUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		return userError(err, userID)
	}

	return nil
}

// imageError attaches the requested identifier to the not-found sentinel
// so the API reports which image was missing.
func imageError(err error, imageID int64) error {
	if errors.Is(err, store.ErrImageNotFound) {
		return fmt.Errorf("%w. Id: %d", store.ErrImageNotFound, imageID)
	}

	return err
}
