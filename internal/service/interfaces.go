package service

import (
	"context"

	"github.com/heydancer/dancer-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService covers the user profile lifecycle.
type UserService interface {
	Create(ctx context.Context, user models.ShortUser) (models.FullUser, error)
	GetByID(ctx context.Context, userID int64) (models.FullUser, error)
	GetAll(ctx context.Context) ([]models.ShortUser, error)
	Update(ctx context.Context, userID int64, user models.ShortUser) (models.FullUser, error)
	Delete(ctx context.Context, userID int64) error
}

// ContactService manages the contact pair attached to a user. Email and
// phone number are always added, updated and removed together.
type ContactService interface {
	Add(ctx context.Context, userID int64, contact models.UserContact) (models.UserContact, error)
	Get(ctx context.Context, userID int64) (models.UserContact, error)
	Update(ctx context.Context, userID int64, contact models.UserContact) (models.UserContact, error)
	Delete(ctx context.Context, userID int64) error
}

// ImageService manages the profile image attached to a user. A user owns
// at most one image at a time.
type ImageService interface {
	Add(ctx context.Context, userID int64, upload models.ImageUpload) (models.ImageInfo, error)
	Get(ctx context.Context, userID int64, imageID int64) (models.Image, error)
	Update(ctx context.Context, userID int64, imageID int64, upload models.ImageUpload) (models.ImageInfo, error)
	Delete(ctx context.Context, userID int64, imageID int64) error
}
