package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/heydancer/dancer-profile/models"
)

// UserRepository persists dancer profiles and their contact pair. The
// contact pair lives in nullable columns on the users table, so contact
// operations are part of this repository rather than a separate one.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned identity.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns the user with the given id or [ErrUserNotFound].
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// GetAllUsers returns every stored user in storage iteration order.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser overwrites the name/surname/birthday fields of an
	// existing user and returns the stored row. Contact columns are
	// untouched. Returns [ErrUserNotFound] if the id does not exist.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user; owned images cascade at the schema
	// level. Returns [ErrUserNotFound] if the id does not exist.
	DeleteUser(ctx context.Context, userID int64) error

	// UpdateContacts sets or clears the contact pair of a user. Both
	// fields always change together. Returns [ErrUserNotFound] if the id
	// does not exist.
	UpdateContacts(ctx context.Context, userID int64, email, phoneNumber *string) error
}

// ImageRepository persists profile images with their binary payload.
type ImageRepository interface {
	// SaveImage persists a new image and returns it with the
	// server-assigned identity. Returns [ErrUserNotFound] if the owning
	// user does not exist.
	SaveImage(ctx context.Context, image models.Image) (models.Image, error)

	// GetImageByID returns the image with the given id, payload included,
	// or [ErrImageNotFound].
	GetImageByID(ctx context.Context, imageID int64) (models.Image, error)

	// CountImagesByUser reports how many images the user currently owns.
	CountImagesByUser(ctx context.Context, userID int64) (int64, error)

	// UpdateImage overwrites file name, content type, size and payload of
	// an existing image in place. Returns [ErrImageNotFound] if the id
	// does not exist.
	UpdateImage(ctx context.Context, image models.Image) error

	// DeleteImage removes the image row. Returns [ErrImageNotFound] if
	// the id does not exist.
	DeleteImage(ctx context.Context, imageID int64) error
}
