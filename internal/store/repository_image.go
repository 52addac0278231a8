package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/models"
	"github.com/jackc/pgerrcode"
)

// imageRepository is the PostgreSQL-backed implementation of
// [ImageRepository]. It executes all image CRUD operations against the
// "images" table, binary payload included.
type imageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewImageRepository constructs an [ImageRepository] backed by the provided
// database connection and logger.
func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	logger.Debug().Msg("creating image repository")
	return &imageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveImage persists a new image and writes the server-assigned identity
// back into the returned value.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound]
//     (the owning user disappeared between the service check and the insert).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *imageRepository) SaveImage(ctx context.Context, image models.Image) (models.Image, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createImage, image.UserID, image.FileName, image.ContentType, image.Size, image.Bytes)

	if err := row.Scan(&image.ID); err != nil {
		log.Err(err).Str("func", "*imageRepository.SaveImage").Int64("user_id", image.UserID).Msg("failed to insert image")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Image{}, ErrUserNotFound
		default:
			return models.Image{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return image, nil
}

// GetImageByID retrieves an image with its binary payload.
//
// Error handling:
//   - No matching row → [ErrImageNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *imageRepository) GetImageByID(ctx context.Context, imageID int64) (models.Image, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getImageByID, imageID)

	var found models.Image
	if err := row.Scan(&found.ID, &found.UserID, &found.FileName, &found.ContentType, &found.Size, &found.Bytes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Image{}, ErrImageNotFound
		}

		log.Err(err).Str("func", "*imageRepository.GetImageByID").Int64("image_id", imageID).Msg("failed to scan image row")
		return models.Image{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// CountImagesByUser reports how many images the user currently owns. The
// service uses this to enforce the single-image rule the schema does not.
func (r *imageRepository) CountImagesByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countImagesByUser, userID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*imageRepository.CountImagesByUser").Int64("user_id", userID).Msg("failed to count images")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// UpdateImage overwrites file name, content type, size and payload of an
// existing image in place. The image identity never changes.
func (r *imageRepository) UpdateImage(ctx context.Context, image models.Image) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateImageQuery(image)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.UpdateImage").Int64("image_id", image.ID).Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "*imageRepository.UpdateImage").Int64("image_id", image.ID).Msg("failed to update image")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}

// DeleteImage removes the image row.
func (r *imageRepository) DeleteImage(ctx context.Context, imageID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteImage, imageID)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.DeleteImage").Int64("image_id", imageID).Msg("failed to delete image")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}
