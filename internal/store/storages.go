package store

import (
	"context"

	"github.com/heydancer/dancer-profile/internal/config"
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/migrations"
)

// Storages bundles all repositories backed by the shared database
// connection.
type Storages struct {
	UserRepository  UserRepository
	ImageRepository ImageRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations
// and constructs the repository set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		ImageRepository: NewImageRepository(db, log),
	}, nil
}
