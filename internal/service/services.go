package service

import (
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/store"
)

// Services bundles all business-logic services consumed by the HTTP layer.
type Services struct {
	UserService    UserService
	ContactService ContactService
	ImageService   ImageService
}

// NewServices wires the service set on top of the repository set.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService:    NewUserService(storages.UserRepository, logger),
		ContactService: NewContactService(storages.UserRepository, logger),
		ImageService:   NewImageService(storages.UserRepository, storages.ImageRepository, logger),
	}
}
