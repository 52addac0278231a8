package http

import (
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/service"
)

type Handler struct {
	services *service.Services
	verifier CredentialVerifier

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier CredentialVerifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		logger:   logger,
	}
}
