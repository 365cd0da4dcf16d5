package http

import (
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
)

type Handler struct {
	registry service.RegistryService

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		registry: services.Registry,
		logger:   logger,
	}
}
