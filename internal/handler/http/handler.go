package http

import (
	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/service"
)

type Handler struct {
	services *service.Services

	// development relaxes the session cookie's Secure attribute so the admin
	// panel works over plain http://localhost.
	development bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, development bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		development: development,
		logger:      logger,
	}
}
