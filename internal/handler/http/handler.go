package http

import (
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
)

// Handler serves the directory endpoints.
type Handler struct {
	services *service.Services

	// sessionToken is the only key accepted when non-empty.
	sessionToken string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessionToken string, logger *logger.Logger) *Handler {
	logger.Info().Bool("fixed_key", sessionToken != "").Msg("http handler created")
	return &Handler{
		services:     services,
		sessionToken: sessionToken,
		logger:       logger,
	}
}
