package service

import (
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
)

// Services groups the server-side services of the development directory
// server.
type Services struct {
	DirectoryService DirectoryService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		DirectoryService: NewDirectoryService(storages.DirectoryStorage, logger.WithComponent("directory")),
	}
}
