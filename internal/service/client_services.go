package service

import (
	"github.com/MKhiriev/founder-directory/internal/adapter"
	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/notify"
	"github.com/MKhiriev/founder-directory/internal/store"
)

type ClientServices struct {
	SyncService      ClientSyncService
	PhotoService     ClientPhotoService
	DirectoryService ClientDirectoryService
	SyncJob          ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, notifier notify.Notifier, workers config.ClientWorkers, logger *logger.Logger) *ClientServices {
	photoSvc := NewClientPhotoService(storages.PhotoStorage, serverAdapter, logger.WithComponent("photos"))
	syncSvc := NewClientSyncService(storages.FounderRepository, photoSvc, serverAdapter, logger.WithComponent("sync"))
	directorySvc := NewClientDirectoryService(storages.FounderRepository, storages.PhotoStorage, logger.WithComponent("directory"))

	return &ClientServices{
		SyncService:      syncSvc,
		PhotoService:     photoSvc,
		DirectoryService: directorySvc,
		SyncJob:          NewClientSyncJob(syncSvc, notifier, workers, logger.WithComponent("sync-job")),
	}
}
