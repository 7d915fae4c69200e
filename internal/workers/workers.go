package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers returns the client workers: the sync job loop for token and a
// logger of local store changes.
func NewWorkers(services *service.ClientServices, storages *store.ClientStorages, token string, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSyncWorker(services.SyncJob, token, logger.WithComponent("sync-worker")),
		newChangeLogWorker(storages.FounderRepository, logger.WithComponent("change-log")),
	}}
}

// Run starts every worker and waits for all of them. As soon as one worker
// returns the others are cancelled; the first error is returned.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			defer cancel()
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
