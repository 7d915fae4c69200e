package workers

import (
	"context"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
)

// syncWorker drives the sync job on the worker goroutine. The job ending on
// its own, once its lifetime is over, ends the client run.
type syncWorker struct {
	job    service.ClientSyncJob
	token  string
	logger *logger.Logger
}

func newSyncWorker(job service.ClientSyncJob, token string, logger *logger.Logger) *syncWorker {
	return &syncWorker{job: job, token: token, logger: logger}
}

func (w *syncWorker) Run(ctx context.Context) error {
	if w.token == "" {
		w.logger.Warn().Str("func", "syncWorker.Run").Msg("no session token, sync job not started")
		return service.ErrEmptyToken
	}

	w.logger.Info().Msg("sync job started")
	w.job.Run(ctx, w.token)
	w.logger.Info().Str("state", w.job.State().String()).Msg("sync job finished")

	return nil
}
