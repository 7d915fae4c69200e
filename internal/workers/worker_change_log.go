package workers

import (
	"context"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/models"
)

type changeSource interface {
	Subscribe() (<-chan models.ChangeEvent, func())
}

// changeLogWorker writes every committed store mutation to the log. It is
// the reader that a UI list would otherwise be.
type changeLogWorker struct {
	source changeSource
	logger *logger.Logger
}

func newChangeLogWorker(source changeSource, logger *logger.Logger) *changeLogWorker {
	return &changeLogWorker{source: source, logger: logger}
}

func (w *changeLogWorker) Run(ctx context.Context) error {
	events, cancel := w.source.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			w.logger.Debug().
				Str("op", string(event.Op)).
				Str("id", event.ID).
				Msg("local directory changed")
		}
	}
}
