package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/notify"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/internal/workers"
)

// usagePage is the page name reported when the sync client starts.
const usagePage = "sync"

// runner is the part of [workers.Workers] the app depends on.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	workers runner
	usage   notify.UsageReporter

	reportUsage bool
	serverURL   string

	logger *logger.Logger
}

// NewApp wires the background workers of the sync client. The usage reporter
// is only called when cfg.App.ReportUsage is set.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, usage notify.UsageReporter, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || storages == nil || cfg == nil {
		return nil, errors.New("client app: missing dependency")
	}
	if usage == nil {
		usage = notify.NopUsageReporter()
	}

	return &App{
		workers:     workers.NewWorkers(services, storages, cfg.App.SessionToken, logger),
		usage:       usage,
		reportUsage: cfg.App.ReportUsage,
		serverURL:   cfg.Adapter.HTTPAddress,
		logger:      logger,
	}, nil
}

// Run blocks until the sync job's lifetime is over or ctx is done. A run
// without a session token fails with [service.ErrEmptyToken].
func (a *App) Run(ctx context.Context) error {
	if a.reportUsage {
		a.usage.Report(ctx, usagePage, a.serverURL)
	}
	defer a.usage.Wait()

	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("client workers: %w", err)
	}

	a.logger.Info().Msg("client finished")
	return nil
}
