package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/founder-directory/internal/adapter"
	"github.com/MKhiriev/founder-directory/internal/client"
	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/notify"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/internal/utils"
	"github.com/MKhiriev/founder-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("founder-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("founder-client", cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, notify.NewTerminalNotifier(os.Stderr), cfg.Workers, log)

	usage := notify.NopUsageReporter()
	if cfg.App.ReportUsage {
		device := utils.NewDeviceIdentity(cfg.Storage.Files.DeviceIDPath)
		usage = notify.NewUsageReporter(cfg.Adapter.HTTPAddress, buildInfo.ReportedVersion(cfg.App.Version), device, log.WithComponent("usage"))
	}

	app, err := client.NewApp(services, storages, usage, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}
