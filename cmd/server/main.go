package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/handler"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/server"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("founder-dev-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	storages := store.NewStorages()
	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
