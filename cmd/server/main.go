package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/gatherly/internal/auth"
	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/handler"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/metrics"
	"github.com/MKhiriev/gatherly/internal/server"
	"github.com/MKhiriev/gatherly/internal/service"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/internal/token"
	"github.com/MKhiriev/gatherly/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 10 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("gatherly-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("gatherly-server", cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	codec, err := token.NewCodec(cfg.App.TokenSignKey, cfg.App.TokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages := store.NewStorages(db, log)
	services, err := service.NewServices(storages, codec, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(handler.Dependencies{
		Services: services,
		Guard:    auth.NewGuard(codec, storages.UserRepository),
		Metrics:  metrics.New(),
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
