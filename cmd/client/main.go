package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/client"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("notesync client", buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("notesync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notesync-client", logger.FileOptions{
		Path:       cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("version", buildInfo.Version()).
		Str("commit", buildInfo.Commit()).
		Msg("starting client")

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	factory := adapter.NewHTTPSyncClientFactory(cfg.Adapter, log)
	services := service.NewClientServices(storages, factory, *cfg, log)

	app, err := client.NewApp(services, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
