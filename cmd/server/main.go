package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/MKhiriev/go-cpf-validator/internal/config"
	"github.com/MKhiriev/go-cpf-validator/internal/handler"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/metrics"
	"github.com/MKhiriev/go-cpf-validator/internal/server"
	"github.com/MKhiriev/go-cpf-validator/internal/service"
	"github.com/MKhiriev/go-cpf-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("cpf-validator")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a linker-injected version wins over the built-in default
	if cfg.App.Version == config.DefaultVersion && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var (
		recorder       service.ValidationRecorder
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		m := metrics.New()
		recorder = m
		metricsHandler = m.Handler()
	}

	services, err := service.NewServices(*cfg, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, metricsHandler, recorder, log)
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
