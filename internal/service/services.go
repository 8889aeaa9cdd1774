package service

import (
	"fmt"

	"github.com/MKhiriev/go-cpf-validator/internal/config"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/validators"
)

type Services struct {
	CPFService     CPFService
	AppInfoService AppInfoService
}

// NewServices assembles the service set. recorder may be nil, in which case
// validation outcomes are not counted.
func NewServices(cfg config.StructuredConfig, recorder ValidationRecorder, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cpfService := NewCPFService(validators.NewCPFValidator())
	if recorder != nil {
		cpfService = NewCPFMetricsService(recorder).Wrap(cpfService)
	}
	cpfService = NewCPFLoggingService(logger).Wrap(cpfService)

	return &Services{
		CPFService:     cpfService,
		AppInfoService: appInfoService,
	}, nil
}
