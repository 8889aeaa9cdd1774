package service

import (
	"context"

	"github.com/MKhiriev/go-cpf-validator/internal/metrics"
	"github.com/MKhiriev/go-cpf-validator/models"
)

type CPFMetricsService struct {
	inner    CPFService
	recorder ValidationRecorder
}

func NewCPFMetricsService(recorder ValidationRecorder) CPFServiceWrapper {
	return &CPFMetricsService{
		recorder: recorder,
	}
}

// ValidateCPF delegates to the wrapped service and counts the outcome.
func (s *CPFMetricsService) ValidateCPF(ctx context.Context, raw any) models.CPFValidationResult {
	result := s.inner.ValidateCPF(ctx, raw)

	outcome := metrics.OutcomeValid
	if !result.Valid {
		outcome = string(result.Code)
	}
	s.recorder.IncrementValidations(outcome)

	return result
}

func (s *CPFMetricsService) Wrap(wrapped CPFService) CPFService {
	s.inner = wrapped
	return s
}
