package service

import (
	"context"

	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/validators"
	"github.com/MKhiriev/go-cpf-validator/models"
)

type CPFLoggingService struct {
	inner  CPFService
	logger *logger.Logger
}

func NewCPFLoggingService(logger *logger.Logger) CPFServiceWrapper {
	return &CPFLoggingService{
		logger: logger,
	}
}

// ValidateCPF delegates to the wrapped service and logs the outcome. The CPF
// itself is only ever logged masked.
func (s *CPFLoggingService) ValidateCPF(ctx context.Context, raw any) models.CPFValidationResult {
	log := logger.FromContextOr(ctx, s.logger)

	result := s.inner.ValidateCPF(ctx, raw)

	masked := "<non-string>"
	if str, ok := raw.(string); ok {
		masked = validators.MaskCPF(str)
	}

	if result.Valid {
		log.Debug().Str("cpf", masked).Msg("CPF accepted")
		return result
	}

	log.Info().
		Str("cpf", masked).
		Str("code", string(result.Code)).
		Msg("CPF rejected")

	return result
}

func (s *CPFLoggingService) Wrap(wrapped CPFService) CPFService {
	s.inner = wrapped
	return s
}
