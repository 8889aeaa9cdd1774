package service

import (
	"context"

	"github.com/MKhiriev/go-cpf-validator/internal/validators"
	"github.com/MKhiriev/go-cpf-validator/models"
)

type cpfService struct {
	validator validators.Validator
}

// NewCPFService returns the core CPFService backed by validator.
func NewCPFService(validator validators.Validator) CPFService {
	return &cpfService{
		validator: validator,
	}
}

func (s *cpfService) ValidateCPF(ctx context.Context, raw any) models.CPFValidationResult {
	if err := s.validator.Validate(ctx, raw); err != nil {
		return validators.ResultFromError(err)
	}

	return validators.ValidResult(raw)
}
