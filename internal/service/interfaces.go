//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-cpf-validator/models"
)

// CPFService validates CPF numbers on behalf of the transport layer.
type CPFService interface {
	// ValidateCPF validates raw and returns the outcome as data. raw is
	// usually a string; any other value is reported as invalid input.
	ValidateCPF(ctx context.Context, raw any) models.CPFValidationResult
}

// AppInfoService reports static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CPFServiceWrapper defines middleware composition for CPFService.
// Implementations wrap an existing CPFService to add behavior such as
// logging or metrics.
type CPFServiceWrapper interface {
	Wrap(CPFService) CPFService // returns a decorated CPFService applying additional behavior
}

// ValidationRecorder counts validation outcomes. It is satisfied by
// *metrics.Metrics.
type ValidationRecorder interface {
	IncrementValidations(outcome string)
}
