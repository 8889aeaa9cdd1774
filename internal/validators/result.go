package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cpf-validator/internal/app"
	"github.com/MKhiriev/go-cpf-validator/models"
)

type cpfRejection struct {
	code    models.CPFErrorCode
	message string
}

var cpfRejections = map[error]cpfRejection{
	ErrCPFWrongLength:              {models.CPFWrongLength, app.MsgCPFWrongLength},
	ErrCPFRepeatedDigits:           {models.CPFRepeatedDigits, app.MsgCPFRepeatedDigits},
	ErrCPFFirstCheckDigitMismatch:  {models.CPFFirstCheckDigitMismatch, app.MsgCPFFirstCheckDigit},
	ErrCPFSecondCheckDigitMismatch: {models.CPFSecondCheckDigitMismatch, app.MsgCPFSecondCheckDigit},
	ErrInvalidInput:                {models.CPFInvalidInput, app.MsgCPFInvalidInput},
}

var defaultValidator = NewCPFValidator()

// ValidateCPF runs the full CPF checksum over raw and returns the outcome as
// data. It never panics and never returns an error: every failure, including
// a non-string raw value, becomes a rejected result.
func ValidateCPF(raw any) models.CPFValidationResult {
	if err := defaultValidator.Validate(context.Background(), raw); err != nil {
		return ResultFromError(err)
	}

	return ValidResult(raw)
}

// ValidResult builds the accepted result for raw. It is meant to be called
// after Validate succeeded; if raw carries no string it degrades to the
// invalid-input rejection.
func ValidResult(raw any) models.CPFValidationResult {
	digits, err := CPFDigits(raw)
	if err != nil {
		return ResultFromError(err)
	}

	return models.NewValidCPFResult(FormatCPF(digits), digits)
}

// ResultFromError maps a validator error to a rejected result. Errors that
// are not produced by this package map to an internal error.
func ResultFromError(err error) models.CPFValidationResult {
	for target, rejection := range cpfRejections {
		if errors.Is(err, target) {
			return models.NewInvalidCPFResult(rejection.code, rejection.message)
		}
	}

	return models.NewInvalidCPFResult(models.CPFInternalError, app.MsgInternalServerError)
}
