package http

import (
	"net/http"

	"github.com/MKhiriev/go-cpf-validator/models"
)

var codeStatusMap = map[models.CPFErrorCode]int{
	models.CPFWrongLength:              http.StatusBadRequest,
	models.CPFRepeatedDigits:           http.StatusBadRequest,
	models.CPFFirstCheckDigitMismatch:  http.StatusBadRequest,
	models.CPFSecondCheckDigitMismatch: http.StatusBadRequest,
	models.CPFMissingInput:             http.StatusBadRequest,
	models.CPFInvalidInput:             http.StatusBadRequest,
	models.CPFMalformedPayload:         http.StatusBadRequest,
	models.CPFRateLimited:              http.StatusTooManyRequests,
	models.CPFInternalError:            http.StatusInternalServerError,
}

func statusFromResult(result models.CPFValidationResult) int {
	if result.Valid {
		return http.StatusOK
	}
	if status, ok := codeStatusMap[result.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
