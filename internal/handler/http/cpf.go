package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cpf-validator/internal/app"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/utils"
	"github.com/MKhiriev/go-cpf-validator/models"
)

// validateCPFFromBody serves POST /validar-cpf with body {"cpf": "..."}.
func (h *Handler) validateCPFFromBody(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CPFRequest
	if err := decodeCPFRequest(r.Body, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")

		status := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
		}

		h.rejectStatus(w, r, models.NewInvalidCPFResult(models.CPFMalformedPayload, app.MsgInvalidRequestBody), status)
		return
	}

	if isMissingCPF(request.CPF) {
		log.Debug().Msg("no CPF in request body")
		h.reject(w, r, models.NewInvalidCPFResult(models.CPFMissingInput, app.MsgCPFMissingInBody))
		return
	}

	result := h.services.CPFService.ValidateCPF(r.Context(), request.CPF)
	writeResult(w, r, result)
}

// decodeCPFRequest decodes exactly one JSON value from body. Anything after
// it other than whitespace makes the payload malformed.
func decodeCPFRequest(body io.Reader, request *models.CPFRequest) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(request); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errTrailingData
	}
	return nil
}

// validateCPFFromQuery serves GET /validar-cpf-get?cpf=...
func (h *Handler) validateCPFFromQuery(w http.ResponseWriter, r *http.Request) {
	cpf := r.URL.Query().Get("cpf")
	if cpf == "" {
		logger.FromRequest(r).Debug().Msg("no CPF query parameter")
		h.reject(w, r, models.NewInvalidCPFResult(models.CPFMissingInput, app.MsgCPFMissingInQuery))
		return
	}

	result := h.services.CPFService.ValidateCPF(r.Context(), cpf)
	writeResult(w, r, result)
}

// isMissingCPF reports whether the decoded "cpf" value counts as absent:
// the key is missing, null, or an empty string.
func isMissingCPF(cpf any) bool {
	if cpf == nil {
		return true
	}
	s, ok := cpf.(string)
	return ok && s == ""
}

// writeResult is the single result-to-response mapping shared by both CPF
// endpoints and the middleware that answers on their behalf.
func writeResult(w http.ResponseWriter, r *http.Request, result models.CPFValidationResult) {
	writeResultStatus(w, r, result, statusFromResult(result))
}

// reject answers with a result the CPF service never produced, counting its
// outcome when a recorder is configured.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, result models.CPFValidationResult) {
	h.rejectStatus(w, r, result, statusFromResult(result))
}

func (h *Handler) rejectStatus(w http.ResponseWriter, r *http.Request, result models.CPFValidationResult, status int) {
	if h.recorder != nil {
		h.recorder.IncrementValidations(string(result.Code))
	}
	writeResultStatus(w, r, result, status)
}

func writeResultStatus(w http.ResponseWriter, r *http.Request, result models.CPFValidationResult, status int) {
	if _, err := utils.WriteJSON(w, result, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
