// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CPFErrorCode is a machine-readable reason attached to a rejected CPF
// validation. It is serialized into the "codigo_erro" response field.
type CPFErrorCode string

const (
	// CPFWrongLength — input does not reduce to exactly 11 digits.
	CPFWrongLength CPFErrorCode = "wrong_length"

	// CPFRepeatedDigits — all 11 digits are the same (e.g. "00000000000").
	CPFRepeatedDigits CPFErrorCode = "repeated_digits"

	// CPFFirstCheckDigitMismatch — the 10th digit does not match the
	// computed first check digit.
	CPFFirstCheckDigitMismatch CPFErrorCode = "first_check_digit_mismatch"

	// CPFSecondCheckDigitMismatch — the 11th digit does not match the
	// computed second check digit.
	CPFSecondCheckDigitMismatch CPFErrorCode = "second_check_digit_mismatch"

	// CPFMissingInput — no CPF was supplied at all.
	CPFMissingInput CPFErrorCode = "missing_input"

	// CPFInvalidInput — a CPF value was supplied but it is not a string.
	CPFInvalidInput CPFErrorCode = "invalid_input"

	// CPFMalformedPayload — the request body could not be decoded.
	CPFMalformedPayload CPFErrorCode = "malformed_payload"

	// CPFRateLimited: the client exceeded its request rate.
	CPFRateLimited CPFErrorCode = "rate_limited"

	// CPFInternalError — unexpected server-side failure.
	CPFInternalError CPFErrorCode = "internal_error"
)

// CPFRequest is the JSON body accepted by POST /validar-cpf.
//
// CPF is intentionally typed as any: a number or an object in place of the
// string must be reported as invalid input rather than as an unparsable body.
type CPFRequest struct {
	CPF any `json:"cpf"`
}

// CPFValidationResult is the outcome of validating a single CPF. Field names
// on the wire are Portuguese and must stay stable for existing clients.
//
// On success Error is nil and both Formatted and DigitsOnly are set.
// On failure Error and Code are set, Formatted is serialized as null and
// DigitsOnly is omitted.
type CPFValidationResult struct {
	Valid      bool         `json:"valido"`
	Error      *string      `json:"erro"`
	Code       CPFErrorCode `json:"codigo_erro,omitempty"`
	Formatted  *string      `json:"cpf_formatado"`
	DigitsOnly *string      `json:"cpf_apenas_numeros,omitempty"`
}

// NewValidCPFResult builds a successful result from the formatted and
// digits-only representations of a CPF.
func NewValidCPFResult(formatted, digitsOnly string) CPFValidationResult {
	return CPFValidationResult{
		Valid:      true,
		Formatted:  &formatted,
		DigitsOnly: &digitsOnly,
	}
}

// NewInvalidCPFResult builds a rejected result carrying both the
// machine-readable code and the human-readable message.
func NewInvalidCPFResult(code CPFErrorCode, message string) CPFValidationResult {
	return CPFValidationResult{
		Valid: false,
		Error: &message,
		Code:  code,
	}
}

// ErrorMessage returns the human-readable error or an empty string when the
// result is valid.
func (r CPFValidationResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
