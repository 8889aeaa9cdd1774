package validators

import "errors"

var (
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrInvalidInput is returned when the value handed to the CPF validator
	// is not a string (or a request carrying a string).
	ErrInvalidInput = errors.New("invalid input: CPF must be a string")

	ErrCPFWrongLength              = errors.New("CPF must contain 11 digits")
	ErrCPFRepeatedDigits           = errors.New("CPF digits must not all be equal")
	ErrCPFFirstCheckDigitMismatch  = errors.New("CPF first check digit mismatch")
	ErrCPFSecondCheckDigitMismatch = errors.New("CPF second check digit mismatch")
)
