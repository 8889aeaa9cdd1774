package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-cpf-validator/models"
)

// CPFLength is the number of digits in a normalized CPF.
const CPFLength = 11

// Field name constants select which CPF rules Validate runs. Rules run in
// the order given; when no fields are passed every rule runs in the order of
// the checksum algorithm.
const (
	// FieldLength requires exactly CPFLength digits after normalization.
	FieldLength = "length"

	// FieldRepeatedDigits rejects inputs made of one repeated digit.
	FieldRepeatedDigits = "repeated_digits"

	// FieldFirstCheckDigit verifies the 10th digit.
	FieldFirstCheckDigit = "first_check_digit"

	// FieldSecondCheckDigit verifies the 11th digit.
	FieldSecondCheckDigit = "second_check_digit"
)

var defaultCPFFields = []string{
	FieldLength,
	FieldRepeatedDigits,
	FieldFirstCheckDigit,
	FieldSecondCheckDigit,
}

// \D is ASCII-only in RE2, so full-width and other Unicode digits are
// stripped along with punctuation.
var nonDigitRegex = regexp.MustCompile(`\D`)

// CPFValidator implements Validator for Brazilian CPF numbers.
//
// Accepted inputs: string, *string, models.CPFRequest and
// *models.CPFRequest (whose CPF field must hold a string). Anything else
// yields ErrInvalidInput.
type CPFValidator struct {
}

// NewCPFValidator constructs a new CPFValidator and returns it as the
// Validator interface.
func NewCPFValidator() Validator {
	return &CPFValidator{}
}

// Validate normalizes obj and runs the selected CPF rules, returning the first
// failure as one of the ErrCPF* sentinels.
func (v *CPFValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	digits, err := CPFDigits(obj)
	if err != nil {
		return err
	}

	return v.validateDigits(ctx, digits, fields...)
}

func (v *CPFValidator) validateDigits(_ context.Context, digits string, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCPFFields
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if len(digits) != CPFLength {
				return ErrCPFWrongLength
			}
		case FieldRepeatedDigits:
			if digits != "" && strings.Count(digits, digits[:1]) == len(digits) {
				return ErrCPFRepeatedDigits
			}
		case FieldFirstCheckDigit:
			if len(digits) != CPFLength {
				return ErrCPFWrongLength
			}
			if CheckDigit(digits, 9) != int(digits[9]-'0') {
				return ErrCPFFirstCheckDigitMismatch
			}
		case FieldSecondCheckDigit:
			if len(digits) != CPFLength {
				return ErrCPFWrongLength
			}
			if CheckDigit(digits, 10) != int(digits[10]-'0') {
				return ErrCPFSecondCheckDigitMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// cpfString extracts the raw CPF string from the supported input types.
func cpfString(obj any) (string, error) {
	switch value := obj.(type) {
	case string:
		return value, nil
	case *string:
		if value == nil {
			return "", ErrInvalidInput
		}
		return *value, nil
	case models.CPFRequest:
		return cpfString(value.CPF)
	case *models.CPFRequest:
		if value == nil {
			return "", ErrInvalidInput
		}
		return cpfString(value.CPF)
	default:
		return "", ErrInvalidInput
	}
}

// CPFDigits extracts the raw CPF from obj and returns its normalized digits.
// It does not validate them; see Validate.
func CPFDigits(obj any) (string, error) {
	raw, err := cpfString(obj)
	if err != nil {
		return "", err
	}
	return NormalizeCPF(raw), nil
}

// NormalizeCPF strips every character that is not an ASCII decimal digit.
func NormalizeCPF(raw string) string {
	return nonDigitRegex.ReplaceAllString(raw, "")
}

// CheckDigit computes the check digit over the first n digits of a normalized
// CPF, weighting digit i by n+1-i. n is 9 for the first check digit and 10
// for the second. digits must hold at least n ASCII digits.
func CheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// FormatCPF renders 11 normalized digits as DDD.DDD.DDD-DD. Input of any
// other length is returned unchanged.
func FormatCPF(digits string) string {
	if len(digits) != CPFLength {
		return digits
	}

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// MaskCPF hides all but the last four digits of a CPF so it can be logged.
// Inputs that do not normalize to 11 digits are fully masked.
func MaskCPF(raw string) string {
	digits := NormalizeCPF(raw)
	if len(digits) != CPFLength {
		return strings.Repeat("*", len(digits))
	}

	return "***.***.*" + digits[7:9] + "-" + digits[9:11]
}
