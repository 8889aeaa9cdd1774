package validators

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-cpf-validator/internal/app"
	"github.com/MKhiriev/go-cpf-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// ── NormalizeCPF ──────────────────────────────────────────────────────────────

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "digits only", raw: "11144477735", want: "11144477735"},
		{name: "formatted", raw: "111.444.777-35", want: "11144477735"},
		{name: "spaces and slashes", raw: " 111 444/777 35 ", want: "11144477735"},
		{name: "letters are dropped", raw: "cpf: 111a444b777c35", want: "11144477735"},
		{name: "full-width digits are dropped", raw: "１１１44477735", want: "44477735"},
		{name: "empty", raw: "", want: ""},
		{name: "no digits", raw: "...-", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCPF(tt.raw))
		})
	}
}

// ── CheckDigit ────────────────────────────────────────────────────────────────

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		n      int
		want   int
	}{
		{name: "first digit of 111.444.777-35", digits: "11144477735", n: 9, want: 3},
		{name: "second digit of 111.444.777-35", digits: "11144477735", n: 10, want: 5},
		{name: "first digit of 529.982.247-25", digits: "52998224725", n: 9, want: 2},
		{name: "second digit of 529.982.247-25", digits: "52998224725", n: 10, want: 5},
		{name: "remainder below two gives zero", digits: "12345678909", n: 9, want: 0},
		{name: "second digit of 123.456.789-09", digits: "12345678909", n: 10, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckDigit(tt.digits, tt.n))
		})
	}
}

// ── FormatCPF / MaskCPF ───────────────────────────────────────────────────────

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatCPF("11144477735"))
	assert.Equal(t, "123", FormatCPF("123"), "wrong length must be returned unchanged")
}

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "***.***.*77-35", MaskCPF("111.444.777-35"))
	assert.Equal(t, "***", MaskCPF("1-2-3"))
	assert.Equal(t, "", MaskCPF(""))
}

// ── CPFValidator.Validate ─────────────────────────────────────────────────────

func TestCPFValidator_Validate(t *testing.T) {
	v := NewCPFValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   any
		fields  []string
		wantErr error
	}{
		{name: "valid plain", input: "11144477735"},
		{name: "valid formatted", input: "111.444.777-35"},
		{name: "valid pointer", input: strPtr("529.982.247-25")},
		{name: "valid request value", input: models.CPFRequest{CPF: "12345678909"}},
		{name: "valid request pointer", input: &models.CPFRequest{CPF: "123.456.789-09"}},
		{name: "too short", input: "1114447773", wantErr: ErrCPFWrongLength},
		{name: "too long", input: "111444777350", wantErr: ErrCPFWrongLength},
		{name: "empty", input: "", wantErr: ErrCPFWrongLength},
		{name: "repeated zeros", input: "000.000.000-00", wantErr: ErrCPFRepeatedDigits},
		{name: "first check digit", input: "11144477745", wantErr: ErrCPFFirstCheckDigitMismatch},
		{name: "second check digit", input: "11144477736", wantErr: ErrCPFSecondCheckDigitMismatch},
		{name: "number is invalid input", input: 11144477735, wantErr: ErrInvalidInput},
		{name: "float is invalid input", input: float64(11144477735), wantErr: ErrInvalidInput},
		{name: "nil is invalid input", input: nil, wantErr: ErrInvalidInput},
		{name: "nil string pointer", input: (*string)(nil), wantErr: ErrInvalidInput},
		{name: "nil request pointer", input: (*models.CPFRequest)(nil), wantErr: ErrInvalidInput},
		{name: "request with number", input: models.CPFRequest{CPF: 42.0}, wantErr: ErrInvalidInput},
		{name: "request with object", input: models.CPFRequest{CPF: map[string]any{"a": "b"}}, wantErr: ErrInvalidInput},
		{
			name:   "only length scoped accepts bad check digits",
			input:  "11144477700",
			fields: []string{FieldLength},
		},
		{
			name:    "check digit scoped on short input reports length",
			input:   "123",
			fields:  []string{FieldSecondCheckDigit},
			wantErr: ErrCPFWrongLength,
		},
		{
			name:   "repeated scoped on short input",
			input:  "12",
			fields: []string{FieldRepeatedDigits},
		},
		{
			name:    "unknown field",
			input:   "11144477735",
			fields:  []string{"checksum"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestCPFValidator_AllRepeatedDigits verifies that every one-digit sequence
// is rejected before the checksum runs.
func TestCPFValidator_AllRepeatedDigits(t *testing.T) {
	v := NewCPFValidator()
	for d := '0'; d <= '9'; d++ {
		raw := strings.Repeat(string(d), CPFLength)
		t.Run(raw, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(context.Background(), raw), ErrCPFRepeatedDigits)
		})
	}
}

// TestCPFValidator_WrongLengthBeforeRepeated verifies rule order: a short
// repeated sequence is a length error, not a repeated-digits error.
func TestCPFValidator_WrongLengthBeforeRepeated(t *testing.T) {
	err := NewCPFValidator().Validate(context.Background(), "1111111111")
	assert.ErrorIs(t, err, ErrCPFWrongLength)
}

// ── ValidateCPF ───────────────────────────────────────────────────────────────

func TestValidateCPF_Valid(t *testing.T) {
	res := ValidateCPF("11144477735")

	require.True(t, res.Valid)
	assert.Nil(t, res.Error)
	assert.Empty(t, res.Code)
	require.NotNil(t, res.Formatted)
	require.NotNil(t, res.DigitsOnly)
	assert.Equal(t, "111.444.777-35", *res.Formatted)
	assert.Equal(t, "11144477735", *res.DigitsOnly)
}

func TestValidateCPF_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantCode models.CPFErrorCode
		wantMsg  string
	}{
		{name: "wrong length", raw: "123", wantCode: models.CPFWrongLength, wantMsg: app.MsgCPFWrongLength},
		{name: "repeated", raw: "11111111111", wantCode: models.CPFRepeatedDigits, wantMsg: app.MsgCPFRepeatedDigits},
		{name: "first", raw: "11144477745", wantCode: models.CPFFirstCheckDigitMismatch, wantMsg: app.MsgCPFFirstCheckDigit},
		{name: "second", raw: "11144477736", wantCode: models.CPFSecondCheckDigitMismatch, wantMsg: app.MsgCPFSecondCheckDigit},
		{name: "non-string", raw: true, wantCode: models.CPFInvalidInput, wantMsg: app.MsgCPFInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateCPF(tt.raw)

			assert.False(t, res.Valid)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantMsg, res.ErrorMessage())
			assert.Nil(t, res.Formatted)
			assert.Nil(t, res.DigitsOnly)
		})
	}
}

// TestValidateCPF_PunctuationEquivalent verifies that formatted and plain
// inputs produce identical results.
func TestValidateCPF_PunctuationEquivalent(t *testing.T) {
	for _, pair := range [][2]string{
		{"111.444.777-35", "11144477735"},
		{"111.444.777-36", "11144477736"},
		{"529 982 247 25", "52998224725"},
		{"000.000.000-00", "00000000000"},
	} {
		assert.Equal(t, ValidateCPF(pair[1]), ValidateCPF(pair[0]), pair[0])
	}
}

// TestValidateCPF_Idempotent verifies that re-validating either output
// representation yields the same valid result.
func TestValidateCPF_Idempotent(t *testing.T) {
	first := ValidateCPF("529.982.247-25")
	require.True(t, first.Valid)

	assert.Equal(t, first, ValidateCPF(*first.DigitsOnly))
	assert.Equal(t, first, ValidateCPF(*first.Formatted))
}

func TestValidateCPF_WrongLengthForNonElevenDigitStrings(t *testing.T) {
	for n := 0; n <= 20; n++ {
		if n == CPFLength {
			continue
		}
		raw := strings.Repeat("7", n)
		res := ValidateCPF(raw)
		assert.False(t, res.Valid, raw)
		assert.Equal(t, models.CPFWrongLength, res.Code, raw)
	}
}

func TestValidateCPF_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := ValidateCPF("111.444.777-35")
			assert.True(t, res.Valid)
		}()
	}
	wg.Wait()
}

func TestResultFromError_UnknownErrorIsInternal(t *testing.T) {
	res := ResultFromError(assert.AnError)

	assert.False(t, res.Valid)
	assert.Equal(t, models.CPFInternalError, res.Code)
	assert.Equal(t, app.MsgInternalServerError, res.ErrorMessage())
}
