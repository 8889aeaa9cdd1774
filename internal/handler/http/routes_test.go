package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/service"
	"github.com/MKhiriev/go-cpf-validator/internal/validators"
	"github.com/MKhiriev/go-cpf-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Stub: CPFService backed by the real validator ----

type stubCPFSvc struct{}

func (s *stubCPFSvc) ValidateCPF(_ context.Context, raw any) models.CPFValidationResult {
	return validators.ValidateCPF(raw)
}

// ---- Helper ----

func newTestRouter(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		CPFService:     &stubCPFSvc{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop(), opts...)
	return h.Init()
}

// ---- Registered routes ----

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/validar-cpf", `{"cpf":"11144477735"}`},
		{http.MethodGet, "/validar-cpf-get?cpf=11144477735", ""},
		{http.MethodGet, "/api/version/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/nonexistent", "/validar", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/validar-cpf"},
		{http.MethodPut, "/validar-cpf"},
		{http.MethodPost, "/validar-cpf-get"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Trace ID is set on every response ----

func TestInit_SetsTraceID(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/validar-cpf-get?cpf=1", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ---- Metrics route ----

func TestInit_MetricsRouteMountedWhenConfigured(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("cpf_validations_total 1"))
	})
	router := newTestRouter(t, WithMetrics("/internal/metrics", metrics))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cpf_validations_total")
}

// ---- Body size limit ----

func TestInit_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, WithMaxBodyBytes(16))

	body := `{"cpf":"` + strings.Repeat("1", 64) + `"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/validar-cpf", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), `"codigo_erro":"malformed_payload"`)
}

func TestInit_BodyWithinLimit(t *testing.T) {
	router := newTestRouter(t, WithMaxBodyBytes(64))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/validar-cpf", strings.NewReader(`{"cpf":"111.444.777-35"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- GET and POST share one response mapping ----

func TestInit_GetAndPostProduceSameBody(t *testing.T) {
	router := newTestRouter(t)

	for _, cpf := range []string{"11144477735", "11144477736", "00000000000", "123"} {
		t.Run(cpf, func(t *testing.T) {
			post := httptest.NewRecorder()
			router.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/validar-cpf", strings.NewReader(`{"cpf":"`+cpf+`"}`)))

			get := httptest.NewRecorder()
			router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/validar-cpf-get?cpf="+cpf, nil))

			assert.Equal(t, post.Code, get.Code)
			assert.JSONEq(t, post.Body.String(), get.Body.String())
		})
	}
}
