package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxBodyBytes   int64
	rateLimiter    *rateLimiter

	metricsPath    string
	metricsHandler http.Handler

	// recorder counts rejections made before the CPF service is reached.
	recorder service.ValidationRecorder

	logger *logger.Logger
}

// Option configures optional Handler behavior.
type Option func(*Handler)

// WithRequestTimeout cancels request contexts after d. Zero disables it.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

// WithMaxBodyBytes limits POST bodies to n bytes. Zero disables the limit.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		h.maxBodyBytes = n
	}
}

// WithRateLimit allows each client IP limit CPF requests per second with the
// given burst. A non-positive limit disables rate limiting.
func WithRateLimit(limit float64, burst int) Option {
	return func(h *Handler) {
		if limit <= 0 {
			h.rateLimiter = nil
			return
		}
		h.rateLimiter = newRateLimiter(rate.Limit(limit), burst)
	}
}

// WithMetrics mounts handler on GET path.
func WithMetrics(path string, handler http.Handler) Option {
	return func(h *Handler) {
		h.metricsPath = path
		h.metricsHandler = handler
	}
}

// WithValidationRecorder counts the outcomes the handler produces on its own:
// missing or malformed input, rate limiting and recovered panics.
func WithValidationRecorder(recorder service.ValidationRecorder) Option {
	return func(h *Handler) {
		h.recorder = recorder
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.rateLimiter != nil {
		h.rateLimiter.reject = h.reject
	}

	logger.Info().Msg("http handler created")
	return h
}
