package handler

import (
	"net/http"

	"github.com/MKhiriev/go-cpf-validator/internal/config"
	myHTTP "github.com/MKhiriev/go-cpf-validator/internal/handler/http"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metricsHandler is
// mounted on cfg.Metrics.Path only when metrics are enabled and it is non-nil.
// recorder may be nil.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, metricsHandler http.Handler, recorder service.ValidationRecorder, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := []myHTTP.Option{
			myHTTP.WithRequestTimeout(cfg.Server.RequestTimeout),
			myHTTP.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
			myHTTP.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
			myHTTP.WithValidationRecorder(recorder),
		}
		if cfg.Metrics.Enabled && metricsHandler != nil {
			opts = append(opts, myHTTP.WithMetrics(cfg.Metrics.Path, metricsHandler))
		}
		handlers.HTTP = myHTTP.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
