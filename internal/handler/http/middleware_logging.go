package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/internal/validators"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. The cpf query
// parameter is masked so raw document numbers never reach the logs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := maskedRequestURI(r)
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		level := zerolog.InfoLevel
		if lw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.WithLevel(level).
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func maskedRequestURI(r *http.Request) string {
	query := r.URL.Query()
	cpf, ok := query["cpf"]
	if !ok {
		return r.RequestURI
	}

	for i, v := range cpf {
		cpf[i] = validators.MaskCPF(v)
	}
	query["cpf"] = cpf

	return r.URL.Path + "?" + query.Encode()
}
