package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, h.withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		if h.rateLimiter != nil {
			r.Use(h.rateLimiter.limit)
		}

		body := r.With()
		if h.maxBodyBytes > 0 {
			body = r.With(middleware.RequestSize(h.maxBodyBytes))
		}
		body.Post("/validar-cpf", h.validateCPFFromBody)

		r.Get("/validar-cpf-get", h.validateCPFFromQuery)
	})

	router.Get("/api/version/", h.getServerVersion)

	if h.metricsHandler != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metricsHandler)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
