package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-cpf-validator/internal/app"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/models"
)

// withRecover turns a handler panic into a 500 response with the usual
// result body. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.reject(w, r, models.NewInvalidCPFResult(models.CPFInternalError, app.MsgInternalServerError))
		}()

		next.ServeHTTP(w, r)
	})
}
