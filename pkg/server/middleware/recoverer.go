package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sera-tools/sera-atlas/pkg/models/api"
)

// Recoverer converts handler panics into the JSON error envelope instead of
// a plain-text 500, keeping the error contract uniform across the API.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(req.Context()).Error().
				Interface("panic", rec).
				Str("path", req.URL.Path).
				Msg("handler panicked")

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{
				Success: false,
				Error:   "Rapor işlenirken bir hata oluştu",
			})
		}()

		next.ServeHTTP(w, req)
	})
}
