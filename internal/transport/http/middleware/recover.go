package middleware

import (
	"log/slog"
	"net/http"

	"hris/internal/transport/http/api"
)

// Recoverer turns handler panics into 500 responses instead of dropping
// the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				slog.Error("handler panic", "path", r.URL.Path, "panic", recovered, "requestId", GetRequestID(r.Context()))
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
