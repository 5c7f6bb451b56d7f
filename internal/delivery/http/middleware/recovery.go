package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"invitationtracker/internal/delivery/http/helpers"
)

// Recovery turns a panic in next into a 500 JSON error so it never crosses the request boundary.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path, "method", r.Method, "panic", rec, "stack", string(debug.Stack()))
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
