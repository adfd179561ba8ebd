package middleware

import (
	"log/slog"
	"net/http"
	"runtime"

	"fyyur/internal/delivery/http/helpers"
)

// Recover turns a handler panic into a 500 envelope and logs the stack.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path,
				"method", r.Method,
				"request_id", RequestIDFromContext(r.Context()),
				"panic", rec,
				"stack", string(stack),
			)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
