package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// internalErrorBody matches the {"error": ...} shape of the REST handlers.
const internalErrorBody = `{"error":"internal error"}` + "\n"

// Recovery answers a panicking handler with a JSON 500 and logs the panic
// with its request id and stack. http.ErrAbortHandler is re-raised so the
// server can drop the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.ErrorContext(r.Context(), "handler panic",
					slog.Any("panic", v),
					slog.String("request_id", RequestIDFromCtx(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("query", r.URL.RawQuery),
					slog.String("stack", string(debug.Stack())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, internalErrorBody)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
