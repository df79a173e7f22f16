package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout cancels the request context after timeout. When the handler
// returns without having written a response and the deadline has passed, a
// 504 error body is written. A response that already went out is left alone.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(rw, r, context.DeadlineExceeded)
			}
		})
	}
}
