package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestRecorder receives per-request measurements.
type RequestRecorder interface {
	RequestStarted()
	RecordRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware reports every request to recorder, labelled by the matched chi route.
func MetricsMiddleware(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder.RequestStarted()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			recorder.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
