package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	started  int
	requests []recordedRequest
}

func (f *fakeRecorder) RequestStarted() { f.started++ }

func (f *fakeRecorder) RecordRequest(method, route string, statusCode int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, route, statusCode})
}

func TestMetricsMiddleware(t *testing.T) {
	rec := &fakeRecorder{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.Get("/cats/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cats/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dogs", nil))

	assert.Equal(t, 2, rec.started)
	assert.Equal(t, []recordedRequest{
		{http.MethodGet, "/cats/{id}", http.StatusNotFound},
		{http.MethodGet, "unmatched", http.StatusNotFound},
	}, rec.requests)
}
