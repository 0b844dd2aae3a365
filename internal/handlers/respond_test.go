package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/services"
	"github.com/sbilibin2017/cats-api/internal/validation"
	"github.com/stretchr/testify/assert"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withActor(r *http.Request, actor *models.Actor) *http.Request {
	return r.WithContext(middlewares.WithActor(r.Context(), actor))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"NotFound", &services.Error{Kind: services.ErrNotFound, Message: "Cat not found"}, http.StatusNotFound, "Cat not found"},
		{"Forbidden", &services.Error{Kind: services.ErrForbidden, Message: "Admin only"}, http.StatusForbidden, "Admin only"},
		{"Unauthorized", &services.Error{Kind: services.ErrUnauthorized, Message: "Unauthorized"}, http.StatusUnauthorized, "Unauthorized"},
		{"InvalidInput", &services.Error{Kind: services.ErrInvalidInput, Message: "bad corner"}, http.StatusBadRequest, "bad corner"},
		{"Validation", &services.Error{Kind: services.ErrValidation, Message: "user_name or email already exists"}, http.StatusBadRequest, "user_name or email already exists"},
		{"Wrapped", fmt.Errorf("get: %w", &services.Error{Kind: services.ErrNotFound, Message: "User not found"}), http.StatusNotFound, "User not found"},
		{"RequestValidation", &validation.Error{Fields: []validation.FieldError{{Field: "cat_name", Tag: "required"}}}, http.StatusBadRequest, "cat_name is required"},
		{"UnknownKind", &services.Error{Kind: errors.New("other"), Message: "secret detail"}, http.StatusInternalServerError, "Internal server error"},
		{"StoreError", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, map[string]any{"message": tt.expectedMessage}, decodeBody(t, rr))
		})
	}
}

func TestIndexHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewIndexHandler()(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "routes: auth, user, cat"}, decodeBody(t, rr))
}
