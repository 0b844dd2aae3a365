package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/services"
	"github.com/sbilibin2017/cats-api/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps service errors to status codes. Unclassified errors are logged
// and reported as 500 without details.
func writeError(w http.ResponseWriter, err error) {
	var svcErr *services.Error
	var valErr *validation.Error

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.As(err, &valErr):
		status, message = http.StatusBadRequest, valErr.Error()
	case errors.As(err, &svcErr):
		message = svcErr.Message
		switch {
		case errors.Is(err, services.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, services.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, services.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrValidation):
			status = http.StatusBadRequest
		default:
			message = "Internal server error"
		}
	}

	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
	}
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

// decodeAndValidate reads a JSON body into dst and validates it.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &validation.Error{Fields: []validation.FieldError{{Field: "body", Tag: "json"}}}
	}
	return validation.Struct(dst)
}

// pathID parses the {id} URL parameter. A malformed id cannot match any record.
func pathID(r *http.Request, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &services.Error{Kind: services.ErrNotFound, Message: notFound}
	}
	return id, nil
}
