package handlers

import (
	"net/http"

	"github.com/sbilibin2017/cats-api/internal/models"
)

// NewIndexHandler returns an HTTP handler listing the API route groups.
// @Summary Route index
// @Tags index
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "routes: auth, user, cat"})
	}
}
