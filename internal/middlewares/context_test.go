package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestActorFromContext(t *testing.T) {
	assert.Nil(t, ActorFromContext(context.Background()))

	actor := &models.Actor{ID: uuid.New(), Role: models.RoleUser}
	assert.Equal(t, actor, ActorFromContext(WithActor(context.Background(), actor)))
}

func TestDefaultLocationMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		location *models.Location
	}{
		{"Configured", models.NewPoint(24.93545, 60.16952)},
		{"NotConfigured", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *models.Location
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = LocationFromContext(r.Context())
			})

			DefaultLocationMiddleware(tt.location)(next).
				ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/cats", nil))

			assert.Equal(t, tt.location, seen)
		})
	}
}
