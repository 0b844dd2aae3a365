package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cats-api/internal/models"
)

type actorKey struct{}

type locationKey struct{}

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the authenticated actor, or nil for anonymous requests.
func ActorFromContext(ctx context.Context) *models.Actor {
	actor, _ := ctx.Value(actorKey{}).(*models.Actor)
	return actor
}

// WithLocation stores the default cat location in the context.
func WithLocation(ctx context.Context, loc *models.Location) context.Context {
	return context.WithValue(ctx, locationKey{}, loc)
}

// LocationFromContext returns the default cat location, or nil when none is configured.
func LocationFromContext(ctx context.Context) *models.Location {
	loc, _ := ctx.Value(locationKey{}).(*models.Location)
	return loc
}

// DefaultLocationMiddleware supplies loc as the location of cats created without one.
// A nil loc leaves such cats without a location.
func DefaultLocationMiddleware(loc *models.Location) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if loc == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithLocation(r.Context(), loc)))
		})
	}
}
