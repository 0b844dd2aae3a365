package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// CatService is everything the cat routes need.
type CatService interface {
	CatLister
	CatGetter
	CatOwnerLister
	CatAreaFinder
	CatCreator
	CatUpdater
	CatAdminUpdater
	CatDeleter
	CatAdminDeleter
}

// UserService is everything the user and auth routes need.
type UserService interface {
	UserLister
	UserGetter
	UserCreator
	CurrentUserUpdater
	CurrentUserDeleter
	TokenChecker
	Loginer
}

// RouterConfig wires services and middlewares into the router.
type RouterConfig struct {
	Cats    CatService
	Users   UserService
	Tokener middlewares.Tokener

	// Tx wraps multi-statement routes in a transaction. Nil runs them without one.
	Tx func(http.Handler) http.Handler

	Recorder        middlewares.RequestRecorder // nil disables request metrics
	MetricsHandler  http.Handler                // served on /metrics when set
	DefaultLocation *models.Location

	AllowedOrigins    []string
	RateLimitRequests int // zero disables rate limiting
	RateLimitWindow   time.Duration

	SwaggerURL string
}

// NewRouter builds the HTTP router. API routes are mounted under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	if cfg.Recorder != nil {
		r.Use(middlewares.MetricsMiddleware(cfg.Recorder))
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RateLimitRequests > 0 {
		r.Use(httprate.Limit(
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Message: "Too many requests"})
			}),
		))
	}

	tx := cfg.Tx
	if tx == nil {
		tx = func(next http.Handler) http.Handler { return next }
	}
	auth := middlewares.AuthMiddleware(cfg.Tokener)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", NewIndexHandler())
		r.Post("/auth/login", NewLoginHandler(cfg.Users))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", NewListUsersHandler(cfg.Users))
			r.Post("/", NewCreateUserHandler(cfg.Users))
			r.With(auth).Put("/", NewUpdateCurrentUserHandler(cfg.Users))
			r.With(auth, tx).Delete("/", NewDeleteCurrentUserHandler(cfg.Users))
			r.With(auth).Get("/token", NewCheckTokenHandler(cfg.Users))
			r.Get("/{id}", NewGetUserHandler(cfg.Users))
		})

		r.Route("/cats", func(r chi.Router) {
			r.Get("/", NewListCatsHandler(cfg.Cats))
			r.With(auth, middlewares.DefaultLocationMiddleware(cfg.DefaultLocation)).
				Post("/", NewCreateCatHandler(cfg.Cats))
			r.Get("/area", NewListCatsInAreaHandler(cfg.Cats))
			r.With(auth).Get("/user", NewListOwnCatsHandler(cfg.Cats))
			r.Get("/{id}", NewGetCatHandler(cfg.Cats))

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Put("/{id}", NewUpdateCatHandler(cfg.Cats))
				r.Delete("/{id}", NewDeleteCatHandler(cfg.Cats))
				r.Put("/admin/{id}", NewAdminUpdateCatHandler(cfg.Cats))
				r.Delete("/admin/{id}", NewAdminDeleteCatHandler(cfg.Cats))
			})
		})
	})

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}
	if cfg.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))
	}

	return r
}
