package handlers

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/models"
)

// UserLister lists users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserOutput, error)
}

// UserGetter fetches a single user.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.UserOutput, error)
}

// UserCreator registers users.
type UserCreator interface {
	Create(ctx context.Context, input models.UserInput) (models.UserOutput, error)
}

// CurrentUserUpdater updates the authenticated user.
type CurrentUserUpdater interface {
	UpdateCurrent(ctx context.Context, actor *models.Actor, input models.UserUpdate) (models.UserOutput, error)
}

// CurrentUserDeleter deletes the authenticated user.
type CurrentUserDeleter interface {
	DeleteCurrent(ctx context.Context, actor *models.Actor) (models.UserOutput, error)
}

// TokenChecker projects the authenticated user.
type TokenChecker interface {
	CheckToken(ctx context.Context, actor *models.Actor) (models.UserOutput, error)
}

// CreateUserRequest represents the JSON body for user registration
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// default: john_doe
	UserName string `json:"user_name" validate:"required,min=3"`

	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=4"`
}

// UpdateUserRequest represents the JSON body for a self update. Omitted fields are kept.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags user
// @Produce json
// @Success 200 {array} models.UserOutput
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by id.
// @Summary Get user
// @Tags user
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserOutput
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "User not found")
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewCreateUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with the user role. Password is hashed before storing.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User registration request"
// @Success 201 {object} models.UserMessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request or user_name/email already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Create(r.Context(), models.UserInput{
			UserName: req.UserName,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.UserMessageResponse{Message: "User created", Data: user})
	}
}

// NewUpdateCurrentUserHandler returns an HTTP handler updating the authenticated user.
// @Summary Update current user
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users [put]
func NewUpdateCurrentUserHandler(svc CurrentUserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		user, err := svc.UpdateCurrent(r.Context(), actor, models.UserUpdate{
			UserName: req.UserName,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.UserMessageResponse{Message: "User updated", Data: user})
	}
}

// NewDeleteCurrentUserHandler returns an HTTP handler deleting the authenticated user and their cats.
// @Summary Delete current user
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserMessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users [delete]
func NewDeleteCurrentUserHandler(svc CurrentUserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.DeleteCurrent(r.Context(), middlewares.ActorFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.UserMessageResponse{Message: "User deleted", Data: user})
	}
}

// NewCheckTokenHandler returns an HTTP handler echoing the user behind the bearer token.
// @Summary Check token
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserOutput
// @Failure 401 {object} models.ErrorResponse
// @Router /users/token [get]
func NewCheckTokenHandler(svc TokenChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.CheckToken(r.Context(), middlewares.ActorFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
