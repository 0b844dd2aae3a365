package handlers

//go:generate mockgen -source=cat.go -destination=mock_cat.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/models"
)

// CatLister lists every cat.
type CatLister interface {
	List(ctx context.Context) ([]*models.Cat, error)
}

// CatGetter fetches a single cat.
type CatGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Cat, error)
}

// CatOwnerLister lists the cats of the authenticated user.
type CatOwnerLister interface {
	ListByOwner(ctx context.Context, actor *models.Actor) ([]*models.Cat, error)
}

// CatAreaFinder lists the cats inside a bounding box.
type CatAreaFinder interface {
	ListByBoundingBox(ctx context.Context, topRight, bottomLeft string) ([]*models.Cat, error)
}

// CatCreator creates cats.
type CatCreator interface {
	Create(ctx context.Context, actor *models.Actor, input models.CatInput, defaultLocation *models.Location) (*models.Cat, error)
}

// CatUpdater updates cats on behalf of their owner.
type CatUpdater interface {
	Update(ctx context.Context, actor *models.Actor, id uuid.UUID, input models.CatUpdate) (*models.Cat, error)
}

// CatAdminUpdater updates any cat, including its owner.
type CatAdminUpdater interface {
	UpdateAsAdmin(ctx context.Context, actor *models.Actor, id uuid.UUID, input models.CatUpdate) (*models.Cat, error)
}

// CatDeleter deletes cats on behalf of their owner.
type CatDeleter interface {
	Delete(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Cat, error)
}

// CatAdminDeleter deletes any cat.
type CatAdminDeleter interface {
	DeleteAsAdmin(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Cat, error)
}

// CreateCatRequest represents the JSON body for creating a cat.
// An owner in the body is ignored, the cat always belongs to the caller.
// swagger:model CreateCatRequest
type CreateCatRequest struct {
	// required: true
	// default: Tom
	CatName string `json:"cat_name" validate:"required"`

	// default: 4.2
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`

	// default: tom.jpg
	Filename *string `json:"filename,omitempty"`

	// default: 2020-01-01T00:00:00Z
	Birthdate *time.Time `json:"birthdate,omitempty" validate:"omitempty,lte"`

	Location *models.Location `json:"location,omitempty"`

	Owner *uuid.UUID `json:"owner,omitempty"`
}

// UpdateCatRequest represents the JSON body for updating a cat. Omitted fields are kept.
// owner is honoured only for admins.
// swagger:model UpdateCatRequest
type UpdateCatRequest struct {
	CatName   *string          `json:"cat_name,omitempty" validate:"omitempty,min=1"`
	Weight    *float64         `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Filename  *string          `json:"filename,omitempty"`
	Birthdate *time.Time       `json:"birthdate,omitempty" validate:"omitempty,lte"`
	Location  *models.Location `json:"location,omitempty"`
	Owner     *uuid.UUID       `json:"owner,omitempty"`
}

func (req *UpdateCatRequest) input() models.CatUpdate {
	return models.CatUpdate{
		CatName:   req.CatName,
		Weight:    req.Weight,
		Filename:  req.Filename,
		Birthdate: req.Birthdate,
		Location:  req.Location,
		Owner:     req.Owner,
	}
}

// NewListCatsHandler returns an HTTP handler listing every cat.
// @Summary List cats
// @Tags cat
// @Produce json
// @Success 200 {array} models.Cat
// @Router /cats [get]
func NewListCatsHandler(svc CatLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cats)
	}
}

// NewGetCatHandler returns an HTTP handler fetching a cat by id.
// @Summary Get cat
// @Tags cat
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} models.Cat
// @Failure 404 {object} models.ErrorResponse
// @Router /cats/{id} [get]
func NewGetCatHandler(svc CatGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "Cat not found")
		if err != nil {
			writeError(w, err)
			return
		}

		cat, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cat)
	}
}

// NewListOwnCatsHandler returns an HTTP handler listing the caller's cats.
// @Summary List my cats
// @Tags cat
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Cat
// @Failure 401 {object} models.ErrorResponse
// @Router /cats/user [get]
func NewListOwnCatsHandler(svc CatOwnerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.ListByOwner(r.Context(), middlewares.ActorFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cats)
	}
}

// NewListCatsInAreaHandler returns an HTTP handler listing cats inside a bounding box.
// @Summary List cats in area
// @Description Corners are given as "lat,lng". Cats on the boundary are included.
// @Tags cat
// @Produce json
// @Param topRight query string true "Top right corner" default(61,25)
// @Param bottomLeft query string true "Bottom left corner" default(60,24)
// @Success 200 {array} models.Cat
// @Failure 400 {object} models.ErrorResponse
// @Router /cats/area [get]
func NewListCatsInAreaHandler(svc CatAreaFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cats, err := svc.ListByBoundingBox(r.Context(), q.Get("topRight"), q.Get("bottomLeft"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cats)
	}
}

// NewCreateCatHandler returns an HTTP handler creating a cat owned by the caller.
// @Summary Create cat
// @Tags cat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body handlers.CreateCatRequest true "Cat"
// @Success 201 {object} models.CatMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /cats [post]
func NewCreateCatHandler(svc CatCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCatRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}

		ctx := r.Context()
		cat, err := svc.Create(ctx, middlewares.ActorFromContext(ctx), models.CatInput{
			CatName:   req.CatName,
			Weight:    req.Weight,
			Filename:  req.Filename,
			Birthdate: req.Birthdate,
			Location:  req.Location,
			Owner:     req.Owner,
		}, middlewares.LocationFromContext(ctx))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.CatMessageResponse{Message: "Cat created", Data: cat})
	}
}

// NewUpdateCatHandler returns an HTTP handler updating a cat owned by the caller.
// @Summary Update cat
// @Tags cat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cat ID"
// @Param request body handlers.UpdateCatRequest true "Fields to change"
// @Success 200 {object} models.CatMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cats/{id} [put]
func NewUpdateCatHandler(svc CatUpdater) http.HandlerFunc {
	return newUpdateCatHandler(svc.Update)
}

// NewAdminUpdateCatHandler returns an HTTP handler updating any cat, including its owner.
// @Summary Update cat as admin
// @Tags cat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cat ID"
// @Param request body handlers.UpdateCatRequest true "Fields to change"
// @Success 200 {object} models.CatMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cats/admin/{id} [put]
func NewAdminUpdateCatHandler(svc CatAdminUpdater) http.HandlerFunc {
	return newUpdateCatHandler(svc.UpdateAsAdmin)
}

type updateCatFunc func(ctx context.Context, actor *models.Actor, id uuid.UUID, input models.CatUpdate) (*models.Cat, error)

func newUpdateCatHandler(update updateCatFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "Cat not found")
		if err != nil {
			writeError(w, err)
			return
		}

		var req UpdateCatRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}

		cat, err := update(r.Context(), middlewares.ActorFromContext(r.Context()), id, req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CatMessageResponse{Message: "Cat updated", Data: cat})
	}
}

// NewDeleteCatHandler returns an HTTP handler deleting a cat owned by the caller.
// @Summary Delete cat
// @Description Cats owned by someone else are reported as not found.
// @Tags cat
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} models.CatMessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cats/{id} [delete]
func NewDeleteCatHandler(svc CatDeleter) http.HandlerFunc {
	return newDeleteCatHandler(svc.Delete)
}

// NewAdminDeleteCatHandler returns an HTTP handler deleting any cat.
// @Summary Delete cat as admin
// @Tags cat
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} models.CatMessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cats/admin/{id} [delete]
func NewAdminDeleteCatHandler(svc CatAdminDeleter) http.HandlerFunc {
	return newDeleteCatHandler(svc.DeleteAsAdmin)
}

type deleteCatFunc func(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Cat, error)

func newDeleteCatHandler(remove deleteCatFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "Cat not found")
		if err != nil {
			writeError(w, err)
			return
		}

		cat, err := remove(r.Context(), middlewares.ActorFromContext(r.Context()), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CatMessageResponse{Message: "Cat deleted", Data: cat})
	}
}
