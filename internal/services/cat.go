package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/geo"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/policy"
	"github.com/sbilibin2017/cats-api/internal/repositories"
)

//go:generate mockgen -source=cat.go -destination=mock_cat.go -package=services

// CatReader defines read-only operations for cats.
type CatReader interface {
	Find(ctx context.Context, filter models.CatFilter) ([]models.CatDB, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CatDB, error)
}

// CatWriter defines write operations for cats.
type CatWriter interface {
	Create(ctx context.Context, rec models.CatRecord) (*models.CatDB, error)
	UpdateByID(ctx context.Context, id, expectedOwner uuid.UUID, rec models.CatRecord) (*models.CatDB, error)
	DeleteOne(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*models.CatDB, error)
}

// OwnerFinder looks up a prospective cat owner.
type OwnerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// CatService handles cat CRUD and queries, applying the access policy.
type CatService struct {
	reader      CatReader
	writer      CatWriter
	owners      OwnerFinder
	kafkaWriter KafkaWriter
}

// NewCatService creates a new CatService. kafkaWriter may be nil.
func NewCatService(reader CatReader, writer CatWriter, owners OwnerFinder, kafkaWriter KafkaWriter) *CatService {
	return &CatService{
		reader:      reader,
		writer:      writer,
		owners:      owners,
		kafkaWriter: kafkaWriter,
	}
}

// List returns every cat.
func (s *CatService) List(ctx context.Context) ([]*models.Cat, error) {
	return s.find(ctx, models.CatFilter{})
}

// GetByID returns a single cat.
func (s *CatService) GetByID(ctx context.Context, id uuid.UUID) (*models.Cat, error) {
	cat, err := s.reader.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get cat", "id", id, "error", err)
		return nil, err
	}
	if cat == nil {
		return nil, newError(ErrNotFound, "Cat not found")
	}
	return cat.ToCat(), nil
}

// ListByOwner returns the cats owned by the actor.
func (s *CatService) ListByOwner(ctx context.Context, actor *models.Actor) ([]*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}
	owner := actor.ID
	return s.find(ctx, models.CatFilter{OwnerID: &owner})
}

// ListByBoundingBox returns the cats located inside the rectangle spanned by
// topRight and bottomLeft, both given as "lat,lng".
func (s *CatService) ListByBoundingBox(ctx context.Context, topRight, bottomLeft string) ([]*models.Cat, error) {
	if topRight == "" || bottomLeft == "" {
		return nil, newError(ErrInvalidInput, "topRight and bottomLeft are required")
	}
	tr, err := geo.ParseLatLng(topRight)
	if err != nil {
		return nil, newError(ErrInvalidInput, "topRight: "+err.Error())
	}
	bl, err := geo.ParseLatLng(bottomLeft)
	if err != nil {
		return nil, newError(ErrInvalidInput, "bottomLeft: "+err.Error())
	}

	return s.find(ctx, models.CatFilter{Within: geo.RectangleFromCorners(tr, bl)})
}

// Create stores a new cat owned by the actor. Any owner in the input is ignored.
// When the input has no location, defaultLocation is used; it may be nil.
func (s *CatService) Create(ctx context.Context, actor *models.Actor, input models.CatInput, defaultLocation *models.Location) (*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}

	location := input.Location
	if location == nil {
		location = defaultLocation
	}

	rec := models.CatRecord{
		CatName:   input.CatName,
		Weight:    input.Weight,
		Filename:  input.Filename,
		Birthdate: input.Birthdate,
		Location:  location,
		OwnerID:   actor.ID,
	}

	created, err := s.writer.Create(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to create cat", "owner", actor.ID, "error", err)
		return nil, translateStoreError(err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EntityCat, models.OperationCreated, created.CatID, actor)
	return created.ToCat(), nil
}

// Update overwrites the supplied fields of a cat the actor may modify.
// Owner changes are applied only for actors allowed to reassign owners.
func (s *CatService) Update(ctx context.Context, actor *models.Actor, id uuid.UUID, input models.CatUpdate) (*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyCat(actor, existing) {
		logger.Log.Warnw("cat update denied", "id", id, "actor", actor.ID)
		return nil, newError(ErrForbidden, "Not allowed to modify this cat")
	}

	rec := existing.Record()
	if input.CatName != nil {
		rec.CatName = *input.CatName
	}
	if input.Weight != nil {
		rec.Weight = input.Weight
	}
	if input.Filename != nil {
		rec.Filename = input.Filename
	}
	if input.Birthdate != nil {
		rec.Birthdate = input.Birthdate
	}
	if input.Location != nil {
		rec.Location = input.Location
	}
	if input.Owner != nil && *input.Owner != rec.OwnerID && policy.CanReassignCatOwner(actor) {
		owner, err := s.owners.FindByID(ctx, *input.Owner)
		if err != nil {
			logger.Log.Errorw("failed to look up new owner", "owner", *input.Owner, "error", err)
			return nil, err
		}
		if owner == nil {
			return nil, newError(ErrInvalidInput, "Owner not found")
		}
		rec.OwnerID = owner.UserID
	}

	// the write only lands if the owner checked above still owns the cat
	updated, err := s.writer.UpdateByID(ctx, id, existing.Owner.UserID, rec)
	if err != nil {
		logger.Log.Errorw("failed to update cat", "id", id, "error", err)
		return nil, translateStoreError(err)
	}
	if updated == nil {
		return nil, newError(ErrNotFound, "Cat not found")
	}

	publishEvent(ctx, s.kafkaWriter, models.EntityCat, models.OperationUpdated, updated.CatID, actor)
	return updated.ToCat(), nil
}

// UpdateAsAdmin is the admin entry point for updates, including owner reassignment.
func (s *CatService) UpdateAsAdmin(ctx context.Context, actor *models.Actor, id uuid.UUID, input models.CatUpdate) (*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}
	if !policy.CanReassignCatOwner(actor) {
		return nil, newError(ErrForbidden, "Admin only")
	}
	return s.Update(ctx, actor, id, input)
}

// Delete removes a cat. Non-admins can only delete their own cats; other cats
// are reported as not found.
func (s *CatService) Delete(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}
	return s.delete(ctx, actor, id, policy.DeleteScope(actor), "Cat not found or not your cat")
}

// DeleteAsAdmin removes any cat. The actor must be an admin.
func (s *CatService) DeleteAsAdmin(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Cat, error) {
	if actor == nil {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}
	if !policy.CanDeleteAnyCat(actor) {
		return nil, newError(ErrForbidden, "Admin only")
	}
	return s.delete(ctx, actor, id, nil, "Cat not found")
}

func (s *CatService) delete(ctx context.Context, actor *models.Actor, id uuid.UUID, scope *uuid.UUID, notFound string) (*models.Cat, error) {
	deleted, err := s.writer.DeleteOne(ctx, id, scope)
	if err != nil {
		logger.Log.Errorw("failed to delete cat", "id", id, "error", err)
		return nil, err
	}
	if deleted == nil {
		return nil, newError(ErrNotFound, notFound)
	}

	publishEvent(ctx, s.kafkaWriter, models.EntityCat, models.OperationDeleted, deleted.CatID, actor)
	return deleted.ToCat(), nil
}

func (s *CatService) find(ctx context.Context, filter models.CatFilter) ([]*models.Cat, error) {
	rows, err := s.reader.Find(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to find cats", "error", err)
		return nil, err
	}

	cats := make([]*models.Cat, 0, len(rows))
	for i := range rows {
		cats = append(cats, rows[i].ToCat())
	}
	return cats, nil
}

// translateStoreError classifies constraint violations and passes other store errors through.
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return newError(ErrValidation, "user_name or email already exists")
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return newError(ErrInvalidInput, "Owner not found")
	case errors.Is(err, repositories.ErrCheckViolation):
		return newError(ErrInvalidInput, "birthdate must not be later than creation time")
	}
	return err
}
