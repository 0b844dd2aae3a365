package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/cats-api/internal/models"
)

// catColumns selects a cat row from alias c joined with its owner as alias u.
const catColumns = `
	c.id, c.cat_name, c.weight, c.filename, c.birthdate,
	c.location_lng, c.location_lat, c.owner_id,
	u.user_name AS owner_user_name, u.email AS owner_email,
	c.created_at, c.updated_at`

// CatReadRepository reads cats with their owners resolved.
type CatReadRepository struct {
	db *sqlx.DB
}

func NewCatReadRepository(db *sqlx.DB) *CatReadRepository {
	return &CatReadRepository{db: db}
}

// Find returns the cats matching the filter ordered by creation time.
func (r *CatReadRepository) Find(ctx context.Context, filter models.CatFilter) ([]models.CatDB, error) {
	var (
		conds []string
		args  []any
	)
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conds = append(conds, fmt.Sprintf("c.owner_id = $%d", len(args)))
	}
	if filter.Within != nil {
		args = append(args, filter.Within.String())
		conds = append(conds, fmt.Sprintf(
			"c.location_lng IS NOT NULL AND point(c.location_lng, c.location_lat) <@ $%d::polygon", len(args)))
	}

	query := `SELECT ` + catColumns + ` FROM cats c JOIN users u ON u.id = c.owner_id`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY c.created_at, c.id`

	cats := []models.CatDB{}
	err := r.db.SelectContext(ctx, &cats, query, args...)
	logQuery(query, args, len(cats), err)
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// FindByID returns the cat or nil when it does not exist.
func (r *CatReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CatDB, error) {
	query := `SELECT ` + catColumns + ` FROM cats c JOIN users u ON u.id = c.owner_id WHERE c.id = $1`

	var cat models.CatDB
	err := r.db.GetContext(ctx, &cat, query, id)
	logQuery(query, []any{id}, cat.CatID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// CatWriteRepository writes cats. Every write returns the row with its owner resolved.
type CatWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCatWriteRepository(db *sqlx.DB, txGetter TxGetter) *CatWriteRepository {
	return &CatWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a cat.
func (r *CatWriteRepository) Create(ctx context.Context, rec models.CatRecord) (*models.CatDB, error) {
	query := `
		WITH c AS (
			INSERT INTO cats (cat_name, weight, filename, birthdate, location_lng, location_lat, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + catColumns + ` FROM c JOIN users u ON u.id = c.owner_id`

	lng, lat := locationArgs(rec.Location)
	args := []any{rec.CatName, rec.Weight, rec.Filename, rec.Birthdate, lng, lat, rec.OwnerID}
	return r.write(ctx, query, args)
}

// UpdateByID overwrites every writable column of the cat currently owned by
// expectedOwner and returns the updated cat, or nil when no such row exists.
func (r *CatWriteRepository) UpdateByID(ctx context.Context, id, expectedOwner uuid.UUID, rec models.CatRecord) (*models.CatDB, error) {
	query := `
		WITH c AS (
			UPDATE cats
			SET cat_name = $2, weight = $3, filename = $4, birthdate = $5,
			    location_lng = $6, location_lat = $7, owner_id = $8, updated_at = NOW()
			WHERE id = $1 AND owner_id = $9
			RETURNING *
		)
		SELECT ` + catColumns + ` FROM c JOIN users u ON u.id = c.owner_id`

	lng, lat := locationArgs(rec.Location)
	args := []any{id, rec.CatName, rec.Weight, rec.Filename, rec.Birthdate, lng, lat, rec.OwnerID, expectedOwner}
	return r.write(ctx, query, args)
}

// DeleteOne removes the cat with the given id, restricted to owner when owner is non-nil.
// Returns nil when no row matched.
func (r *CatWriteRepository) DeleteOne(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*models.CatDB, error) {
	query := `
		WITH c AS (
			DELETE FROM cats
			WHERE id = $1 AND ($2::uuid IS NULL OR owner_id = $2)
			RETURNING *
		)
		SELECT ` + catColumns + ` FROM c JOIN users u ON u.id = c.owner_id`

	return r.write(ctx, query, []any{id, owner})
}

// DeleteByOwner removes every cat of the owner and returns how many were removed.
func (r *CatWriteRepository) DeleteByOwner(ctx context.Context, owner uuid.UUID) (int64, error) {
	query := `DELETE FROM cats WHERE owner_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, owner)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{owner}, rowsAffected, err)

	return rowsAffected, err
}

func (r *CatWriteRepository) write(ctx context.Context, query string, args []any) (*models.CatDB, error) {
	var cat models.CatDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &cat, query, args...)
	logQuery(query, args, cat.CatID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &cat, nil
}

func locationArgs(loc *models.Location) (lng, lat *float64) {
	if loc == nil {
		return nil, nil
	}
	x, y := loc.Lng(), loc.Lat()
	return &x, &y
}
