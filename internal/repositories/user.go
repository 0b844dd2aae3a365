package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/cats-api/internal/models"
)

const userColumns = `id, user_name, email, password, role, created_at, updated_at`

// UserReadRepository reads users.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// Find returns every user ordered by creation time.
func (r *UserReadRepository) Find(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user or nil when it does not exist.
func (r *UserReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

// FindByUserName returns the user or nil when it does not exist.
func (r *UserReadRepository) FindByUserName(ctx context.Context, userName string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1`
	return r.get(ctx, query, userName)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository writes users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. passwordHash must already be hashed.
func (r *UserWriteRepository) Create(ctx context.Context, userName, email, passwordHash, role string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userName, email, passwordHash, role)
	logQuery(query, []any{userName, email, role}, user.UserID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpdateByID overwrites the non-nil fields and returns the updated user,
// or nil when it does not exist. A password in fields must already be hashed.
func (r *UserWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields models.UserUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET user_name = COALESCE($2, user_name),
		    email = COALESCE($3, email),
		    password = COALESCE($4, password),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id, fields.UserName, fields.Email, fields.Password)
	logQuery(query, []any{id, fields.UserName, fields.Email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// LockByID locks the user row until the surrounding transaction ends and
// returns it, or nil when it does not exist. Concurrent inserts of cats
// referencing the user wait for the lock.
func (r *UserWriteRepository) LockByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByID removes the user and returns it, or nil when it does not exist.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
