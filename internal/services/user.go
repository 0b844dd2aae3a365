package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/policy"
	"github.com/sbilibin2017/cats-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// PasswordCost is the bcrypt work factor used for every password hash.
const PasswordCost = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	Find(ctx context.Context) ([]models.UserDB, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	FindByUserName(ctx context.Context, userName string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, userName, email, passwordHash, role string) (*models.UserDB, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields models.UserUpdate) (*models.UserDB, error)
	LockByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// OwnedCatDeleter removes every cat of a user.
type OwnedCatDeleter interface {
	DeleteByOwner(ctx context.Context, owner uuid.UUID) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, user *models.UserDB) (string, error)
}

// UserService handles user accounts and login.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	cats        OwnedCatDeleter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, cats OwnedCatDeleter, jwt JWTGenerator, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		cats:        cats,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// List returns every user without credentials or roles.
func (svc *UserService) List(ctx context.Context) ([]models.UserOutput, error) {
	users, err := svc.reader.Find(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	out := make([]models.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, users[i].Output())
	}
	return out, nil
}

// GetByID returns a single user.
func (svc *UserService) GetByID(ctx context.Context, id uuid.UUID) (models.UserOutput, error) {
	user, err := svc.reader.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return models.UserOutput{}, err
	}
	if user == nil {
		return models.UserOutput{}, newError(ErrNotFound, "User not found")
	}
	return user.Output(), nil
}

// Create registers a user with the user role.
func (svc *UserService) Create(ctx context.Context, input models.UserInput) (models.UserOutput, error) {
	user, err := svc.create(ctx, input, models.RoleUser)
	if err != nil {
		return models.UserOutput{}, err
	}
	publishEvent(ctx, svc.kafkaWriter, models.EntityUser, models.OperationCreated, user.UserID, nil)
	return user.Output(), nil
}

// EnsureAdmin creates an admin account unless a user with the same name exists.
// It is reachable only from process bootstrap, never from the HTTP API.
func (svc *UserService) EnsureAdmin(ctx context.Context, input models.UserInput) (models.UserOutput, error) {
	existing, err := svc.reader.FindByUserName(ctx, input.UserName)
	if err != nil {
		logger.Log.Errorw("failed to check admin exists", "user_name", input.UserName, "err", err)
		return models.UserOutput{}, err
	}
	if existing != nil {
		return existing.Output(), nil
	}

	user, err := svc.create(ctx, input, models.RoleAdmin)
	if err != nil {
		return models.UserOutput{}, err
	}
	logger.Log.Infow("admin account created", "user_name", user.UserName)
	return user.Output(), nil
}

func (svc *UserService) create(ctx context.Context, input models.UserInput, role string) (*models.UserDB, error) {
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := svc.writer.Create(ctx, input.UserName, input.Email, hash, role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "user_name", input.UserName, "err", err)
		return nil, translateStoreError(err)
	}
	return user, nil
}

// UpdateCurrent changes the actor's own record. A new password is re-hashed.
func (svc *UserService) UpdateCurrent(ctx context.Context, actor *models.Actor, input models.UserUpdate) (models.UserOutput, error) {
	if actor == nil {
		return models.UserOutput{}, newError(ErrUnauthorized, "Unauthorized")
	}

	target, err := svc.reader.FindByID(ctx, actor.ID)
	if err != nil {
		logger.Log.Errorw("failed to get current user", "id", actor.ID, "err", err)
		return models.UserOutput{}, err
	}
	if target == nil {
		return models.UserOutput{}, newError(ErrNotFound, "User not found")
	}
	if !policy.CanModifyUser(actor, target) {
		return models.UserOutput{}, newError(ErrForbidden, "Not allowed to modify this user")
	}

	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return models.UserOutput{}, err
		}
		input.Password = &hash
	}

	user, err := svc.writer.UpdateByID(ctx, target.UserID, input)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", target.UserID, "err", err)
		return models.UserOutput{}, translateStoreError(err)
	}
	if user == nil {
		return models.UserOutput{}, newError(ErrNotFound, "User not found")
	}

	publishEvent(ctx, svc.kafkaWriter, models.EntityUser, models.OperationUpdated, user.UserID, actor)
	return user.Output(), nil
}

// DeleteCurrent removes the actor's own record together with every cat they own.
// Callers should run it inside a transaction.
func (svc *UserService) DeleteCurrent(ctx context.Context, actor *models.Actor) (models.UserOutput, error) {
	if actor == nil {
		return models.UserOutput{}, newError(ErrUnauthorized, "Unauthorized")
	}

	locked, err := svc.writer.LockByID(ctx, actor.ID)
	if err != nil {
		logger.Log.Errorw("failed to lock user", "id", actor.ID, "err", err)
		return models.UserOutput{}, err
	}
	if locked == nil {
		return models.UserOutput{}, newError(ErrNotFound, "User not found")
	}

	removed, err := svc.cats.DeleteByOwner(ctx, actor.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete cats of user", "id", actor.ID, "err", err)
		return models.UserOutput{}, err
	}

	user, err := svc.writer.DeleteByID(ctx, actor.ID)
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		logger.Log.Warnw("user gained cats during delete", "id", actor.ID, "err", err)
		return models.UserOutput{}, newError(ErrInvalidInput, "User still owns cats, retry the request")
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", actor.ID, "err", err)
		return models.UserOutput{}, err
	}
	if user == nil {
		return models.UserOutput{}, newError(ErrNotFound, "User not found")
	}

	logger.Log.Infow("user deleted", "id", user.UserID, "cats_removed", removed)
	publishEvent(ctx, svc.kafkaWriter, models.EntityUser, models.OperationDeleted, user.UserID, actor)
	return user.Output(), nil
}

// CheckToken projects the already authenticated actor. It does not touch the store.
func (svc *UserService) CheckToken(ctx context.Context, actor *models.Actor) (models.UserOutput, error) {
	if actor == nil {
		return models.UserOutput{}, newError(ErrUnauthorized, "Unauthorized access")
	}
	return actor.Output(), nil
}

// Login authenticates a user and returns a JWT token.
func (svc *UserService) Login(ctx context.Context, userName, password string) (string, models.UserOutput, error) {
	user, err := svc.reader.FindByUserName(ctx, userName)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", models.UserOutput{}, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "user_name", userName)
		return "", models.UserOutput{}, newError(ErrUnauthorized, "Incorrect username/password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "user_name", userName)
		return "", models.UserOutput{}, newError(ErrUnauthorized, "Incorrect username/password")
	}

	token, err := svc.jwt.Generate(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", models.UserOutput{}, err
	}

	return token, user.Output(), nil
}

// hashPassword salts and hashes a password. bcrypt draws a fresh salt on every call.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", newError(ErrValidation, "password is too long")
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
