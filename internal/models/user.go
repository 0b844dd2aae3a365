package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID    uuid.UUID `json:"_id" db:"id"`                // Primary key
	UserName  string    `json:"user_name" db:"user_name"`   // Unique user name
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // bcrypt hash, never serialized
	Role      string    `json:"-" db:"role"`                // user or admin
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Output strips the password hash and the role.
func (u *UserDB) Output() UserOutput {
	return UserOutput{
		UserID:   u.UserID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

// UserOutput is the public view of a user.
// swagger:model UserOutput
type UserOutput struct {
	// User identifier
	// example: 9b2d8f0e-6a51-4c1e-9b55-0f3a2b1c4d5e
	UserID uuid.UUID `json:"_id" db:"id"`

	// User name
	// example: john_doe
	UserName string `json:"user_name" db:"user_name"`

	// Email
	// example: john@example.com
	Email string `json:"email" db:"email"`
}

// UserInput carries the fields accepted when creating a user.
type UserInput struct {
	UserName string
	Email    string
	Password string // plaintext, hashed by the service
}

// UserUpdate carries the fields a user may change on their own record.
// Nil fields keep their stored value.
type UserUpdate struct {
	UserName *string
	Email    *string
	Password *string // plaintext, re-hashed by the service
}

// Actor is the authenticated identity making a request.
// A nil *Actor is an anonymous caller.
type Actor struct {
	ID       uuid.UUID
	UserName string
	Email    string
	Role     string
}

// IsAdmin reports whether the actor holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Output projects the actor into the public user view.
func (a *Actor) Output() UserOutput {
	return UserOutput{
		UserID:   a.ID,
		UserName: a.UserName,
		Email:    a.Email,
	}
}
