package domain

import (
	"context"
	"time"
)

// User is a full user row, credential hash included. It is what Register
// hands back to the caller; anything user-facing should use Profile instead.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	JoinAt       time.Time
	LastLoginAt  time.Time
}

// Profile is the public view of a user, without credential material.
type Profile struct {
	Username    string
	FirstName   string
	LastName    string
	Phone       string
	JoinAt      time.Time
	LastLoginAt time.Time
}

// Contact is the short profile attached to a message counterpart.
type Contact struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

// RegisterInput carries the five required registration fields. Password is
// the plaintext secret; it is hashed before it ever reaches a repository.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user row and stamps JoinAt and LastLoginAt on the
	// passed value. Returns ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, user *User) error

	// GetByUsername returns the full row, hash included.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Profile returns the public view of one user.
	Profile(ctx context.Context, username string) (*Profile, error)

	// All returns every profile, ordered by username.
	All(ctx context.Context) ([]Profile, error)

	// TouchLastLogin sets last_login_at to the current time.
	TouchLastLogin(ctx context.Context, username string) error
}
