package store

import (
	"context"
	"time"

	"github.com/nonnle/chatrelay/internal/core"
)

// Role defines a user's privilege level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserStore handles account persistence.
type UserStore interface {
	// CreateUser creates a new user with hashed password.
	CreateUser(ctx context.Context, username, passwordHash string, role Role) (*User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id int64) (*User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// CountUsers returns the number of registered accounts.
	CountUsers(ctx context.Context) (int64, error)

	// ListUsers returns all accounts, oldest first.
	ListUsers(ctx context.Context) ([]*User, error)

	// DeleteUser removes an account. Returns false when the id is unknown.
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// Store aggregates all storage interfaces.
type Store interface {
	UserStore
	core.MessageLog

	// Close closes the underlying database connection.
	Close() error
}
