package domain

import (
	"context"
	"time"
)

type ContextKey string

const UserContextKey ContextKey = "user"

type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserStore interface {
	// Create persists a new user. Returns ErrDuplicateAccount when the email
	// is already taken; uniqueness is enforced by the store, not by the caller.
	Create(ctx context.Context, user *User) error

	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns (nil, nil) when no user exists for the id.
	GetByID(ctx context.Context, id string) (*User, error)
}
