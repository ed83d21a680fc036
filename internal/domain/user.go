package domain

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	Avatar       string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, id int64) error
}
