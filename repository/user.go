package repository

import (
	"context"

	"github.com/semexe/backend/domain"
)

type UserRepository interface {
	// GetByEmail returns domain.ErrUserNotFound when no account exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and fills in ID and CreatedAt. A duplicate
	// email surfaces as domain.ErrEmailTaken; the unique index on the email
	// column is the authoritative guard, not the caller's pre-check.
	Create(ctx context.Context, user *domain.User) error
}
